// Package record builds time-pair records from input lines and keeps them in
// file order.
package record

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dbsmedya/timereport/internal/clock"
)

// ErrMissingComma is returned when a line has no field separator.
var ErrMissingComma = errors.New("line has no comma separator")

// Record is the parsed pair of times from one input line.
type Record struct {
	TextA  string       // First field exactly as read
	ValueA int          // Minutes since midnight for TextA
	TextB  string       // Second field exactly as read
	ValueB int          // Minutes since midnight for TextB
	Format clock.Format // Grammar shared by both fields
}

// Earlier returns the text of the earlier time. Ties resolve to B.
func (r Record) Earlier() string {
	if r.ValueA < r.ValueB {
		return r.TextA
	}
	return r.TextB
}

// Later returns the text of the later time. Ties resolve to B.
func (r Record) Later() string {
	if r.ValueA > r.ValueB {
		return r.TextA
	}
	return r.TextB
}

// Build parses one line (without its terminator) into a Record.
// The line is split at the first comma and the format is detected once for
// the whole line, so both fields are normalized with the same grammar.
func Build(line string) (Record, error) {
	textA, textB, ok := strings.Cut(line, ",")
	if !ok {
		return Record{}, ErrMissingComma
	}

	format := clock.Detect(line)

	valueA, err := clock.Normalize(format, textA)
	if err != nil {
		return Record{}, fmt.Errorf("first field: %w", err)
	}
	valueB, err := clock.Normalize(format, textB)
	if err != nil {
		return Record{}, fmt.Errorf("second field: %w", err)
	}

	return Record{
		TextA:  textA,
		ValueA: valueA,
		TextB:  textB,
		ValueB: valueB,
		Format: format,
	}, nil
}

// LineError ties a build failure to its 1-based source line.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
