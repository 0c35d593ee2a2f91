// Package ingest consumes an input source once and builds the frozen record
// sequence the reports are emitted from.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dbsmedya/timereport/internal/logger"
	"github.com/dbsmedya/timereport/internal/record"
)

const (
	// DefaultMaxLineSize caps a single input line.
	DefaultMaxLineSize = 1024 * 1024
	// previewSize bounds the text kept for an overlong line.
	previewSize = 64
)

// ErrLineTooLong is reported for a line longer than Options.MaxLineSize.
// The line is consumed in full and treated as malformed.
var ErrLineTooLong = errors.New("line too long")

// Options controls how malformed lines are treated.
type Options struct {
	AbortOnMalformed bool
	MaxLineSize      int // zero means DefaultMaxLineSize
	Logger           *logger.Logger
}

// Stats contains statistics about one ingest pass.
type Stats struct {
	LinesRead int           // Lines consumed from the source, blank ones included
	Records   int           // Records appended to the sequence
	Skipped   int           // Malformed lines left out
	Blank     int           // Whitespace-only lines ignored
	Duration  time.Duration // Time taken for ingest

	Malformed []*record.LineError // Skipped lines, in file order
}

// Run reads r to EOF, appending one record per well-formed line in file order,
// and returns the sequence frozen. With AbortOnMalformed the first malformed
// line stops the run with a *record.LineError; otherwise it is logged and
// skipped.
func Run(r io.Reader, opts Options) (*record.Sequence, Stats, error) {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	start := time.Now()
	seq := record.NewSequence()
	var stats Stats

	limit := opts.MaxLineSize
	if limit <= 0 {
		limit = DefaultMaxLineSize
	}
	br := bufio.NewReader(r)

	for {
		line, err := readLine(br, limit)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil && !errors.Is(err, ErrLineTooLong) {
			return nil, stats, fmt.Errorf("read input after line %d: %w", stats.LinesRead, err)
		}
		stats.LinesRead++
		lineNo := stats.LinesRead

		var rec record.Record
		if err == nil {
			if strings.TrimSpace(line) == "" {
				stats.Blank++
				log.WithLine(lineNo).Debug("Ignoring blank line")
				continue
			}
			rec, err = record.Build(line)
		}
		if err != nil {
			lineErr := &record.LineError{Line: lineNo, Text: line, Err: err}
			if opts.AbortOnMalformed {
				return nil, stats, lineErr
			}
			stats.Skipped++
			stats.Malformed = append(stats.Malformed, lineErr)
			log.WithLine(lineNo).Warnw("Skipping malformed line", "text", line, "error", err)
			continue
		}

		if err := seq.Append(lineNo, rec); err != nil {
			return nil, stats, fmt.Errorf("append line %d: %w", lineNo, err)
		}
		stats.Records++
		log.WithLine(lineNo).WithFields(map[string]interface{}{
			"format": rec.Format.String(),
			"a":      rec.ValueA,
			"b":      rec.ValueB,
		}).Debug("Record built")
	}

	seq.Freeze()
	stats.Duration = time.Since(start)

	log.Infow("Ingest complete",
		"lines", stats.LinesRead,
		"records", stats.Records,
		"skipped", stats.Skipped,
		"blank", stats.Blank,
		"duration", stats.Duration)

	return seq, stats, nil
}

// readLine returns the next line without its "\n" or "\r\n" terminator. A
// line longer than limit is drained and returned as ErrLineTooLong together
// with its first previewSize bytes. io.EOF is returned only when no line is
// left.
func readLine(br *bufio.Reader, limit int) (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := br.ReadLine()
		if err != nil {
			// A line that exactly filled the reader's buffer ends at EOF.
			if errors.Is(err, io.EOF) && (len(buf) > 0 || tooLong) {
				break
			}
			return "", err
		}
		if !tooLong {
			if len(buf)+len(chunk) > limit {
				tooLong = true
				buf = append(buf, chunk...)
				if len(buf) > previewSize {
					buf = buf[:previewSize]
				}
			} else {
				buf = append(buf, chunk...)
			}
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return string(buf), ErrLineTooLong
	}
	return string(buf), nil
}
