// Package report emits the early-times and late-times reports from a frozen
// record sequence.
package report

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
	"golang.org/x/term"

	"github.com/dbsmedya/timereport/internal/record"
)

// Options configures report rendering.
type Options struct {
	EarlyHeader string
	LateHeader  string
	Color       bool // colorize headers on a terminal; values are always printed verbatim
}

// Emitter writes both reports to w.
type Emitter struct {
	w      io.Writer
	opts   Options
	header color.Style
}

// New creates an Emitter writing to w. Color is dropped unless w is a
// terminal, so redirected reports carry no escape codes.
func New(w io.Writer, opts Options) *Emitter {
	opts.Color = opts.Color && isTerminal(w)
	return &Emitter{
		w:      w,
		opts:   opts,
		header: color.New(color.FgCyan, color.OpBold),
	}
}

// Emit writes the early report in file order, then the late report in
// reverse file order. The sequence must be frozen.
func (e *Emitter) Emit(seq *record.Sequence) error {
	if err := e.EmitEarly(seq); err != nil {
		return err
	}
	return e.EmitLate(seq)
}

// EmitEarly writes the earlier time of every record in file order.
func (e *Emitter) EmitEarly(seq *record.Sequence) error {
	if !seq.Frozen() {
		return record.ErrNotFrozen
	}
	if err := e.writeHeader(e.opts.EarlyHeader); err != nil {
		return err
	}
	return seq.Forward(func(_ int, rec record.Record) error {
		return e.writeValue(rec.Earlier())
	})
}

// EmitLate writes the later time of every record in reverse file order.
func (e *Emitter) EmitLate(seq *record.Sequence) error {
	if !seq.Frozen() {
		return record.ErrNotFrozen
	}
	if err := e.writeHeader(e.opts.LateHeader); err != nil {
		return err
	}
	return seq.Reverse(func(_ int, rec record.Record) error {
		return e.writeValue(rec.Later())
	})
}

func (e *Emitter) writeHeader(text string) error {
	if e.opts.Color {
		text = e.header.Sprint(text)
	}
	if _, err := fmt.Fprintf(e.w, "\n%s\n\n", text); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	return nil
}

func (e *Emitter) writeValue(text string) error {
	if _, err := fmt.Fprintln(e.w, text); err != nil {
		return fmt.Errorf("write value: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
