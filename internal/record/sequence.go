package record

import (
	"errors"
	"fmt"

	"github.com/elliotchance/orderedmap/v2"
)

var (
	// ErrFrozen is returned by Append once the sequence has been frozen.
	ErrFrozen = errors.New("sequence is frozen")
	// ErrNotFrozen is returned by traversals before the sequence is frozen.
	ErrNotFrozen = errors.New("sequence is not frozen")
)

// Sequence holds records in the order they were appended, keyed by source
// line number. It is append-only until Freeze and traversal-only after.
type Sequence struct {
	records *orderedmap.OrderedMap[int, Record]
	frozen  bool
}

// NewSequence creates an empty, open Sequence.
func NewSequence() *Sequence {
	return &Sequence{
		records: orderedmap.NewOrderedMap[int, Record](),
	}
}

// Append adds rec for the given source line to the end of the sequence.
func (s *Sequence) Append(line int, rec Record) error {
	if s.frozen {
		return ErrFrozen
	}
	if _, exists := s.records.Get(line); exists {
		return fmt.Errorf("line %d already appended", line)
	}
	s.records.Set(line, rec)
	return nil
}

// Freeze closes the append phase. It is safe to call more than once.
func (s *Sequence) Freeze() {
	s.frozen = true
}

// Frozen reports whether Freeze has been called.
func (s *Sequence) Frozen() bool {
	return s.frozen
}

// Len returns the number of records.
func (s *Sequence) Len() int {
	return s.records.Len()
}

// Forward calls fn for each record in append order.
func (s *Sequence) Forward(fn func(line int, rec Record) error) error {
	if !s.frozen {
		return ErrNotFrozen
	}
	for el := s.records.Front(); el != nil; el = el.Next() {
		if err := fn(el.Key, el.Value); err != nil {
			return err
		}
	}
	return nil
}

// Reverse calls fn for each record in exactly the inverse of append order.
func (s *Sequence) Reverse(fn func(line int, rec Record) error) error {
	if !s.frozen {
		return ErrNotFrozen
	}
	for el := s.records.Back(); el != nil; el = el.Prev() {
		if err := fn(el.Key, el.Value); err != nil {
			return err
		}
	}
	return nil
}
