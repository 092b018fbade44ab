// Package answers holds the responses collected for one instrument and
// classifies how complete they are.
package answers

import (
	"fmt"

	"github.com/nasalprom/nasalprom/internal/instrument"
)

// AnswerSet is the ordered set of responses for one instrument. Each slot is
// either unanswered or an integer in [0, MaxPerItem].
type AnswerSet struct {
	inst     *instrument.Instrument
	values   []int
	answered []bool
}

// New creates an AnswerSet with every item unanswered.
func New(inst *instrument.Instrument) *AnswerSet {
	return &AnswerSet{
		inst:     inst,
		values:   make([]int, inst.Len()),
		answered: make([]bool, inst.Len()),
	}
}

// FromValues builds an AnswerSet from entries in item order, nil meaning
// unanswered. Items past the end of a short list are unanswered, so a
// half-entered list classifies as partial. More entries than items is an
// error.
func FromValues(inst *instrument.Instrument, values []*int) (*AnswerSet, error) {
	a := New(inst)
	if len(values) > inst.Len() {
		return nil, fmt.Errorf("%s expects at most %d answers, got %d", inst.ID, inst.Len(), len(values))
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		if err := a.Record(i, *v); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Instrument returns the instrument the answers belong to.
func (a *AnswerSet) Instrument() *instrument.Instrument {
	return a.inst
}

// Len returns the number of slots.
func (a *AnswerSet) Len() int {
	return len(a.values)
}

// Record sets the response for item idx (0-based).
func (a *AnswerSet) Record(idx, value int) error {
	if err := a.checkIndex(idx); err != nil {
		return err
	}
	if value < 0 || value > a.inst.MaxPerItem {
		return fmt.Errorf("%s item %d: score %d out of range 0-%d", a.inst.ID, idx+1, value, a.inst.MaxPerItem)
	}
	a.values[idx] = value
	a.answered[idx] = true
	return nil
}

// Clear marks item idx as unanswered.
func (a *AnswerSet) Clear(idx int) error {
	if err := a.checkIndex(idx); err != nil {
		return err
	}
	a.values[idx] = 0
	a.answered[idx] = false
	return nil
}

// Reset marks every item as unanswered.
func (a *AnswerSet) Reset() {
	for i := range a.values {
		a.values[i] = 0
		a.answered[i] = false
	}
}

// Value returns the response for item idx and whether it was answered.
func (a *AnswerSet) Value(idx int) (int, bool) {
	if idx < 0 || idx >= len(a.values) {
		return 0, false
	}
	return a.values[idx], a.answered[idx]
}

// Answered returns the number of answered items.
func (a *AnswerSet) Answered() int {
	n := 0
	for _, ok := range a.answered {
		if ok {
			n++
		}
	}
	return n
}

// Values returns a copy of the slot values. Unanswered slots read as 0, so
// the result is only meaningful for a complete set.
func (a *AnswerSet) Values() []int {
	out := make([]int, len(a.values))
	copy(out, a.values)
	return out
}

func (a *AnswerSet) checkIndex(idx int) error {
	if idx < 0 || idx >= len(a.values) {
		return fmt.Errorf("%s has no item %d", a.inst.ID, idx+1)
	}
	return nil
}
