package answers

import (
	"fmt"

	"github.com/nasalprom/nasalprom/internal/types"
)

// Classify reports whether a is empty, partial or complete. A nil set is empty.
func Classify(a *AnswerSet) types.CompletionState {
	if a == nil {
		return types.StateEmpty
	}
	switch n := a.Answered(); {
	case n == 0:
		return types.StateEmpty
	case n == a.Len():
		return types.StateComplete
	default:
		return types.StatePartial
	}
}

// AssertUsable classifies a and rejects partial sets. Every output path goes
// through here before anything is rendered.
func AssertUsable(label string, a *AnswerSet) (types.CompletionState, error) {
	state := Classify(a)
	if state == types.StatePartial {
		return state, PartialError(label)
	}
	return state, nil
}

// PartialError is the ValidationError for a half-answered instrument.
func PartialError(label string) *types.ValidationError {
	return types.NewValidationError(fmt.Sprintf(
		"%s is partly completed. Please answer all questions in %s, or clear it and leave it blank.",
		label, label))
}
