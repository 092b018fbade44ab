package scoring

import (
	"fmt"

	"github.com/nasalprom/nasalprom/internal/answers"
	"github.com/nasalprom/nasalprom/internal/types"
)

// Summarize totals a complete answer set. Callers must validate first:
// a set that is not complete is a programming error and panics.
func Summarize(a *answers.AnswerSet) ScoreSummary {
	if state := answers.Classify(a); state != types.StateComplete {
		panic(fmt.Sprintf("scoring: Summarize called on %s answer set", state))
	}

	inst := a.Instrument()
	summary := ScoreSummary{
		InstrumentID: inst.ID,
		Items:        make([]ItemScore, a.Len()),
		MaxTotal:     inst.MaxTotal(),
		TotalCaption: inst.TotalCaption,
	}
	for i := 0; i < a.Len(); i++ {
		v, _ := a.Value(i)
		summary.Items[i] = ItemScore{Label: inst.Item(i), Value: v, Max: inst.MaxPerItem}
		summary.RawTotal += v
	}

	// Only instruments with a scale factor (NOSE) get a scaled score.
	if inst.Scaled() {
		summary.HasScaled = true
		summary.ScaledTotal = summary.RawTotal * inst.ScaleFactor
		summary.MaxScaled = inst.MaxScaled()
		summary.ScaledCaption = inst.ScaledCaption
	}

	return summary
}
