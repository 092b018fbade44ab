package output

import (
	"fmt"

	"github.com/nasalprom/nasalprom/internal/answers"
	"github.com/nasalprom/nasalprom/internal/scoring"
	"github.com/nasalprom/nasalprom/internal/types"
)

// NothingCompleteMessage is shown when neither instrument is usable.
const NothingCompleteMessage = "Please complete NOSE and/or SNOT-22 before copying."

// SelectMode decides which serialization applies. Partial states fail closed
// with the same message AssertUsable produces.
func SelectMode(nose, snot types.CompletionState) (types.Mode, error) {
	if nose == types.StatePartial {
		return 0, answers.PartialError(types.InstrumentNOSE)
	}
	if snot == types.StatePartial {
		return 0, answers.PartialError(types.InstrumentSNOT22)
	}

	switch {
	case nose == types.StateComplete && snot == types.StateComplete:
		return types.ModeFull, nil
	case nose == types.StateComplete:
		return types.ModeNoseOnly, nil
	case snot == types.StateComplete:
		return types.ModeSnotOnly, nil
	default:
		return 0, types.NewValidationError(NothingCompleteMessage)
	}
}

// Resolution is a validated pair of answer sets ready for rendering. The
// summary of an instrument left blank is nil.
type Resolution struct {
	Mode types.Mode
	Nose *scoring.ScoreSummary
	Snot *scoring.ScoreSummary
}

// Resolve validates both answer sets, selects the mode and totals every
// complete instrument. Either set may be nil, meaning blank.
func Resolve(nose, snot *answers.AnswerSet) (Resolution, error) {
	if err := checkInstrument(nose, types.InstrumentNOSE); err != nil {
		return Resolution{}, err
	}
	if err := checkInstrument(snot, types.InstrumentSNOT22); err != nil {
		return Resolution{}, err
	}

	noseState, err := answers.AssertUsable(types.InstrumentNOSE, nose)
	if err != nil {
		return Resolution{}, err
	}
	snotState, err := answers.AssertUsable(types.InstrumentSNOT22, snot)
	if err != nil {
		return Resolution{}, err
	}

	mode, err := SelectMode(noseState, snotState)
	if err != nil {
		return Resolution{}, err
	}

	res := Resolution{Mode: mode}
	if noseState == types.StateComplete {
		s := scoring.Summarize(nose)
		res.Nose = &s
	}
	if snotState == types.StateComplete {
		s := scoring.Summarize(snot)
		res.Snot = &s
	}
	return res, nil
}

func checkInstrument(a *answers.AnswerSet, want string) error {
	if a != nil && a.Instrument().ID != want {
		return fmt.Errorf("expected %s answers, got %s", want, a.Instrument().ID)
	}
	return nil
}

// Row renders the resolution's TSV row.
func (r Resolution) Row() (string, error) {
	return ToRow(r.Mode, r.Nose, r.Snot)
}

// Report renders the resolution's narrative.
func (r Resolution) Report(ctx ReportContext) string {
	return ToReport(ctx, r.Nose, r.Snot)
}
