package output

import (
	"fmt"
	"strings"

	"github.com/nasalprom/nasalprom/internal/scoring"
)

// ReportHeader opens every narrative report.
const ReportHeader = "PROMs recorded:"

// ToReport renders the clinical-record narrative. A nil summary omits that
// instrument's block entirely; zeros are never shown for a blank instrument.
func ToReport(ctx ReportContext, nose, snot *scoring.ScoreSummary) string {
	lines := []string{ReportHeader}
	if meta := ctx.metadataLine(); meta != "" {
		lines = append(lines, meta)
	}
	lines = append(lines, "")

	for _, s := range []*scoring.ScoreSummary{nose, snot} {
		if s == nil {
			continue
		}
		lines = append(lines, instrumentBlock(s)...)
		lines = append(lines, "")
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return strings.Join(lines, "\n")
}

func instrumentBlock(s *scoring.ScoreSummary) []string {
	lines := []string{fmt.Sprintf("%s: %d / %d", s.TotalCaption, s.RawTotal, s.MaxTotal)}
	if s.HasScaled {
		lines = append(lines, fmt.Sprintf("%s: %d / %d", s.ScaledCaption, s.ScaledTotal, s.MaxScaled))
	}
	for _, item := range s.Items {
		lines = append(lines, fmt.Sprintf("- %s: %d", item.Label, item.Value))
	}
	return lines
}
