package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nasalprom/nasalprom/internal/scoring"
	"github.com/nasalprom/nasalprom/internal/types"
)

// ToRow renders the spreadsheet row for mode: item values then raw total for
// each included instrument, NOSE first, tab-separated, no header and no
// trailing tab. Column order is fixed by the target sheet.
func ToRow(mode types.Mode, nose, snot *scoring.ScoreSummary) (string, error) {
	if mode != types.ModeFull && mode != types.ModeNoseOnly && mode != types.ModeSnotOnly {
		return "", fmt.Errorf("unknown output mode %d", int(mode))
	}

	var fields []string
	if mode.IncludesNOSE() {
		if nose == nil {
			return "", fmt.Errorf("%s row requires NOSE scores", mode)
		}
		fields = appendColumns(fields, nose)
	}
	if mode.IncludesSNOT() {
		if snot == nil {
			return "", fmt.Errorf("%s row requires SNOT-22 scores", mode)
		}
		fields = appendColumns(fields, snot)
	}

	return strings.Join(fields, "\t"), nil
}

func appendColumns(fields []string, s *scoring.ScoreSummary) []string {
	for _, item := range s.Items {
		fields = append(fields, strconv.Itoa(item.Value))
	}
	return append(fields, strconv.Itoa(s.RawTotal))
}
