package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nasalprom/nasalprom/internal/answers"
	"github.com/nasalprom/nasalprom/internal/scoring"
	"github.com/nasalprom/nasalprom/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show completion and totals for each instrument",
	Long: `The score command shows, for each instrument, whether it is empty, partly
completed or complete, how many items are answered and, once complete, its
totals. It also shows which output mode would be used, or why copying is
blocked. It never produces a record artifact.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runScore(cmd); err != nil {
			fail(cmd, err)
		}
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

// printStyles holds all the styles used in the score view.
type printStyles struct {
	header   lipgloss.Style
	complete lipgloss.Style
	partial  lipgloss.Style
	empty    lipgloss.Style
	dim      lipgloss.Style
}

// newPrintStyles creates a new set of print styles.
func newPrintStyles() printStyles {
	return printStyles{
		header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		complete: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		partial:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (p printStyles) state(s types.CompletionState) string {
	label := fmt.Sprintf("%-8s", s)
	switch s {
	case types.StateComplete:
		return p.complete.Render(label)
	case types.StatePartial:
		return p.partial.Render(label)
	default:
		return p.empty.Render(label)
	}
}

func runScore(cmd *cobra.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	styles := newPrintStyles()
	var b strings.Builder

	b.WriteString(styles.header.Render("NASALPROM status") + "\n")
	for _, a := range []*answers.AnswerSet{s.nose, s.snot} {
		writeScoreLine(&b, a, styles)
	}
	b.WriteString("\n")

	res, err := s.resolve()
	if err != nil {
		if !types.IsValidationError(err) {
			return err
		}
		fmt.Fprintf(&b, "Copy blocked: %s\n", styles.partial.Render(err.Error()))
	} else {
		fmt.Fprintf(&b, "Mode: %s %s\n", res.Mode, styles.dim.Render("("+res.Mode.TSVLabel()+")"))
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
	return err
}

func writeScoreLine(b *strings.Builder, a *answers.AnswerSet, styles printStyles) {
	inst := a.Instrument()
	state := answers.Classify(a)
	fmt.Fprintf(b, "  %-8s %s %2d/%-2d", inst.ID, styles.state(state), a.Answered(), a.Len())

	if state == types.StateComplete {
		summary := scoring.Summarize(a)
		fmt.Fprintf(b, "  %s %d/%d", summary.TotalCaption, summary.RawTotal, summary.MaxTotal)
		if summary.HasScaled {
			fmt.Fprintf(b, "  %s %d", summary.ScaledCaption, summary.ScaledTotal)
		}
	}
	b.WriteString("\n")
}
