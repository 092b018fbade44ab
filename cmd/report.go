package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/nasalprom/nasalprom/internal/output"
)

var (
	reportFormat    string
	reportOutput    string
	reportClipboard bool
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the narrative report",
	Long: `The report command prints the narrative "PROMs recorded" report for the
clinical record.

Formats:
- text: plain narrative (default)
- markdown: headings and item tables
- html: HTML fragment for an email body
- json: scores, TSV row and narrative for scripting`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runReport(cmd); err != nil {
			fail(cmd, err)
		}
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", output.FormatText, "Output format ("+strings.Join(output.Formats(), "|")+")")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Write the report to a file")
	reportCmd.Flags().BoolVar(&reportClipboard, "clipboard", false, "Also copy the report to the clipboard")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	res, err := s.resolve()
	if err != nil {
		return err
	}

	var b strings.Builder
	format := stringOption(cmd, "format", reportFormat, s.cfg.Format)
	if err := output.Render(&b, format, s.ctx, res); err != nil {
		return err
	}

	return s.outputter(outputOptions{
		path:      stringOption(cmd, "output", reportOutput, s.cfg.Output),
		clipboard: boolOption(cmd, "clipboard", reportClipboard, s.cfg.Clipboard),
	}).Emit(b.String())
}
