package cmd

import (
	"github.com/spf13/cobra"
)

var tsvClipboard bool

var tsvCmd = &cobra.Command{
	Use:   "tsv",
	Short: "Print the spreadsheet row",
	Long: `The tsv command prints one tab-separated row: the item scores and raw total of
each completed instrument, NOSE first. The column layout depends on which
instruments are complete (FULL, NOSE only or SNOT-22 only).`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runTSV(cmd); err != nil {
			fail(cmd, err)
		}
	},
}

func init() {
	tsvCmd.Flags().BoolVar(&tsvClipboard, "clipboard", false, "Also copy the row to the clipboard")
	rootCmd.AddCommand(tsvCmd)
}

func runTSV(cmd *cobra.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	res, err := s.resolve()
	if err != nil {
		return err
	}
	row, err := res.Row()
	if err != nil {
		return err
	}

	return s.outputter(outputOptions{
		clipboard: boolOption(cmd, "clipboard", tsvClipboard, s.cfg.Clipboard),
	}).Emit(row + "\n")
}
