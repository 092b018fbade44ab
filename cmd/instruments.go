package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nasalprom/nasalprom/internal/input"
	"github.com/nasalprom/nasalprom/internal/instrument"
)

var instrumentsCmd = &cobra.Command{
	Use:   "instruments [nose|snot22]",
	Short: "List the questionnaire items",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runInstruments(cmd, args); err != nil {
			fail(cmd, err)
		}
	},
}

func init() {
	rootCmd.AddCommand(instrumentsCmd)
}

func runInstruments(cmd *cobra.Command, args []string) error {
	catalog, err := instrument.Load()
	if err != nil {
		return fmt.Errorf("error loading instruments: %w", err)
	}

	list := catalog.All()
	if len(args) == 1 {
		id, ok := input.InstrumentID(args[0])
		if !ok {
			return fmt.Errorf("unknown instrument %q", args[0])
		}
		inst, ok := catalog.Lookup(id)
		if !ok {
			return fmt.Errorf("instrument %s is not defined", id)
		}
		list = []*instrument.Instrument{inst}
	}

	var b strings.Builder
	for i, inst := range list {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s: %s (%d items, scored 0-%d, total 0-%d)\n",
			inst.ID, inst.Name, inst.Len(), inst.MaxPerItem, inst.MaxTotal())
		for idx, label := range inst.Items() {
			fmt.Fprintf(&b, "%3d. %s\n", idx+1, label)
		}
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), b.String())
	return err
}
