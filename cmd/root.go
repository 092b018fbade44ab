package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	answersFile string
	noseFlag    string
	snotFlag    string
	dateFlag    string
	timepoint   string
	dataset     string
	configPath  string
	clearSpecs  []string
	quiet       bool
	verbose     bool
)

// exitFunc is swapped in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "nasalprom",
	Short: "NOSE and SNOT-22 scoring for clinical records",
	Long: `nasalprom scores the NOSE (5 items, 0-4) and SNOT-22 (22 items, 0-5)
patient-reported outcome questionnaires and produces a spreadsheet row and a
narrative report for the clinical record.

Answers come from an answers file (--file, YAML or JSON, "-" for stdin) and/or
comma-separated flag lists (--nose, --snot) where "-" marks an unanswered item.
Each instrument must be either fully answered or left entirely blank; --clear
discards a whole instrument or a single item before scoring.

Without a subcommand the TSV row and the narrative report are printed together.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBundle(cmd); err != nil {
			fail(cmd, err)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		exitFunc(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&answersFile, "file", "i", "", "Answers file (YAML or JSON, - for stdin)")
	flags.StringVar(&noseFlag, "nose", "", "NOSE answers, comma-separated (- for unanswered)")
	flags.StringVar(&snotFlag, "snot", "", "SNOT-22 answers, comma-separated (- for unanswered)")
	flags.StringVar(&dateFlag, "date", "", "Date of the record (YYYY-MM-DD)")
	flags.StringVar(&timepoint, "timepoint", "", "Timepoint label, e.g. Pre-op")
	flags.StringVar(&dataset, "dataset", "", "Dataset label, e.g. Baseline")
	flags.StringSliceVar(&clearSpecs, "clear", nil, "Discard answers before scoring: nose, snot22, or one item as nose:3")
	flags.StringVar(&configPath, "config", "", "Config file (default .nasalpromrc.{json,yaml,yml})")
	flags.BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// bindFlags re-binds persistent flags so each run sees a fresh viper.
func bindFlags(cmd *cobra.Command) {
	flags := cmd.Root().PersistentFlags()
	_ = viper.BindPFlag("quiet", flags.Lookup("quiet"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
}

// fail reports err on stderr and exits non-zero.
func fail(cmd *cobra.Command, err error) {
	fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	exitFunc(1)
}

func runBundle(cmd *cobra.Command) error {
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
	bundle := row + "\n\n" + res.Report(s.ctx) + "\n"

	return s.outputter(outputOptions{}).Emit(bundle)
}
