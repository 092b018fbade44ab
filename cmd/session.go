package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nasalprom/nasalprom/internal/answers"
	"github.com/nasalprom/nasalprom/internal/clipboard"
	"github.com/nasalprom/nasalprom/internal/config"
	"github.com/nasalprom/nasalprom/internal/input"
	"github.com/nasalprom/nasalprom/internal/instrument"
	"github.com/nasalprom/nasalprom/internal/logging"
	"github.com/nasalprom/nasalprom/internal/output"
	"github.com/nasalprom/nasalprom/internal/outputters"
)

// Swapped in tests.
var (
	now       = time.Now
	newCopier = func() clipboard.Copier { return clipboard.NewOSC52Copier(os.Stderr) }
)

// session is the state shared by every command for one invocation.
type session struct {
	cmd    *cobra.Command
	cfg    *config.Config
	logger zerolog.Logger
	ctx    output.ReportContext
	nose   *answers.AnswerSet
	snot   *answers.AnswerSet
}

// outputOptions are per-command destination overrides.
type outputOptions struct {
	path      string
	clipboard bool
}

func newSession(cmd *cobra.Command) (*session, error) {
	bindFlags(cmd)
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}
	logger := logging.New(cmd.ErrOrStderr(), cfg.Verbose)

	sub, err := loadSubmission(cmd)
	if err != nil {
		return nil, err
	}

	catalog, err := instrument.Load()
	if err != nil {
		return nil, fmt.Errorf("error loading instruments: %w", err)
	}
	nose, snot, err := sub.AnswerSets(catalog)
	if err != nil {
		return nil, fmt.Errorf("invalid answers: %w", err)
	}
	if err := applyClears(nose, snot); err != nil {
		return nil, err
	}

	s := &session{
		cmd:    cmd,
		cfg:    cfg,
		logger: logger,
		ctx:    reportContext(cmd, cfg, sub),
		nose:   nose,
		snot:   snot,
	}
	logger.Debug().
		Str("nose", answers.Classify(nose).String()).
		Str("snot22", answers.Classify(snot).String()).
		Msg("completion evaluated")
	return s, nil
}

// loadSubmission merges the answers file with --nose/--snot; flags win.
func loadSubmission(cmd *cobra.Command) (*input.Submission, error) {
	sub := &input.Submission{}
	if answersFile != "" {
		loaded, err := input.Load(answersFile, cmd.InOrStdin())
		if err != nil {
			return nil, err
		}
		sub = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("nose") {
		values, err := input.ParseList(noseFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid --nose: %w", err)
		}
		sub.NOSE = values
	}
	if flags.Changed("snot") {
		values, err := input.ParseList(snotFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid --snot: %w", err)
		}
		sub.SNOT22 = values
	}
	return sub, nil
}

// applyClears discards the answers named by --clear.
func applyClears(nose, snot *answers.AnswerSet) error {
	for _, spec := range clearSpecs {
		target, err := input.ParseClear(spec)
		if err != nil {
			return fmt.Errorf("invalid --clear: %w", err)
		}
		set := nose
		if target.Instrument == snot.Instrument().ID {
			set = snot
		}
		if err := target.Apply(set); err != nil {
			return fmt.Errorf("invalid --clear: %w", err)
		}
	}
	return nil
}

// reportContext layers metadata: flags, then the answers file, then config.
func reportContext(cmd *cobra.Command, cfg *config.Config, sub *input.Submission) output.ReportContext {
	ctx := sub.Context()
	flags := cmd.Flags()

	if flags.Changed("date") {
		ctx.DateISO = strings.TrimSpace(dateFlag)
	} else if ctx.DateISO == "" && cfg.DateDefault == config.DateDefaultToday {
		ctx.DateISO = now().Format("2006-01-02")
	}

	if flags.Changed("timepoint") {
		ctx.Timepoint = timepoint
	} else if ctx.Timepoint == "" {
		ctx.Timepoint = cfg.Timepoint
	}

	if flags.Changed("dataset") {
		ctx.DatasetLabel = dataset
	} else if ctx.DatasetLabel == "" {
		ctx.DatasetLabel = cfg.Dataset
	}
	return ctx
}

// resolve validates completion and selects the output mode.
func (s *session) resolve() (output.Resolution, error) {
	res, err := output.Resolve(s.nose, s.snot)
	if err != nil {
		s.logger.Debug().Err(err).Msg("submission rejected")
		return output.Resolution{}, err
	}
	s.logger.Debug().Str("mode", res.Mode.String()).Msg("output mode selected")
	return res, nil
}

func (s *session) outputter(opts outputOptions) *outputters.Outputter {
	return outputters.NewOutputter(outputters.Options{
		Path:      opts.path,
		Clipboard: opts.clipboard,
		Quiet:     s.cfg.Quiet,
	}, s.cmd.OutOrStdout(), s.cmd.ErrOrStderr(), newCopier(), s.logger)
}

// boolOption prefers an explicitly set flag over the configured value.
func boolOption(cmd *cobra.Command, name string, flagValue, configured bool) bool {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configured
}

// stringOption prefers an explicitly set flag over the configured value.
func stringOption(cmd *cobra.Command, name, flagValue, configured string) string {
	if cmd.Flags().Changed(name) {
		return flagValue
	}
	return configured
}
