package outputters

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nasalprom/nasalprom/internal/clipboard"
)

// Options controls where an artifact goes.
type Options struct {
	Path      string // write to this file instead of stdout
	Clipboard bool   // also place the artifact on the clipboard
	Quiet     bool   // suppress status lines on stderr
}

// Outputter delivers finished artifacts
type Outputter struct {
	opts   Options
	stdout io.Writer
	stderr io.Writer
	copier clipboard.Copier
	logger zerolog.Logger
}

// NewOutputter creates a new Outputter
func NewOutputter(opts Options, stdout, stderr io.Writer, copier clipboard.Copier, logger zerolog.Logger) *Outputter {
	return &Outputter{
		opts:   opts,
		stdout: stdout,
		stderr: stderr,
		copier: copier,
		logger: logger,
	}
}

// Emit writes a complete artifact to the configured destination and, when
// enabled, copies it. Callers pass only fully rendered text.
func (o *Outputter) Emit(artifact string) error {
	if o.opts.Path != "" {
		if err := os.WriteFile(o.opts.Path, []byte(artifact), 0644); err != nil {
			return fmt.Errorf("error writing output file: %w", err)
		}
		o.logger.Debug().Str("path", o.opts.Path).Msg("artifact written")
		if !o.opts.Quiet {
			fmt.Fprintf(o.stderr, "Wrote %s\n", o.opts.Path)
		}
	} else if _, err := io.WriteString(o.stdout, artifact); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	if !o.opts.Clipboard {
		return nil
	}

	copied, err := clipboard.Copy(strings.TrimRight(artifact, "\n"), o.copier, o.stderr)
	if err != nil {
		return err
	}
	if copied {
		o.logger.Debug().Msg("artifact copied to clipboard")
		if !o.opts.Quiet {
			fmt.Fprintln(o.stderr, "Copied to clipboard.")
		}
	} else {
		o.logger.Warn().Msg("clipboard unavailable, select and copy the block above")
	}
	return nil
}
