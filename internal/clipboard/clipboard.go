// Package clipboard places text on the user's clipboard where the terminal
// supports it, and otherwise prints it for manual select-and-copy.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
)

// ErrUnavailable reports that no clipboard mechanism can be used.
var ErrUnavailable = errors.New("clipboard unavailable")

// Fallback block delimiters.
const (
	BeginMarker = "----- BEGIN COPY -----"
	EndMarker   = "----- END COPY -----"
)

// Copier places text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// OSC52Copier writes an OSC52 escape sequence to a terminal.
type OSC52Copier struct {
	out      io.Writer
	terminal bool
	tmux     bool
}

// NewOSC52Copier creates a copier for the terminal attached to f.
func NewOSC52Copier(f *os.File) *OSC52Copier {
	fd := f.Fd()
	return &OSC52Copier{
		out:      f,
		terminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
		tmux:     os.Getenv("TMUX") != "",
	}
}

// Copy writes text to the system clipboard via OSC52.
func (c *OSC52Copier) Copy(text string) error {
	if c == nil || !c.terminal {
		return ErrUnavailable
	}

	seq := osc52.New(text)
	if c.tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.out); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Copy tries primary and, when it fails, prints text to fallback inside a
// delimited block. copied reports whether primary succeeded; err is only set
// when the fallback itself cannot be written.
func Copy(text string, primary Copier, fallback io.Writer) (copied bool, err error) {
	if primary != nil && primary.Copy(text) == nil {
		return true, nil
	}

	var b strings.Builder
	b.WriteString(BeginMarker + "\n")
	b.WriteString(strings.TrimRight(text, "\n"))
	b.WriteString("\n" + EndMarker + "\n")
	if _, err := io.WriteString(fallback, b.String()); err != nil {
		return false, fmt.Errorf("failed to write copy fallback: %w", err)
	}
	return false, nil
}
