// Package input reads a submission (metadata plus per-item answers) from an
// answers file or from comma-separated flag values.
package input

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nasalprom/nasalprom/internal/answers"
	"github.com/nasalprom/nasalprom/internal/instrument"
	"github.com/nasalprom/nasalprom/internal/output"
	"github.com/nasalprom/nasalprom/internal/types"
)

// Submission is the raw content of one form. A nil answer list means the
// instrument was left blank; a nil entry means that item is unanswered.
type Submission struct {
	Date      string `yaml:"date"`
	Timepoint string `yaml:"timepoint"`
	Dataset   string `yaml:"dataset"`
	NOSE      []*int `yaml:"nose"`
	SNOT22    []*int `yaml:"snot22"`
}

// Parse decodes a YAML or JSON answers document. Unknown keys are rejected so
// a misspelled instrument key cannot silently read as blank.
func Parse(data []byte) (*Submission, error) {
	var s Submission
	if len(bytes.TrimSpace(data)) == 0 {
		return &s, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("error parsing answers: %w", err)
	}
	return &s, nil
}

// Load reads an answers file; "-" reads from stdin.
func Load(path string, stdin io.Reader) (*Submission, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read answers file: %w", err)
	}
	return Parse(data)
}

// ParseList parses "1,2,-,3". Entries "-", "_" and "" are unanswered. An
// entirely empty string yields nil (instrument left blank).
func ParseList(s string) ([]*int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	values := make([]*int, len(parts))
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" || part == "-" || part == "_" {
			continue
		}
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("item %d: %q is not a whole number", i+1, part)
		}
		values[i] = &v
	}
	return values, nil
}

// Context returns the report metadata of the submission.
func (s *Submission) Context() output.ReportContext {
	return output.ReportContext{
		DateISO:      strings.TrimSpace(s.Date),
		Timepoint:    strings.TrimSpace(s.Timepoint),
		DatasetLabel: strings.TrimSpace(s.Dataset),
	}
}

// AnswerSets builds both answer sets. Overlong lists and out-of-range scores
// are input errors.
func (s *Submission) AnswerSets(c *instrument.Catalog) (nose, snot *answers.AnswerSet, err error) {
	nose, err = answers.FromValues(c.NOSE(), s.NOSE)
	if err != nil {
		return nil, nil, err
	}
	snot, err = answers.FromValues(c.SNOT22(), s.SNOT22)
	if err != nil {
		return nil, nil, err
	}
	return nose, snot, nil
}

// InstrumentID maps a user-typed instrument name ("nose", "snot22",
// "SNOT-22", "snot") to its canonical id.
func InstrumentID(name string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "nose":
		return types.InstrumentNOSE, true
	case "snot", "snot22", "snot-22":
		return types.InstrumentSNOT22, true
	default:
		return "", false
	}
}

// ClearTarget names answers to discard: a whole instrument, or a single
// 1-based item when Item is set.
type ClearTarget struct {
	Instrument string
	Item       int
}

// ParseClear parses "nose", "snot22" or "nose:3".
func ParseClear(spec string) (ClearTarget, error) {
	name, item, hasItem := strings.Cut(spec, ":")
	id, ok := InstrumentID(name)
	if !ok {
		return ClearTarget{}, fmt.Errorf("unknown instrument %q", strings.TrimSpace(name))
	}

	target := ClearTarget{Instrument: id}
	if hasItem {
		n, err := strconv.Atoi(strings.TrimSpace(item))
		if err != nil || n < 1 {
			return ClearTarget{}, fmt.Errorf("%q is not an item number", item)
		}
		target.Item = n
	}
	return target, nil
}

// Apply discards the targeted answers from a.
func (t ClearTarget) Apply(a *answers.AnswerSet) error {
	if t.Item == 0 {
		a.Reset()
		return nil
	}
	return a.Clear(t.Item - 1)
}
