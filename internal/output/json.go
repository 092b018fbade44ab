package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/nasalprom/nasalprom/internal/scoring"
)

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	indent bool
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(indent bool) *JSONFormatter {
	return &JSONFormatter{indent: indent}
}

// JSONReport represents the complete JSON report structure
type JSONReport struct {
	Tool    string                `json:"tool"`
	Mode    string                `json:"mode"`
	Context ReportContext         `json:"context"`
	NOSE    *scoring.ScoreSummary `json:"nose,omitempty"`
	SNOT22  *scoring.ScoreSummary `json:"snot22,omitempty"`
	TSV     string                `json:"tsv"`
	Report  string                `json:"report"`
}

// Format writes res as a JSON document.
func (f *JSONFormatter) Format(w io.Writer, ctx ReportContext, res Resolution) error {
	row, err := res.Row()
	if err != nil {
		return err
	}

	report := JSONReport{
		Tool:    "nasalprom",
		Mode:    res.Mode.String(),
		Context: ctx,
		NOSE:    res.Nose,
		SNOT22:  res.Snot,
		TSV:     row,
		Report:  res.Report(ctx),
	}

	var jsonBytes []byte
	if f.indent {
		jsonBytes, err = json.MarshalIndent(report, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	_, err = fmt.Fprintln(w, string(jsonBytes))
	return err
}
