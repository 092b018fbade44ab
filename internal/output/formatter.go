package output

import (
	"bytes"
	"fmt"
	"io"
)

// Output format names.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// Formats lists the supported report formats.
func Formats() []string {
	return []string{FormatText, FormatMarkdown, FormatHTML, FormatJSON}
}

// Formatter renders a resolved submission.
type Formatter interface {
	Format(w io.Writer, ctx ReportContext, res Resolution) error
}

// TextFormatter writes the plain narrative report.
type TextFormatter struct{}

// NewTextFormatter creates a new TextFormatter
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{}
}

// Format writes the narrative followed by a newline.
func (f *TextFormatter) Format(w io.Writer, ctx ReportContext, res Resolution) error {
	_, err := fmt.Fprintln(w, res.Report(ctx))
	return err
}

// NewFormatter returns the formatter for the named format.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case FormatText, "":
		return NewTextFormatter(), nil
	case FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case FormatHTML:
		return NewHTMLFormatter(), nil
	case FormatJSON:
		return NewJSONFormatter(true), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Render formats res into w. Output is buffered so a failing formatter
// writes nothing.
func Render(w io.Writer, format string, ctx ReportContext, res Resolution) error {
	formatter, err := NewFormatter(format)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, ctx, res); err != nil {
		return fmt.Errorf("error rendering %s report: %w", format, err)
	}
	_, err = w.Write(buf.Bytes())
	return err
}
