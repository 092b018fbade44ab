package output

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// HTMLFormatter renders the Markdown report to an HTML fragment, suitable for
// an HTML mail body.
type HTMLFormatter struct {
	md goldmark.Markdown
}

// NewHTMLFormatter creates a new HTMLFormatter
func NewHTMLFormatter() *HTMLFormatter {
	return &HTMLFormatter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
	}
}

// Format writes the HTML report for res. Nothing is written on error.
func (f *HTMLFormatter) Format(w io.Writer, ctx ReportContext, res Resolution) error {
	var buf bytes.Buffer
	if err := f.md.Convert([]byte(ToMarkdown(ctx, res.Nose, res.Snot)), &buf); err != nil {
		return fmt.Errorf("markdown convert: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}
