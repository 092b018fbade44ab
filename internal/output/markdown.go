package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/nasalprom/nasalprom/internal/scoring"
)

// MarkdownFormatter renders the report as Markdown with one table per
// instrument.
type MarkdownFormatter struct{}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter() *MarkdownFormatter {
	return &MarkdownFormatter{}
}

// Format writes the Markdown report for res.
func (f *MarkdownFormatter) Format(w io.Writer, ctx ReportContext, res Resolution) error {
	_, err := io.WriteString(w, ToMarkdown(ctx, res.Nose, res.Snot))
	return err
}

// ToMarkdown renders the same content as ToReport in Markdown.
func ToMarkdown(ctx ReportContext, nose, snot *scoring.ScoreSummary) string {
	var builder strings.Builder

	builder.WriteString("## PROMs recorded\n\n")

	var meta []string
	if date := ctx.DisplayDate(); date != "" {
		meta = append(meta, "**Date:** "+escapeMarkdown(date))
	}
	if tp := strings.TrimSpace(ctx.Timepoint); tp != "" {
		meta = append(meta, "**Timepoint:** "+escapeMarkdown(tp))
	}
	if ds := strings.TrimSpace(ctx.DatasetLabel); ds != "" {
		meta = append(meta, "**Dataset:** "+escapeMarkdown(ds))
	}
	if len(meta) > 0 {
		builder.WriteString(strings.Join(meta, " | ") + "\n\n")
	}

	for _, s := range []*scoring.ScoreSummary{nose, snot} {
		if s == nil {
			continue
		}
		builder.WriteString(fmt.Sprintf("### %s\n\n", s.InstrumentID))
		builder.WriteString(fmt.Sprintf("- %s: **%d** / %d\n", s.TotalCaption, s.RawTotal, s.MaxTotal))
		if s.HasScaled {
			builder.WriteString(fmt.Sprintf("- %s: **%d** / %d\n", s.ScaledCaption, s.ScaledTotal, s.MaxScaled))
		}
		builder.WriteString("\n| Item | Score |\n")
		builder.WriteString("|------|-------|\n")
		for _, item := range s.Items {
			builder.WriteString(fmt.Sprintf("| %s | %d |\n", escapeMarkdown(item.Label), item.Value))
		}
		builder.WriteString("\n")
	}

	return strings.TrimRight(builder.String(), "\n") + "\n"
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"|", `\|`,
	"<", `\<`,
	">", `\>`,
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
