// Package message composes the patient email: a subject line derived from the
// report metadata and a body made of the narrative plus, optionally, the TSV
// row.
package message

import (
	"net/url"
	"strings"

	"github.com/nasalprom/nasalprom/internal/output"
)

// SubjectPrefix opens every subject line.
const SubjectPrefix = "NASALPROM PROMs"

const subjectSeparator = " – "

// Message is a composed email.
type Message struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Options controls what the body carries.
type Options struct {
	IncludeTSV bool
}

// DefaultOptions attaches the TSV row.
func DefaultOptions() Options {
	return Options{IncludeTSV: true}
}

// Subject joins the prefix with the display date and timepoint, skipping
// whichever is absent.
func Subject(ctx output.ReportContext) string {
	parts := []string{SubjectPrefix}
	if date := ctx.DisplayDate(); date != "" {
		parts = append(parts, date)
	}
	if tp := strings.TrimSpace(ctx.Timepoint); tp != "" {
		parts = append(parts, tp)
	}
	return strings.Join(parts, subjectSeparator)
}

// Compose builds the message for a resolved submission. The TSV block is
// labeled by mode and ends with a newline.
func Compose(ctx output.ReportContext, res output.Resolution, opts Options) (Message, error) {
	body := res.Report(ctx)
	if opts.IncludeTSV {
		row, err := res.Row()
		if err != nil {
			return Message{}, err
		}
		body += "\n\n" + res.Mode.TSVLabel() + "\n" + row + "\n"
	}
	return Message{Subject: Subject(ctx), Body: body}, nil
}

// MailtoURL builds a mailto: link carrying the subject and body. to may be
// empty to let the mail client ask for a recipient.
func MailtoURL(to string, m Message) string {
	query := "subject=" + escape(m.Subject) + "&body=" + escape(m.Body)
	return "mailto:" + url.PathEscape(to) + "?" + query
}

// escape percent-encodes for a mailto query; spaces become %20, not '+'.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
