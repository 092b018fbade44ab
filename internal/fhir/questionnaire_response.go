// Package fhir renders completed questionnaires as FHIR R4 resources so they
// can be filed in a record system that accepts FHIR.
package fhir

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nasalprom/nasalprom/internal/output"
	"github.com/nasalprom/nasalprom/internal/scoring"
)

// DefaultQuestionnaireBase prefixes the canonical Questionnaire URL.
const DefaultQuestionnaireBase = "urn:nasalprom:questionnaire:"

// QuestionnaireResponse is a FHIR R4 QuestionnaireResponse for one completed
// instrument.
type QuestionnaireResponse struct {
	ResourceType  string `json:"resourceType"`
	ID            string `json:"id"`
	Status        string `json:"status"`
	Questionnaire string `json:"questionnaire"`
	Authored      string `json:"authored,omitempty"`
	Item          []Item `json:"item"`
}

// Item is one answered question, or a total, in a response.
type Item struct {
	LinkID string   `json:"linkId"`
	Text   string   `json:"text,omitempty"`
	Answer []Answer `json:"answer,omitempty"`
}

// Answer holds an item value.
type Answer struct {
	ValueInteger *int `json:"valueInteger,omitempty"`
}

// Bundle is a FHIR collection Bundle of responses.
type Bundle struct {
	ResourceType string        `json:"resourceType"`
	ID           string        `json:"id"`
	Type         string        `json:"type"`
	Entry        []BundleEntry `json:"entry"`
}

// BundleEntry wraps one response in a Bundle.
type BundleEntry struct {
	FullURL  string                `json:"fullUrl"`
	Resource QuestionnaireResponse `json:"resource"`
}

// Options controls identifiers in the generated resources.
type Options struct {
	// NewID generates resource ids; uuid.New when nil.
	NewID             func() uuid.UUID
	QuestionnaireBase string
}

func (o Options) newID() string {
	if o.NewID != nil {
		return o.NewID().String()
	}
	return uuid.New().String()
}

func (o Options) questionnaire(instrumentID string) string {
	base := o.QuestionnaireBase
	if base == "" {
		base = DefaultQuestionnaireBase
	}
	return base + strings.ToLower(instrumentID)
}

// Build renders one complete instrument. Items carry linkIds "1".."n" in item
// order, followed by "total" and, for scaled instruments, "scaled".
func Build(ctx output.ReportContext, s *scoring.ScoreSummary, opts Options) QuestionnaireResponse {
	qr := QuestionnaireResponse{
		ResourceType:  "QuestionnaireResponse",
		ID:            opts.newID(),
		Status:        "completed",
		Questionnaire: opts.questionnaire(s.InstrumentID),
		Authored:      authored(ctx.DateISO),
	}

	for i, item := range s.Items {
		qr.Item = append(qr.Item, integerItem(strconv.Itoa(i+1), item.Label, item.Value))
	}
	qr.Item = append(qr.Item, integerItem("total", s.TotalCaption, s.RawTotal))
	if s.HasScaled {
		qr.Item = append(qr.Item, integerItem("scaled", s.ScaledCaption, s.ScaledTotal))
	}
	return qr
}

// BuildBundle wraps every completed instrument of res in a collection Bundle.
func BuildBundle(ctx output.ReportContext, res output.Resolution, opts Options) Bundle {
	b := Bundle{
		ResourceType: "Bundle",
		ID:           opts.newID(),
		Type:         "collection",
	}
	for _, s := range []*scoring.ScoreSummary{res.Nose, res.Snot} {
		if s == nil {
			continue
		}
		qr := Build(ctx, s, opts)
		b.Entry = append(b.Entry, BundleEntry{
			FullURL:  "urn:uuid:" + qr.ID,
			Resource: qr,
		})
	}
	return b
}

func integerItem(linkID, text string, value int) Item {
	v := value
	return Item{
		LinkID: linkID,
		Text:   text,
		Answer: []Answer{{ValueInteger: &v}},
	}
}

// authored keeps the date only when it is a valid FHIR date.
func authored(dateISO string) string {
	dateISO = strings.TrimSpace(dateISO)
	if _, err := time.Parse("2006-01-02", dateISO); err != nil {
		return ""
	}
	return dateISO
}
