package output

import (
	"strings"
	"time"
)

// ReportContext is the metadata accompanying a serialization request. Any
// field may be empty.
type ReportContext struct {
	DateISO      string `json:"date,omitempty" yaml:"date"`
	Timepoint    string `json:"timepoint,omitempty" yaml:"timepoint"`
	DatasetLabel string `json:"dataset,omitempty" yaml:"dataset"`
}

// DisplayDate renders DateISO as DD/MM/YYYY. A value that is not a valid
// YYYY-MM-DD date is returned unchanged.
func (c ReportContext) DisplayDate() string {
	return FormatDate(c.DateISO)
}

// FormatDate converts YYYY-MM-DD to DD/MM/YYYY.
func FormatDate(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return ""
	}
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return d.Format("02/01/2006")
}

// metadataLine joins the present fields as "Date: … | Timepoint: … | Dataset: …".
func (c ReportContext) metadataLine() string {
	var parts []string
	if date := c.DisplayDate(); date != "" {
		parts = append(parts, "Date: "+date)
	}
	if tp := strings.TrimSpace(c.Timepoint); tp != "" {
		parts = append(parts, "Timepoint: "+tp)
	}
	if ds := strings.TrimSpace(c.DatasetLabel); ds != "" {
		parts = append(parts, "Dataset: "+ds)
	}
	return strings.Join(parts, " | ")
}
