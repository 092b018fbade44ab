package scoring

import "encoding/json"

// ItemScore is the recorded value for one questionnaire item.
type ItemScore struct {
	Label string `json:"label"`
	Value int    `json:"value"`
	Max   int    `json:"max"`
}

// ScoreSummary is derived from a complete answer set.
type ScoreSummary struct {
	InstrumentID string      `json:"instrument"`
	Items        []ItemScore `json:"items"`
	RawTotal     int         `json:"raw_total"`
	MaxTotal     int         `json:"max_total"`
	HasScaled    bool        `json:"-"`
	ScaledTotal  int         `json:"scaled_total"`
	MaxScaled    int         `json:"max_scaled"`

	// Captions used when rendering the totals.
	TotalCaption  string `json:"-"`
	ScaledCaption string `json:"-"`
}

// Values returns the item values in item order.
func (s *ScoreSummary) Values() []int {
	values := make([]int, len(s.Items))
	for i, item := range s.Items {
		values[i] = item.Value
	}
	return values
}

// MarshalJSON emits scaled_total and max_scaled only for scaled instruments,
// including a scaled total of zero.
func (s ScoreSummary) MarshalJSON() ([]byte, error) {
	type summary ScoreSummary
	out := struct {
		summary
		ScaledTotal *int `json:"scaled_total,omitempty"`
		MaxScaled   *int `json:"max_scaled,omitempty"`
	}{summary: summary(s)}
	if s.HasScaled {
		out.ScaledTotal = &s.ScaledTotal
		out.MaxScaled = &s.MaxScaled
	}
	return json.Marshal(out)
}
