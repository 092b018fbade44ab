package scoring

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasalprom/nasalprom/internal/answers"
	"github.com/nasalprom/nasalprom/internal/instrument"
	"github.com/nasalprom/nasalprom/internal/types"
)

func filled(t *testing.T, inst *instrument.Instrument, values ...int) *answers.AnswerSet {
	t.Helper()
	require.Len(t, values, inst.Len())
	a := answers.New(inst)
	for i, v := range values {
		require.NoError(t, a.Record(i, v))
	}
	return a
}

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestSummarizeNOSE(t *testing.T) {
	nose := instrument.Default().NOSE()

	tests := []struct {
		name       string
		values     []int
		wantRaw    int
		wantScaled int
	}{
		{"all zeros", []int{0, 0, 0, 0, 0}, 0, 0},
		{"all max", []int{4, 4, 4, 4, 4}, 20, 100},
		{"all ones", []int{1, 1, 1, 1, 1}, 5, 25},
		{"mixed", []int{0, 1, 2, 3, 4}, 10, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Summarize(filled(t, nose, tt.values...))
			assert.Equal(t, types.InstrumentNOSE, s.InstrumentID)
			assert.Equal(t, tt.wantRaw, s.RawTotal)
			assert.True(t, s.HasScaled)
			assert.Equal(t, tt.wantScaled, s.ScaledTotal)
			assert.Equal(t, 20, s.MaxTotal)
			assert.Equal(t, 100, s.MaxScaled)
			assert.Equal(t, tt.values, s.Values())
			assert.Equal(t, "NOSE raw total", s.TotalCaption)
			assert.Equal(t, "NOSE score (0–100)", s.ScaledCaption)
		})
	}
}

func TestSummarizeSNOT22(t *testing.T) {
	snot := instrument.Default().SNOT22()

	s := Summarize(filled(t, snot, repeat(2, 22)...))
	assert.Equal(t, types.InstrumentSNOT22, s.InstrumentID)
	assert.Equal(t, 44, s.RawTotal)
	assert.Equal(t, 110, s.MaxTotal)
	assert.False(t, s.HasScaled)
	assert.Equal(t, 0, s.ScaledTotal)
	assert.Equal(t, "SNOT-22 total", s.TotalCaption)
	assert.Empty(t, s.ScaledCaption)
	require.Len(t, s.Items, 22)
	assert.Equal(t, ItemScore{Label: "Need to blow nose", Value: 2, Max: 5}, s.Items[0])

	s = Summarize(filled(t, snot, repeat(5, 22)...))
	assert.Equal(t, 110, s.RawTotal)
}

func TestSummarizePanicsOnIncomplete(t *testing.T) {
	nose := instrument.Default().NOSE()

	assert.Panics(t, func() { Summarize(answers.New(nose)) })

	partial := answers.New(nose)
	require.NoError(t, partial.Record(0, 1))
	assert.Panics(t, func() { Summarize(partial) })
}

func TestScoreSummaryJSONScaledFields(t *testing.T) {
	catalog := instrument.Default()

	tests := []struct {
		name       string
		summary    ScoreSummary
		wantScaled bool
		wantTotal  float64
	}{
		{
			name:       "all-zero NOSE keeps a zero scaled total",
			summary:    Summarize(filled(t, catalog.NOSE(), repeat(0, 5)...)),
			wantScaled: true,
			wantTotal:  0,
		},
		{
			name:       "NOSE",
			summary:    Summarize(filled(t, catalog.NOSE(), repeat(2, 5)...)),
			wantScaled: true,
			wantTotal:  50,
		},
		{
			name:    "SNOT-22 has no scaled fields",
			summary: Summarize(filled(t, catalog.SNOT22(), repeat(0, 22)...)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.summary)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Contains(t, decoded, "raw_total")

			total, hasTotal := decoded["scaled_total"]
			_, hasMax := decoded["max_scaled"]
			assert.Equal(t, tt.wantScaled, hasTotal)
			assert.Equal(t, tt.wantScaled, hasMax)
			if tt.wantScaled {
				assert.Equal(t, tt.wantTotal, total)
				assert.Equal(t, float64(100), decoded["max_scaled"])
			}
		})
	}
}
