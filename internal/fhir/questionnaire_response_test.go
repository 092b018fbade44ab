package fhir

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasalprom/nasalprom/internal/answers"
	"github.com/nasalprom/nasalprom/internal/instrument"
	"github.com/nasalprom/nasalprom/internal/output"
)

func sequentialIDs() func() uuid.UUID {
	n := byte(0)
	return func() uuid.UUID {
		n++
		var id uuid.UUID
		id[15] = n
		return id
	}
}

func resolve(t *testing.T, nose, snot []int) output.Resolution {
	t.Helper()
	build := func(inst *instrument.Instrument, values []int) *answers.AnswerSet {
		a := answers.New(inst)
		for i, v := range values {
			require.NoError(t, a.Record(i, v))
		}
		return a
	}
	res, err := output.Resolve(build(instrument.Default().NOSE(), nose), build(instrument.Default().SNOT22(), snot))
	require.NoError(t, err)
	return res
}

func TestBuildNOSE(t *testing.T) {
	res := resolve(t, []int{1, 2, 3, 4, 0}, nil)
	opts := Options{NewID: sequentialIDs()}

	qr := Build(output.ReportContext{DateISO: "2024-03-05"}, res.Nose, opts)

	assert.Equal(t, "QuestionnaireResponse", qr.ResourceType)
	assert.Equal(t, "00000000-0000-0000-0000-000000000001", qr.ID)
	assert.Equal(t, "completed", qr.Status)
	assert.Equal(t, "urn:nasalprom:questionnaire:nose", qr.Questionnaire)
	assert.Equal(t, "2024-03-05", qr.Authored)

	require.Len(t, qr.Item, 7)
	assert.Equal(t, "1", qr.Item[0].LinkID)
	assert.Equal(t, "Nasal congestion or stuffiness", qr.Item[0].Text)
	require.Len(t, qr.Item[0].Answer, 1)
	assert.Equal(t, 1, *qr.Item[0].Answer[0].ValueInteger)
	assert.Equal(t, 0, *qr.Item[4].Answer[0].ValueInteger)

	assert.Equal(t, "total", qr.Item[5].LinkID)
	assert.Equal(t, 10, *qr.Item[5].Answer[0].ValueInteger)
	assert.Equal(t, "scaled", qr.Item[6].LinkID)
	assert.Equal(t, 50, *qr.Item[6].Answer[0].ValueInteger)
}

func TestBuildSNOT22HasNoScaledItem(t *testing.T) {
	snot := make([]int, 22)
	res := resolve(t, nil, snot)

	qr := Build(output.ReportContext{DateISO: "not a date"}, res.Snot, Options{QuestionnaireBase: "https://example.org/Questionnaire/"})

	assert.Equal(t, "https://example.org/Questionnaire/snot-22", qr.Questionnaire)
	assert.Empty(t, qr.Authored)
	require.Len(t, qr.Item, 23)
	assert.Equal(t, "total", qr.Item[22].LinkID)
	_, err := uuid.Parse(qr.ID)
	assert.NoError(t, err)
}

func TestBuildBundle(t *testing.T) {
	snot := make([]int, 22)
	for i := range snot {
		snot[i] = 2
	}

	t.Run("full", func(t *testing.T) {
		res := resolve(t, []int{1, 1, 1, 1, 1}, snot)
		b := BuildBundle(output.ReportContext{}, res, Options{NewID: sequentialIDs()})

		assert.Equal(t, "Bundle", b.ResourceType)
		assert.Equal(t, "collection", b.Type)
		require.Len(t, b.Entry, 2)
		assert.Equal(t, "urn:uuid:"+b.Entry[0].Resource.ID, b.Entry[0].FullURL)
		assert.Equal(t, "urn:nasalprom:questionnaire:nose", b.Entry[0].Resource.Questionnaire)
		assert.Equal(t, "urn:nasalprom:questionnaire:snot-22", b.Entry[1].Resource.Questionnaire)
		assert.NotEqual(t, b.Entry[0].Resource.ID, b.Entry[1].Resource.ID)
	})

	t.Run("blank instrument is not exported", func(t *testing.T) {
		res := resolve(t, nil, snot)
		b := BuildBundle(output.ReportContext{}, res, Options{})
		require.Len(t, b.Entry, 1)
		assert.Equal(t, "urn:nasalprom:questionnaire:snot-22", b.Entry[0].Resource.Questionnaire)
	})
}

func TestQuestionnaireResponseJSON(t *testing.T) {
	res := resolve(t, []int{0, 0, 0, 0, 0}, nil)
	qr := Build(output.ReportContext{}, res.Nose, Options{NewID: sequentialIDs()})

	data, err := json.Marshal(qr)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "QuestionnaireResponse", decoded["resourceType"])
	assert.NotContains(t, decoded, "authored")

	items := decoded["item"].([]any)
	first := items[0].(map[string]any)
	answer := first["answer"].([]any)[0].(map[string]any)
	assert.Equal(t, float64(0), answer["valueInteger"])
}
