package output

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nasalprom/nasalprom/internal/answers"
	"github.com/nasalprom/nasalprom/internal/instrument"
)

func repeat(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func answerSet(t *testing.T, inst *instrument.Instrument, values ...int) *answers.AnswerSet {
	t.Helper()
	a := answers.New(inst)
	for i, v := range values {
		require.NoError(t, a.Record(i, v))
	}
	return a
}

func noseSet(t *testing.T, values ...int) *answers.AnswerSet {
	return answerSet(t, instrument.Default().NOSE(), values...)
}

func snotSet(t *testing.T, values ...int) *answers.AnswerSet {
	return answerSet(t, instrument.Default().SNOT22(), values...)
}

func resolve(t *testing.T, nose, snot *answers.AnswerSet) Resolution {
	t.Helper()
	res, err := Resolve(nose, snot)
	require.NoError(t, err)
	return res
}
