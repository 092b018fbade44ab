package answers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nasalprom/nasalprom/internal/instrument"
	"github.com/nasalprom/nasalprom/internal/types"
)

func TestClassify(t *testing.T) {
	nose := instrument.Default().NOSE()

	tests := []struct {
		name     string
		answered []int
		want     types.CompletionState
	}{
		{"none answered", nil, types.StateEmpty},
		{"one answered", []int{0}, types.StatePartial},
		{"four of five", []int{0, 1, 2, 3}, types.StatePartial},
		{"last only", []int{4}, types.StatePartial},
		{"all answered", []int{0, 1, 2, 3, 4}, types.StateComplete},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := New(nose)
			for _, idx := range tt.answered {
				require.NoError(t, a.Record(idx, 0))
			}
			assert.Equal(t, tt.want, Classify(a))
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.Equal(t, types.StateEmpty, Classify(nil))
}

// Every slot count between 0 and the item count classifies consistently.
func TestClassifyAllCounts(t *testing.T) {
	snot := instrument.Default().SNOT22()
	for n := 0; n <= snot.Len(); n++ {
		a := New(snot)
		for i := 0; i < n; i++ {
			require.NoError(t, a.Record(i, 2))
		}
		want := types.StatePartial
		switch n {
		case 0:
			want = types.StateEmpty
		case snot.Len():
			want = types.StateComplete
		}
		assert.Equal(t, want, Classify(a), "answered=%d", n)
	}
}

func TestAssertUsable(t *testing.T) {
	nose := instrument.Default().NOSE()

	t.Run("empty is usable", func(t *testing.T) {
		state, err := AssertUsable("NOSE", New(nose))
		require.NoError(t, err)
		assert.Equal(t, types.StateEmpty, state)
	})

	t.Run("complete is usable", func(t *testing.T) {
		a := New(nose)
		for i := 0; i < nose.Len(); i++ {
			require.NoError(t, a.Record(i, 1))
		}
		state, err := AssertUsable("NOSE", a)
		require.NoError(t, err)
		assert.Equal(t, types.StateComplete, state)
	})

	t.Run("partial fails with label", func(t *testing.T) {
		a := New(nose)
		require.NoError(t, a.Record(2, 1))
		state, err := AssertUsable("NOSE", a)
		require.Error(t, err)
		assert.Equal(t, types.StatePartial, state)
		assert.True(t, types.IsValidationError(err))
		assert.Equal(t,
			"NOSE is partly completed. Please answer all questions in NOSE, or clear it and leave it blank.",
			err.Error())
	})

	t.Run("custom label", func(t *testing.T) {
		a := New(instrument.Default().SNOT22())
		require.NoError(t, a.Record(0, 1))
		_, err := AssertUsable("SNOT-22", a)
		assert.ErrorContains(t, err, "SNOT-22 is partly completed")
		assert.ErrorContains(t, err, "answer all questions in SNOT-22")
	})
}
