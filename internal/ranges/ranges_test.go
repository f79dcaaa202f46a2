package ranges

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want List
	}{
		{"simple", "8-9", List{{8, 9}}},
		{"two simple", "8-9,10-12", List{{8, 9}, {10, 12}}},
		{"stepped", "5:1:10", List{{5, 6}, {6, 7}, {7, 8}, {8, 9}, {9, 10}}},
		{"lower bound", ">5", List{{5, Unbounded}}},
		{"upper bound", "<5", List{{Unbounded, 5}}},
		{"whitespace", " 8 - 9 ,\t> 12.5 ", List{{8, 9}, {12.5, Unbounded}}},
		{"clamped step", "0:2:5", List{{0, 2}, {2, 4}, {4, 5}}},
		{"mixed order", "10-12,<3,1:1:3", List{{10, 12}, {Unbounded, 3}, {1, 2}, {2, 3}}},
		{"exponent", "1e2-2E+2", List{{100, 200}}},
		{"equal bounds", "4-4", List{{4, 4}}},
		{"empty step range", "5:1:5", List{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseEmptyIsNil(t *testing.T) {
	for _, in := range []string{"", "   ", "\t"} {
		got, err := Parse(in)
		require.NoError(t, err)
		assert.Nil(t, got)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"9-5", "-5-3", "5:0:10", "10:1:5", "8-9,", "abc", ">-1", "5", "1-2-3", "<", "1:2"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.True(t, errors.HasCategory(err, errors.CategoryParse))
		})
	}
}

func TestParseStepDoesNotDrift(t *testing.T) {
	got, err := Parse("0:0.1:1")
	require.NoError(t, err)
	require.Len(t, got, 10)
	assert.InDelta(t, 0.7, got[7].Lower, 1e-12)
	assert.Equal(t, 1.0, got[9].Upper)
	for i := 1; i < len(got); i++ {
		assert.Equal(t, got[i-1].Upper, got[i].Lower)
	}
}

func TestParseRejectsHugeExpansion(t *testing.T) {
	_, err := Parse("0:0.000001:1000")
	assert.True(t, errors.HasCategory(err, errors.CategoryParse))
}

func TestParseIsDeterministic(t *testing.T) {
	a, err := Parse("0:0.3:2, >7")
	require.NoError(t, err)
	b, err := Parse("0:0.3:2, >7")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestBounds(t *testing.T) {
	lower, upper, err := Bounds("8-9, >10")
	require.NoError(t, err)
	assert.Equal(t, []float64{8, 10}, lower)
	assert.Equal(t, []float64{9, Unbounded}, upper)

	lower, upper, err = Bounds("")
	require.NoError(t, err)
	assert.Nil(t, lower)
	assert.Nil(t, upper)

	_, _, err = Bounds("9-5")
	assert.Error(t, err)
}

func TestListString(t *testing.T) {
	l, err := Parse("8-9,>10.5,<3")
	require.NoError(t, err)
	assert.Equal(t, "8-9,>10.5,<3", l.String())
	assert.Equal(t, "[8, -1]", Range{8, Unbounded}.String())
}

func TestBins(t *testing.T) {
	bins, err := Bins(1, 5, 1.5, enums.StepLin)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2.5, 4, 5}, bins)

	bins, err = Bins(1, 10, 1, enums.StepLog)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4, 8, 10}, bins)

	_, err = Bins(1, 10, 0, enums.StepLin)
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))

	_, err = Bins(0, 10, 1, enums.StepLog)
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))
}

func TestRebinRanges(t *testing.T) {
	lower, upper, err := RebinRanges(2, 8, 2, enums.StepLin)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4, 6}, lower)
	assert.Equal(t, []float64{4, 6, 8}, upper)

	lower, upper, err = RebinArrayRanges([3]float64{1, -1, 10})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 4, 8}, lower)
	assert.Equal(t, []float64{2, 4, 8, 10}, upper)
}
