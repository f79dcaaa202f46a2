package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
)

func TestParseInstrument(t *testing.T) {
	inst, err := ParseInstrument(" sans2d ")
	require.NoError(t, err)
	assert.Equal(t, InstrumentSANS2D, inst)

	_, err = ParseInstrument("ZOOM")
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))
}

func TestSuggestInstrument(t *testing.T) {
	s, ok := SuggestInstrument("LARMR")
	require.True(t, ok)
	assert.Equal(t, "LARMOR", s)

	_, ok = SuggestInstrument("POLARIS-TOF-BANK")
	assert.False(t, ok)
}

func TestSanitiseInstrumentName(t *testing.T) {
	tests := map[string]string{
		"SANS2D":     "SANS2D",
		"sans2d_tof": "SANS2D",
		"LOQ74044":   "LOQ",
		"larmor":     "LARMOR",
		"ZOOM":       "ZOOM",
	}
	for in, want := range tests {
		assert.Equal(t, want, SanitiseInstrumentName(in), in)
	}
}

func TestDetectorTypeFromBankName(t *testing.T) {
	tests := []struct {
		name string
		want DetectorType
	}{
		{"rear-detector", DetectorLAB},
		{"main-detector-bank", DetectorLAB},
		{"DetectorBench", DetectorLAB},
		{" rear ", DetectorLAB},
		{"main", DetectorLAB},
		{"front-detector", DetectorHAB},
		{"HAB", DetectorHAB},
		{"front", DetectorHAB},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectorTypeFromBankName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := DetectorTypeFromBankName("side-bank")
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))
}

func TestEnumerationsRejectUnknownValues(t *testing.T) {
	_, err := ParseReductionMode("Both")
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))

	_, err = ParseReductionDimensionality("ThreeDim")
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))

	_, err = ParseSampleShape("Sphere")
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))

	_, err = ParseSaveType("PDF")
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))

	_, err = ParseRangeStepType("Exp")
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))
}

func TestEnumerationsValid(t *testing.T) {
	assert.True(t, ReductionModeMerged.Valid())
	assert.False(t, ReductionMode("merged").Valid())
	assert.True(t, TwoDim.Valid())
	assert.True(t, ShapeCuboid.Valid())
	assert.True(t, SaveNistQxy.Valid())
	assert.True(t, StepLog.Valid())
	assert.True(t, FacilityISIS.Valid())
	assert.True(t, CoordinateZ.Valid())
	assert.False(t, Instrument("").Valid())

	mode, err := ParseReductionMode("merged")
	require.NoError(t, err)
	assert.Equal(t, ReductionModeMerged, mode)
}
