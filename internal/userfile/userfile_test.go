package userfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/settings"
)

const sans2dUserFile = `
reduction:
  mode: hab
  dimensionality: TwoDim
  event_slices: "0:30:60"
wavelength:
  min: 1.75
  max: 16.5
  step: 0.125
  step_type: Log
scale:
  absolute: 0.074
sample:
  height: 8
  width: 8
  thickness: 2
  shape: Cuboid
  z_offset: 53
save:
  types: [NXcanSAS, CanSAS]
  zero_error_free: false
detectors:
  hab:
    corrections:
      x: -16
      rotation: 0.25
    centre:
      pos1: 155.45
      pos2: -169.6
`

func writeUserFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "user.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConvertsEverySection(t *testing.T) {
	dict, err := Load(t.Context(), writeUserFile(t, sans2dUserFile))
	require.NoError(t, err)
	m := settings.NewModel(dict)

	assert.Equal(t, enums.ReductionModeHAB, m.ReductionMode())
	assert.Equal(t, enums.TwoDim, m.ReductionDimensionality())
	assert.Equal(t, "0:30:60", m.EventSlices())

	assert.Equal(t, 1.75, m.WavelengthMin().Unwrap())
	assert.Equal(t, 16.5, m.WavelengthMax().Unwrap())
	assert.Equal(t, 0.125, m.WavelengthStep().Unwrap())
	assert.Equal(t, enums.StepLog, m.WavelengthStepType())

	assert.Equal(t, 0.074, m.AbsoluteScale().Unwrap())
	assert.Equal(t, 8.0, m.SampleHeight().Unwrap())
	assert.Equal(t, 2.0, m.SampleThickness().Unwrap())
	assert.Equal(t, 53.0, m.ZOffset().Unwrap())
	assert.Equal(t, enums.ShapeCuboid, m.SampleShape())

	assert.Equal(t, []enums.SaveType{enums.SaveNXcanSAS, enums.SaveCanSAS}, m.SaveTypes())
	assert.False(t, m.ZeroErrorFree())
	assert.False(t, m.CompatibilityMode())

	x, ok := m.Correction(settings.CorrectionX, enums.DetectorHAB)
	require.True(t, ok)
	assert.Equal(t, -16.0, x)
	_, ok = m.Correction(settings.CorrectionX, enums.DetectorLAB)
	assert.False(t, ok)

	centre, ok := m.Centre(enums.DetectorHAB)
	require.True(t, ok)
	assert.Equal(t, 155.45, centre.Pos1)
	assert.Equal(t, -169.6, centre.Pos2)
}

func TestEmptyDocumentYieldsEmptyDict(t *testing.T) {
	doc, err := Parse(nil)
	require.NoError(t, err)
	dict, err := doc.ToDict()
	require.NoError(t, err)
	assert.Empty(t, dict)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("reduction:\n  mod: LAB\n"))
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestValidateReportsEveryField(t *testing.T) {
	doc, err := Parse([]byte(`
reduction:
  mode: sideways
  event_slices: "9-5"
wavelength:
  min: -1
save:
  types: [PDF]
`))
	require.NoError(t, err)

	err = doc.Validate()
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	for _, want := range []string{
		`reduction.mode: invalid reduction mode "sideways"`,
		"reduction.event_slices: is not a valid range list",
		"wavelength.min: must be at least 0",
		`save.types[0]: invalid save type "PDF"`,
	} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestToDictRejectsInvertedWavelength(t *testing.T) {
	doc, err := Parse([]byte("wavelength:\n  min: 10\n  max: 2\n"))
	require.NoError(t, err)
	_, err = doc.ToDict()
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.Context(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.True(t, errors.HasCategory(err, errors.CategoryConfig))
}

func TestFromModelRoundTrip(t *testing.T) {
	doc, err := Parse([]byte(sans2dUserFile))
	require.NoError(t, err)
	dict, err := doc.ToDict()
	require.NoError(t, err)

	out, err := Marshal(FromModel(settings.NewModel(dict)))
	require.NoError(t, err)

	again, err := Parse(out)
	require.NoError(t, err)
	dict2, err := again.ToDict()
	require.NoError(t, err)
	assert.Equal(t, dict, dict2)
}
