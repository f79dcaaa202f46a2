package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/typed"
)

func TestNewMoveGeneralDefaults(t *testing.T) {
	m := NewMove(NewLOQ())

	assert.InDelta(t, 0.0, SampleOffset.Get(m.General()).Unwrap(), 1e-12)
	assert.Equal(t, enums.CoordinateZ, SampleOffsetDirection.Get(m.General()).Unwrap())
	assert.Empty(t, m.MonitorNames())

	for _, d := range enums.DetectorTypes {
		bank := m.Detector(d)
		require.NotNil(t, bank)
		for _, f := range corrections {
			assert.InDelta(t, 0.0, f.Get(bank.Record()).Unwrap(), 1e-12, "%s.%s", d, f.Name())
		}
		assert.Empty(t, bank.Name())
		assert.Empty(t, bank.ShortName())
	}
	require.NoError(t, m.Validate())
}

func TestVariantDefaults(t *testing.T) {
	loq := NewLOQ()
	assert.InDelta(t, 317.5/1000., CenterPosition.Get(loq.Record()).Unwrap(), 1e-12)

	s := NewSANS2D()
	assert.InDelta(t, 306.0/1000., HABDetectorRadius.Get(s.Record()).Unwrap(), 1e-12)
	assert.InDelta(t, 4.0, HABDetectorDefaultSD.Get(s.Record()).Unwrap(), 1e-12)
	assert.InDelta(t, 1.1, HABDetectorDefaultX.Get(s.Record()).Unwrap(), 1e-12)
	assert.InDelta(t, 4.0, LABDetectorDefaultSD.Get(s.Record()).Unwrap(), 1e-12)
	for _, f := range []*typed.Field[float64]{HABDetectorX, HABDetectorZ, HABDetectorRotation, LABDetectorX, LABDetectorZ, Monitor4Offset} {
		assert.InDelta(t, 0.0, f.Get(s.Record()).Unwrap(), 1e-12, f.Name())
	}

	l := NewLARMOR()
	assert.InDelta(t, 0.0, BenchRotation.Get(l.Record()).Unwrap(), 1e-12)

	assert.Nil(t, NewVariant(enums.Instrument("ZOOM")))
	assert.Equal(t, enums.InstrumentSANS2D, NewVariant(enums.InstrumentSANS2D).Instrument())
}

func TestValidateDetectorNameConsistency(t *testing.T) {
	m := NewMove(NewSANS2D())
	lab := m.Detector(enums.DetectorLAB).Record()
	hab := m.Detector(enums.DetectorHAB).Record()

	require.NoError(t, DetectorName.Set(lab, "test"))
	require.NoError(t, DetectorNameShort.Set(hab, "test"))
	require.NoError(t, DetectorNameShort.Set(lab, "test"))

	err := m.Validate()
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	assert.Contains(t, err.Error(), "detector_name is set for LAB but missing for HAB")

	require.NoError(t, DetectorName.Set(hab, "test"))
	assert.NoError(t, m.Validate())
}

func TestValidateShortDetectorNameConsistency(t *testing.T) {
	m := NewMove(NewLARMOR())
	lab := m.Detector(enums.DetectorLAB).Record()
	hab := m.Detector(enums.DetectorHAB).Record()

	require.NoError(t, DetectorName.Set(hab, "test"))
	require.NoError(t, DetectorName.Set(lab, "test"))
	require.NoError(t, DetectorNameShort.Set(hab, "test"))

	err := m.Validate()
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))

	require.NoError(t, DetectorNameShort.Set(lab, "test"))
	assert.NoError(t, m.Validate())
}

func namedMove(t *testing.T) *Move {
	t.Helper()
	m := NewMove(NewSANS2D())
	require.NoError(t, MonitorNames.Set(m.General(), map[string]string{"1": "monitor1", "2": "monitor2"}))
	require.NoError(t, SampleOffset.Set(m.General(), 0.053))
	require.NoError(t, DetectorName.Set(m.Detector(enums.DetectorLAB).Record(), "rear-detector"))
	require.NoError(t, DetectorNameShort.Set(m.Detector(enums.DetectorLAB).Record(), "rear"))
	require.NoError(t, DetectorName.Set(m.Detector(enums.DetectorHAB).Record(), "front-detector"))
	require.NoError(t, DetectorNameShort.Set(m.Detector(enums.DetectorHAB).Record(), "front"))
	require.NoError(t, XTranslationCorrection.Set(m.Detector(enums.DetectorHAB).Record(), 324.2))
	require.NoError(t, HABDetectorRotation.Set(m.Variant().Record(), -1.5))
	return m
}

func TestToSettingsMapFlattensNestedState(t *testing.T) {
	m := namedMove(t)
	flat := m.ToSettingsMap()

	assert.Equal(t, 0.053, flat["sample_offset"])
	assert.Equal(t, "Z", flat["sample_offset_direction"])
	assert.Equal(t, []string{"1=monitor1", "2=monitor2"}, flat["monitor_names"])
	assert.Equal(t, 324.2, flat["detectors.HAB.x_translation_correction"])
	assert.Equal(t, "rear", flat["detectors.LAB.detector_name_short"])
	assert.Equal(t, -1.5, flat["variant.hab_detector_rotation"])
	assert.NotContains(t, flat, InstrumentKey)
}

func TestPropertyMapRoundTrip(t *testing.T) {
	for _, v := range []Variant{NewLOQ(), NewSANS2D(), NewLARMOR()} {
		t.Run(v.Instrument().String(), func(t *testing.T) {
			m := NewMove(v)
			require.NoError(t, YTiltCorrection.Set(m.Detector(enums.DetectorLAB).Record(), 0.25))
			m.Freeze()

			props := m.ToPropertyMap()
			assert.Equal(t, v.Instrument().String(), props[InstrumentKey])

			back, err := MoveFromPropertyMap(props)
			require.NoError(t, err)
			assert.Equal(t, props, back.ToPropertyMap())
			assert.Equal(t, v.Instrument(), back.Instrument())
		})
	}

	m := namedMove(t)
	back, err := MoveFromPropertyMap(m.ToPropertyMap())
	require.NoError(t, err)
	assert.Equal(t, m.ToPropertyMap(), back.ToPropertyMap())
	assert.Equal(t, "front", back.Detector(enums.DetectorHAB).ShortName())
}

func TestMoveFromPropertyMapErrors(t *testing.T) {
	_, err := MoveFromPropertyMap(typed.PropertyMap{"sample_offset": 1.0})
	assert.True(t, errors.HasCategory(err, errors.CategoryType))

	_, err = MoveFromPropertyMap(typed.PropertyMap{InstrumentKey: "ZOOM"})
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))

	props := NewMove(NewLOQ()).ToPropertyMap()
	props["sample_offset"] = "far"
	_, err = MoveFromPropertyMap(props)
	assert.True(t, errors.HasCategory(err, errors.CategoryType))

	props = NewMove(NewLOQ()).ToPropertyMap()
	delete(props, "variant.center_position")
	_, err = MoveFromPropertyMap(props)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))

	props = NewMove(NewLOQ()).ToPropertyMap()
	props["detectors.SIDE.x_tilt_correction"] = 1.0
	_, err = MoveFromPropertyMap(props)
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))
}

func TestMoveFromPropertyMapRequiresBankCorrections(t *testing.T) {
	props := NewMove(NewLOQ()).ToPropertyMap()
	for k := range props {
		if strings.HasPrefix(k, "detectors.") {
			delete(props, k)
		}
	}
	_, err := MoveFromPropertyMap(props)
	require.Error(t, err)
	assert.True(t, errors.HasCategory(err, errors.CategoryValidation))
	assert.Contains(t, err.Error(), "detectors.HAB.x_translation_correction")

	props = NewMove(NewSANS2D()).ToPropertyMap()
	delete(props, "detectors.LAB.radius_correction")
	_, err = MoveFromPropertyMap(props)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "detectors.LAB.radius_correction")
}

func TestFreezeAndClone(t *testing.T) {
	m := NewMove(NewLOQ())
	m.Freeze()
	assert.True(t, m.Frozen())

	err := SampleOffset.Set(m.General(), 1)
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))
	err = CenterPosition.Set(m.Variant().Record(), 1)
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))
	err = SideCorrection.Set(m.Detector(enums.DetectorHAB).Record(), 1)
	assert.True(t, errors.HasCategory(err, errors.CategoryValue))

	c := m.Clone()
	assert.False(t, c.Frozen())
	require.NoError(t, CenterPosition.Set(c.Variant().Record(), 1))
	assert.InDelta(t, LOQDefaultCenterPosition, CenterPosition.Get(m.Variant().Record()).Unwrap(), 1e-12)
}

func TestMonitorNamesAreCopies(t *testing.T) {
	m := NewMove(NewLOQ())
	names := m.MonitorNames()
	names["1"] = "monitor1"
	assert.Empty(t, m.MonitorNames())
}
