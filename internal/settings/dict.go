// Package settings is the GUI-facing model over parsed user-file entries.
//
// A Dict maps element ids to the entries read from a user file; the last
// entry of an id is the effective one. Model wraps a Dict with typed
// accessors that enforce the domain constraints of each setting. Composite
// entries are values and are rebuilt on update, never mutated in place.
package settings

import "git.home.luguber.info/inful/sansstate/internal/enums"

// ElementID identifies a user-file setting.
type ElementID string

const (
	EventSlices             ElementID = "other.event_slices"
	ReductionDimensionality ElementID = "other.reduction_dimensionality"
	SampleHeight            ElementID = "other.sample_height"
	SampleWidth             ElementID = "other.sample_width"
	SampleThickness         ElementID = "other.sample_thickness"
	SampleShape             ElementID = "other.sample_shape"
	CompatibilityMode       ElementID = "other.use_compatibility_mode"
	ZeroErrorFree           ElementID = "other.save_as_zero_error_free"
	SaveTypes               ElementID = "other.save_types"

	ReductionMode ElementID = "detector.reduction_mode"

	CorrectionX           ElementID = "detector.correction_x"
	CorrectionY           ElementID = "detector.correction_y"
	CorrectionZ           ElementID = "detector.correction_z"
	CorrectionRotation    ElementID = "detector.correction_rotation"
	CorrectionRadius      ElementID = "detector.correction_radius"
	CorrectionTranslation ElementID = "detector.correction_translation"
	CorrectionXTilt       ElementID = "detector.correction_x_tilt"
	CorrectionYTilt       ElementID = "detector.correction_y_tilt"

	Wavelength ElementID = "limits.wavelength"
	Scales     ElementID = "set.scales"
	Centre     ElementID = "set.centre"
	ZOffset    ElementID = "sample.offset"
)

// CorrectionIDs lists the per-bank detector correction settings.
var CorrectionIDs = []ElementID{
	CorrectionX, CorrectionY, CorrectionZ, CorrectionRotation,
	CorrectionRadius, CorrectionTranslation, CorrectionXTilt, CorrectionYTilt,
}

// Dict holds the entries of a parsed user file.
type Dict map[ElementID][]any

// Clone returns a copy whose entry slices are independent of d.
func (d Dict) Clone() Dict {
	out := make(Dict, len(d))
	for id, entries := range d {
		out[id] = append([]any(nil), entries...)
	}
	return out
}

// EventBinningString is a raw event-slice string.
type EventBinningString struct {
	Value string
}

// SimpleRange is a start/stop/step triple with its step type.
type SimpleRange struct {
	Start    float64
	Stop     float64
	Step     float64
	StepType enums.RangeStepType
}

// ScalesEntry carries the absolute scale S and the geometry factors A to D.
type ScalesEntry struct {
	S, A, B, C, D float64
}

// DetectorCorrection is a correction value for one bank.
type DetectorCorrection struct {
	Value    float64
	Detector enums.DetectorType
}

// CentreEntry is a beam centre position for one bank.
type CentreEntry struct {
	Pos1, Pos2 float64
	Detector   enums.DetectorType
}

// unsetValue fills composite fields that must be overridden before use.
const unsetValue = -1.0
