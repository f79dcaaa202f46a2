package settings

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/ranges"
)

// Model wraps a Dict with typed, validated accessors. It is not safe for
// concurrent use.
type Model struct {
	dict Dict
}

// NewModel wraps dict. A nil dict starts empty.
func NewModel(dict Dict) *Model {
	if dict == nil {
		dict = Dict{}
	}
	return &Model{dict: dict}
}

// Settings returns the underlying Dict.
func (m *Model) Settings() Dict { return m.dict }

// Reload replaces every entry with those of dict.
func (m *Model) Reload(dict Dict) {
	if dict == nil {
		dict = Dict{}
	}
	m.dict = dict
}

// Get returns the last entry of id, or def when there is none.
func (m *Model) Get(id ElementID, def any) any {
	entries := m.dict[id]
	if len(entries) == 0 {
		return def
	}
	return entries[len(entries)-1]
}

// Set replaces every entry of id with value.
func (m *Model) Set(id ElementID, value any) {
	m.dict[id] = []any{value}
}

// Entries returns a copy of every entry of id.
func (m *Model) Entries(id ElementID) []any {
	return append([]any(nil), m.dict[id]...)
}

// Lookup returns the last entry of id when it has type T.
func Lookup[T any](m *Model, id ElementID) (T, bool) {
	v, ok := m.Get(id, nil).(T)
	return v, ok
}

// LookupOr returns the last entry of id, or def when it is missing or of
// another type.
func LookupOr[T any](m *Model, id ElementID, def T) T {
	if v, ok := Lookup[T](m, id); ok {
		return v
	}
	return def
}

// EventSlices returns the event-slice string, "" when unset.
func (m *Model) EventSlices() string {
	return LookupOr(m, EventSlices, EventBinningString{}).Value
}

// SetEventSlices stores a slice string after checking it parses. Blank input
// is ignored.
func (m *Model) SetEventSlices(value string) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	if _, err := ranges.Parse(value); err != nil {
		return err
	}
	m.Set(EventSlices, EventBinningString{Value: value})
	return nil
}

// ReductionDimensionality defaults to OneDim.
func (m *Model) ReductionDimensionality() enums.ReductionDimensionality {
	return LookupOr(m, ReductionDimensionality, enums.OneDim)
}

func (m *Model) SetReductionDimensionality(v enums.ReductionDimensionality) error {
	if !v.Valid() {
		return enumError("reduction dimensionality", v)
	}
	m.Set(ReductionDimensionality, v)
	return nil
}

// ReductionMode defaults to LAB.
func (m *Model) ReductionMode() enums.ReductionMode {
	return LookupOr(m, ReductionMode, enums.ReductionModeLAB)
}

func (m *Model) SetReductionMode(v enums.ReductionMode) error {
	if !v.Valid() {
		return enumError("reduction mode", v)
	}
	m.Set(ReductionMode, v)
	return nil
}

// WavelengthStepType defaults to linear.
func (m *Model) WavelengthStepType() enums.RangeStepType {
	if r, ok := Lookup[SimpleRange](m, Wavelength); ok {
		return r.StepType
	}
	return enums.StepLin
}

func (m *Model) WavelengthMin() foundation.Option[float64] {
	return m.wavelengthField(func(r SimpleRange) float64 { return r.Start })
}

func (m *Model) WavelengthMax() foundation.Option[float64] {
	return m.wavelengthField(func(r SimpleRange) float64 { return r.Stop })
}

func (m *Model) WavelengthStep() foundation.Option[float64] {
	return m.wavelengthField(func(r SimpleRange) float64 { return r.Step })
}

func (m *Model) SetWavelengthStepType(v enums.RangeStepType) error {
	if !v.Valid() {
		return enumError("wavelength step type", v)
	}
	m.updateWavelength(func(r *SimpleRange) { r.StepType = v })
	return nil
}

func (m *Model) SetWavelengthMin(v float64) error {
	if err := nonNegative("wavelength min", v); err != nil {
		return err
	}
	m.updateWavelength(func(r *SimpleRange) { r.Start = v })
	return nil
}

func (m *Model) SetWavelengthMax(v float64) error {
	if err := nonNegative("wavelength max", v); err != nil {
		return err
	}
	m.updateWavelength(func(r *SimpleRange) { r.Stop = v })
	return nil
}

func (m *Model) SetWavelengthStep(v float64) error {
	if err := nonNegative("wavelength step", v); err != nil {
		return err
	}
	m.updateWavelength(func(r *SimpleRange) { r.Step = v })
	return nil
}

// wavelengthField reads one part of the wavelength range. Placeholders that
// were never overridden read as unset.
func (m *Model) wavelengthField(pick func(SimpleRange) float64) foundation.Option[float64] {
	r, ok := Lookup[SimpleRange](m, Wavelength)
	if !ok || pick(r) == unsetValue {
		return foundation.None[float64]()
	}
	return foundation.Some(pick(r))
}

// updateWavelength rebuilds every wavelength entry with one field changed.
// Missing entries start from placeholders that later setters override.
func (m *Model) updateWavelength(apply func(*SimpleRange)) {
	current := m.dict[Wavelength]
	if len(current) == 0 {
		current = []any{SimpleRange{Start: unsetValue, Stop: unsetValue, Step: unsetValue, StepType: enums.StepLin}}
	}
	next := make([]any, 0, len(current))
	for _, entry := range current {
		r, ok := entry.(SimpleRange)
		if !ok {
			continue
		}
		apply(&r)
		next = append(next, r)
	}
	m.dict[Wavelength] = next
}

// AbsoluteScale returns the S parameter of the scales entry.
func (m *Model) AbsoluteScale() foundation.Option[float64] {
	if s, ok := Lookup[ScalesEntry](m, Scales); ok {
		return foundation.Some(s.S)
	}
	return foundation.None[float64]()
}

// SetAbsoluteScale rebuilds the scales entries with S set to v and the
// geometry factors cleared. A zero v keeps the previous S of each entry.
func (m *Model) SetAbsoluteScale(v float64) error {
	if err := nonNegative("absolute scale", v); err != nil {
		return err
	}
	current := m.dict[Scales]
	if len(current) == 0 {
		current = []any{ScalesEntry{S: 100}}
	}
	next := make([]any, 0, len(current))
	for _, entry := range current {
		if prev, ok := entry.(ScalesEntry); ok {
			s := v
			if s == 0 {
				s = prev.S
			}
			next = append(next, ScalesEntry{S: s})
		}
	}
	m.dict[Scales] = next
	return nil
}

func (m *Model) SampleHeight() foundation.Option[float64]    { return m.optionalFloat(SampleHeight) }
func (m *Model) SampleWidth() foundation.Option[float64]     { return m.optionalFloat(SampleWidth) }
func (m *Model) SampleThickness() foundation.Option[float64] { return m.optionalFloat(SampleThickness) }
func (m *Model) ZOffset() foundation.Option[float64]         { return m.optionalFloat(ZOffset) }

func (m *Model) SetSampleHeight(v float64) error    { return m.setNonNegative(SampleHeight, "sample height", v) }
func (m *Model) SetSampleWidth(v float64) error     { return m.setNonNegative(SampleWidth, "sample width", v) }
func (m *Model) SetSampleThickness(v float64) error { return m.setNonNegative(SampleThickness, "sample thickness", v) }

// SetZOffset stores the sample offset along the beam; it may be negative.
func (m *Model) SetZOffset(v float64) { m.Set(ZOffset, v) }

// SampleShape defaults to a cylinder with its axis up.
func (m *Model) SampleShape() enums.SampleShape {
	return LookupOr(m, SampleShape, enums.ShapeCylinderAxisUp)
}

// SetSampleShape stores the shape. An empty shape means "read from file"
// and leaves the setting untouched.
func (m *Model) SetSampleShape(v enums.SampleShape) error {
	if v == "" {
		return nil
	}
	if !v.Valid() {
		return enumError("sample shape", v)
	}
	m.Set(SampleShape, v)
	return nil
}

// CompatibilityMode defaults to off.
func (m *Model) CompatibilityMode() bool    { return LookupOr(m, CompatibilityMode, false) }
func (m *Model) SetCompatibilityMode(v bool) { m.Set(CompatibilityMode, v) }

// ZeroErrorFree defaults to on.
func (m *Model) ZeroErrorFree() bool    { return LookupOr(m, ZeroErrorFree, true) }
func (m *Model) SetZeroErrorFree(v bool) { m.Set(ZeroErrorFree, v) }

// SaveTypes defaults to NXcanSAS only. The result is a copy.
func (m *Model) SaveTypes() []enums.SaveType {
	if v, ok := Lookup[[]enums.SaveType](m, SaveTypes); ok {
		return append([]enums.SaveType(nil), v...)
	}
	return []enums.SaveType{enums.SaveNXcanSAS}
}

func (m *Model) SetSaveTypes(v []enums.SaveType) error {
	for _, s := range v {
		if !s.Valid() {
			return enumError("save type", s)
		}
	}
	m.Set(SaveTypes, append([]enums.SaveType(nil), v...))
	return nil
}

// Correction returns the last correction of id recorded for bank.
func (m *Model) Correction(id ElementID, bank enums.DetectorType) (float64, bool) {
	entries := m.dict[id]
	for i := len(entries) - 1; i >= 0; i-- {
		if c, ok := entries[i].(DetectorCorrection); ok && c.Detector == bank {
			return c.Value, true
		}
	}
	return 0, false
}

// SetCorrection replaces the correction of id for bank, keeping the entries
// of other banks.
func (m *Model) SetCorrection(id ElementID, bank enums.DetectorType, v float64) error {
	if !isCorrection(id) {
		return errors.ValueError(fmt.Sprintf("%s is not a detector correction", id)).Build()
	}
	if !bank.Valid() {
		return enumError("detector type", bank)
	}
	m.dict[id] = replaceForBank(m.dict[id], bank, DetectorCorrection{Value: v, Detector: bank})
	return nil
}

// Centre returns the beam centre recorded for bank.
func (m *Model) Centre(bank enums.DetectorType) (CentreEntry, bool) {
	entries := m.dict[Centre]
	for i := len(entries) - 1; i >= 0; i-- {
		if c, ok := entries[i].(CentreEntry); ok && c.Detector == bank {
			return c, true
		}
	}
	return CentreEntry{}, false
}

// SetCentre replaces the beam centre of c.Detector.
func (m *Model) SetCentre(c CentreEntry) error {
	if !c.Detector.Valid() {
		return enumError("detector type", c.Detector)
	}
	m.dict[Centre] = replaceForBank(m.dict[Centre], c.Detector, c)
	return nil
}

func (m *Model) optionalFloat(id ElementID) foundation.Option[float64] {
	if v, ok := Lookup[float64](m, id); ok {
		return foundation.Some(v)
	}
	return foundation.None[float64]()
}

func (m *Model) setNonNegative(id ElementID, label string, v float64) error {
	if err := nonNegative(label, v); err != nil {
		return err
	}
	m.Set(id, v)
	return nil
}

func replaceForBank(entries []any, bank enums.DetectorType, entry any) []any {
	next := make([]any, 0, len(entries)+1)
	for _, e := range entries {
		switch v := e.(type) {
		case DetectorCorrection:
			if v.Detector == bank {
				continue
			}
		case CentreEntry:
			if v.Detector == bank {
				continue
			}
		}
		next = append(next, e)
	}
	return append(next, entry)
}

func isCorrection(id ElementID) bool {
	for _, c := range CorrectionIDs {
		if c == id {
			return true
		}
	}
	return false
}

func nonNegative(label string, v float64) error {
	if v < 0 {
		return errors.ValueError(fmt.Sprintf("%s must not be negative, got %v", label, v)).
			WithContext("value", v).
			Build()
	}
	return nil
}

func enumError(label string, v fmt.Stringer) error {
	return errors.ValueError(fmt.Sprintf("a %s was expected, got %q", label, v.String())).
		WithContext("value", v.String()).
		Build()
}
