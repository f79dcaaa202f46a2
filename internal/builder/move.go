package builder

import (
	"fmt"

	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/state"
	"git.home.luguber.info/inful/sansstate/internal/typed"
)

// MoveBuilder builds a state.Move for one instrument.
type MoveBuilder interface {
	Phase() Phase
	Instrument() enums.Instrument
	SetSampleOffset(v float64) error
	SetSampleOffsetDirection(c enums.CanonicalCoordinate) error
	SetCorrection(bank enums.DetectorType, field *typed.Field[float64], v float64) error
	SetDetectorNames(bank enums.DetectorType, names DetectorNames) error
	Build() (*state.Move, error)
}

// moveBuilder holds the values staged by setters until Build.
type moveBuilder struct {
	lifecycle
	data    *state.DataInfo
	staged  *state.Move
	named   map[enums.DetectorType]bool
	newBase func() state.Variant
}

func newMoveBuilder(data *state.DataInfo, newBase func() state.Variant) moveBuilder {
	base := newBase()
	return moveBuilder{
		lifecycle: lifecycle{name: base.Instrument().String() + " move"},
		data:      data,
		staged:    state.NewMove(base),
		named:     make(map[enums.DetectorType]bool),
		newBase:   newBase,
	}
}

// Instrument returns the instrument this builder targets.
func (b *moveBuilder) Instrument() enums.Instrument { return b.staged.Instrument() }

// SetSampleOffset stages the sample offset along the offset direction.
func (b *moveBuilder) SetSampleOffset(v float64) error {
	return b.configure(func() error { return state.SampleOffset.Set(b.staged.General(), v) })
}

// SetSampleOffsetDirection stages the axis of the sample offset.
func (b *moveBuilder) SetSampleOffsetDirection(c enums.CanonicalCoordinate) error {
	return b.configure(func() error { return state.SampleOffsetDirection.Set(b.staged.General(), c) })
}

// SetCorrection stages one numeric correction of a bank. field must be one
// of state.BankCorrections.
func (b *moveBuilder) SetCorrection(bank enums.DetectorType, field *typed.Field[float64], v float64) error {
	return b.configure(func() error {
		det, err := b.bank(bank)
		if err != nil {
			return err
		}
		if !isBankCorrection(field) {
			return errors.ValueError(fmt.Sprintf("%s is not a detector bank correction", fieldName(field))).Build()
		}
		return field.Set(det.Record(), v)
	})
}

// SetDetectorNames overrides the names looked up for bank.
func (b *moveBuilder) SetDetectorNames(bank enums.DetectorType, names DetectorNames) error {
	return b.configure(func() error {
		det, err := b.bank(bank)
		if err != nil {
			return err
		}
		if err := state.DetectorName.Set(det.Record(), names.Long); err != nil {
			return err
		}
		if err := state.DetectorNameShort.Set(det.Record(), names.Short); err != nil {
			return err
		}
		b.named[bank] = true
		return nil
	})
}

func (b *moveBuilder) setVariant(field *typed.Field[float64], v float64) error {
	return b.configure(func() error { return field.Set(b.staged.Variant().Record(), v) })
}

func (b *moveBuilder) bank(d enums.DetectorType) (*state.DetectorBank, error) {
	det := b.staged.Detector(d)
	if det == nil {
		return nil, errors.ValueError(fmt.Sprintf("unknown detector bank %q", d)).Build()
	}
	return det, nil
}

// Build assembles the Move: instrument defaults, overlaid with every staged
// value, detector names and monitor names from the lookup tables.
func (b *moveBuilder) Build() (*state.Move, error) {
	if err := b.beginBuild(); err != nil {
		return nil, err
	}

	inst := b.Instrument()
	m := state.NewMove(b.newBase())
	if err := m.General().Merge(b.staged.General()); err != nil {
		return nil, err
	}
	if err := m.Variant().Record().Merge(b.staged.Variant().Record()); err != nil {
		return nil, err
	}
	for _, d := range enums.DetectorTypes {
		det := m.Detector(d)
		if err := det.Record().Merge(b.staged.Detector(d).Record()); err != nil {
			return nil, err
		}
		if b.named[d] {
			continue
		}
		names, ok := LookupDetectorNames(inst, d)
		if !ok {
			return nil, errors.BuilderError(fmt.Sprintf("no detector names known for %s %s", inst, d)).
				WithContext("instrument", inst.String()).
				Build()
		}
		if err := state.DetectorName.Set(det.Record(), names.Long); err != nil {
			return nil, err
		}
		if err := state.DetectorNameShort.Set(det.Record(), names.Short); err != nil {
			return nil, err
		}
	}
	if err := state.MonitorNames.Set(m.General(), MonitorNames(inst)); err != nil {
		return nil, err
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	m.Freeze()
	b.finish()
	return m, nil
}

func isBankCorrection(field *typed.Field[float64]) bool {
	for _, f := range state.BankCorrections() {
		if f == field {
			return true
		}
	}
	return false
}

func fieldName(field *typed.Field[float64]) string {
	if field == nil {
		return "<nil>"
	}
	return field.Name()
}

// LOQMoveBuilder builds LOQ move state.
type LOQMoveBuilder struct{ moveBuilder }

// NewLOQMoveBuilder returns an empty LOQ move builder.
func NewLOQMoveBuilder(data *state.DataInfo) *LOQMoveBuilder {
	return &LOQMoveBuilder{newMoveBuilder(data, func() state.Variant { return state.NewLOQ() })}
}

// SetCenterPosition stages the LOQ centre position.
func (b *LOQMoveBuilder) SetCenterPosition(v float64) error {
	return b.setVariant(state.CenterPosition, v)
}

// SANS2DMoveBuilder builds SANS2D move state.
type SANS2DMoveBuilder struct{ moveBuilder }

// NewSANS2DMoveBuilder returns an empty SANS2D move builder.
func NewSANS2DMoveBuilder(data *state.DataInfo) *SANS2DMoveBuilder {
	return &SANS2DMoveBuilder{newMoveBuilder(data, func() state.Variant { return state.NewSANS2D() })}
}

func (b *SANS2DMoveBuilder) SetHABDetectorRadius(v float64) error {
	return b.setVariant(state.HABDetectorRadius, v)
}

func (b *SANS2DMoveBuilder) SetHABDetectorDefaultSD(v float64) error {
	return b.setVariant(state.HABDetectorDefaultSD, v)
}

func (b *SANS2DMoveBuilder) SetHABDetectorDefaultX(v float64) error {
	return b.setVariant(state.HABDetectorDefaultX, v)
}

func (b *SANS2DMoveBuilder) SetLABDetectorDefaultSD(v float64) error {
	return b.setVariant(state.LABDetectorDefaultSD, v)
}

func (b *SANS2DMoveBuilder) SetHABDetectorX(v float64) error {
	return b.setVariant(state.HABDetectorX, v)
}

func (b *SANS2DMoveBuilder) SetHABDetectorZ(v float64) error {
	return b.setVariant(state.HABDetectorZ, v)
}

func (b *SANS2DMoveBuilder) SetHABDetectorRotation(v float64) error {
	return b.setVariant(state.HABDetectorRotation, v)
}

func (b *SANS2DMoveBuilder) SetLABDetectorX(v float64) error {
	return b.setVariant(state.LABDetectorX, v)
}

func (b *SANS2DMoveBuilder) SetLABDetectorZ(v float64) error {
	return b.setVariant(state.LABDetectorZ, v)
}

func (b *SANS2DMoveBuilder) SetMonitor4Offset(v float64) error {
	return b.setVariant(state.Monitor4Offset, v)
}

// LARMORMoveBuilder builds LARMOR move state.
type LARMORMoveBuilder struct{ moveBuilder }

// NewLARMORMoveBuilder returns an empty LARMOR move builder.
func NewLARMORMoveBuilder(data *state.DataInfo) *LARMORMoveBuilder {
	return &LARMORMoveBuilder{newMoveBuilder(data, func() state.Variant { return state.NewLARMOR() })}
}

// SetBenchRotation stages the LARMOR bench rotation.
func (b *LARMORMoveBuilder) SetBenchRotation(v float64) error {
	return b.setVariant(state.BenchRotation, v)
}

// Data returns the data info the builder was created for.
func (b *moveBuilder) Data() *state.DataInfo { return b.data }
