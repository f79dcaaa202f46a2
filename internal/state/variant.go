package state

import (
	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/typed"
)

// Instrument defaults, in metres unless noted.
const (
	LOQDefaultCenterPosition = 317.5 / 1000.

	SANS2DDefaultHABRadius    = 306.0 / 1000.
	SANS2DDefaultHABSampleDet = 4.0
	SANS2DDefaultHABX         = 1.1
	SANS2DDefaultLABSampleDet = 4.0
)

// Variant is the instrument-specific part of a Move. The set of variants is
// closed: LOQ, SANS2D and LARMOR.
type Variant interface {
	Instrument() enums.Instrument
	Record() *typed.Record
	cloneVariant() Variant
}

var (
	loqSchema = typed.NewSchema("LOQ")

	CenterPosition = typed.Float(loqSchema, "center_position")
)

// LOQ carries the LOQ centre position.
type LOQ struct{ rec *typed.Record }

// NewLOQ returns the LOQ variant with its defaults.
func NewLOQ() *LOQ {
	v := &LOQ{rec: loqSchema.NewRecord()}
	_ = CenterPosition.Set(v.rec, LOQDefaultCenterPosition)
	return v
}

func (*LOQ) Instrument() enums.Instrument { return enums.InstrumentLOQ }
func (v *LOQ) Record() *typed.Record      { return v.rec }
func (v *LOQ) cloneVariant() Variant      { return &LOQ{rec: v.rec.Clone()} }

var (
	sans2dSchema = typed.NewSchema("SANS2D")

	HABDetectorRadius    = typed.Float(sans2dSchema, "hab_detector_radius")
	HABDetectorDefaultSD = typed.Float(sans2dSchema, "hab_detector_default_sd_m")
	HABDetectorDefaultX  = typed.Float(sans2dSchema, "hab_detector_default_x_m")
	LABDetectorDefaultSD = typed.Float(sans2dSchema, "lab_detector_default_sd_m")
	HABDetectorX         = typed.Float(sans2dSchema, "hab_detector_x")
	HABDetectorZ         = typed.Float(sans2dSchema, "hab_detector_z")
	HABDetectorRotation  = typed.Float(sans2dSchema, "hab_detector_rotation")
	LABDetectorX         = typed.Float(sans2dSchema, "lab_detector_x")
	LABDetectorZ         = typed.Float(sans2dSchema, "lab_detector_z")
	Monitor4Offset       = typed.Float(sans2dSchema, "monitor_4_offset")
)

// SANS2D carries the SANS2D bank geometry.
type SANS2D struct{ rec *typed.Record }

// NewSANS2D returns the SANS2D variant with its defaults.
func NewSANS2D() *SANS2D {
	v := &SANS2D{rec: sans2dSchema.NewRecord()}
	_ = HABDetectorRadius.Set(v.rec, SANS2DDefaultHABRadius)
	_ = HABDetectorDefaultSD.Set(v.rec, SANS2DDefaultHABSampleDet)
	_ = HABDetectorDefaultX.Set(v.rec, SANS2DDefaultHABX)
	_ = LABDetectorDefaultSD.Set(v.rec, SANS2DDefaultLABSampleDet)
	for _, f := range []*typed.Field[float64]{HABDetectorX, HABDetectorZ, HABDetectorRotation, LABDetectorX, LABDetectorZ, Monitor4Offset} {
		_ = f.Set(v.rec, 0)
	}
	return v
}

func (*SANS2D) Instrument() enums.Instrument { return enums.InstrumentSANS2D }
func (v *SANS2D) Record() *typed.Record      { return v.rec }
func (v *SANS2D) cloneVariant() Variant      { return &SANS2D{rec: v.rec.Clone()} }

var (
	larmorSchema = typed.NewSchema("LARMOR")

	BenchRotation = typed.Float(larmorSchema, "bench_rotation")
)

// LARMOR carries the LARMOR bench rotation.
type LARMOR struct{ rec *typed.Record }

// NewLARMOR returns the LARMOR variant with its defaults.
func NewLARMOR() *LARMOR {
	v := &LARMOR{rec: larmorSchema.NewRecord()}
	_ = BenchRotation.Set(v.rec, 0)
	return v
}

func (*LARMOR) Instrument() enums.Instrument { return enums.InstrumentLARMOR }
func (v *LARMOR) Record() *typed.Record      { return v.rec }
func (v *LARMOR) cloneVariant() Variant      { return &LARMOR{rec: v.rec.Clone()} }

// NewVariant returns the defaulted variant for inst, or nil if inst has none.
func NewVariant(inst enums.Instrument) Variant {
	switch inst {
	case enums.InstrumentLOQ:
		return NewLOQ()
	case enums.InstrumentSANS2D:
		return NewSANS2D()
	case enums.InstrumentLARMOR:
		return NewLARMOR()
	default:
		return nil
	}
}

// newEmptyVariant returns a variant without defaults, for decoding.
func newEmptyVariant(inst enums.Instrument) Variant {
	switch inst {
	case enums.InstrumentLOQ:
		return &LOQ{rec: loqSchema.NewRecord()}
	case enums.InstrumentSANS2D:
		return &SANS2D{rec: sans2dSchema.NewRecord()}
	case enums.InstrumentLARMOR:
		return &LARMOR{rec: larmorSchema.NewRecord()}
	default:
		return nil
	}
}
