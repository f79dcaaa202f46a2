package state

import (
	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/typed"
)

var (
	bankSchema = typed.NewSchema("detector")

	XTranslationCorrection = typed.Float(bankSchema, "x_translation_correction")
	YTranslationCorrection = typed.Float(bankSchema, "y_translation_correction")
	ZTranslationCorrection = typed.Float(bankSchema, "z_translation_correction")
	RotationCorrection     = typed.Float(bankSchema, "rotation_correction")
	SideCorrection         = typed.Float(bankSchema, "side_correction")
	RadiusCorrection       = typed.Float(bankSchema, "radius_correction")
	XTiltCorrection        = typed.Float(bankSchema, "x_tilt_correction")
	YTiltCorrection        = typed.Float(bankSchema, "y_tilt_correction")
	ZTiltCorrection        = typed.Float(bankSchema, "z_tilt_correction")
	SampleCentrePos1       = typed.Float(bankSchema, "sample_centre_pos1")
	SampleCentrePos2       = typed.Float(bankSchema, "sample_centre_pos2")
	DetectorName           = typed.String(bankSchema, "detector_name", typed.WithValidator(typed.NotEmpty))
	DetectorNameShort      = typed.String(bankSchema, "detector_name_short", typed.WithValidator(typed.NotEmpty))
)

// corrections lists the numeric bank fields, all of which default to zero.
var corrections = []*typed.Field[float64]{
	XTranslationCorrection, YTranslationCorrection, ZTranslationCorrection,
	RotationCorrection, SideCorrection, RadiusCorrection,
	XTiltCorrection, YTiltCorrection, ZTiltCorrection,
	SampleCentrePos1, SampleCentrePos2,
}

// BankCorrections returns the numeric bank fields in declaration order.
func BankCorrections() []*typed.Field[float64] {
	out := make([]*typed.Field[float64], len(corrections))
	copy(out, corrections)
	return out
}

// DetectorBank is the nested state of one detector bank.
type DetectorBank struct {
	bank enums.DetectorType
	rec  *typed.Record
}

// NewDetectorBank returns a bank with every correction set to zero and no
// names.
func NewDetectorBank(bank enums.DetectorType) *DetectorBank {
	b := newEmptyBank(bank)
	for _, f := range corrections {
		_ = f.Set(b.rec, 0)
	}
	return b
}

func newEmptyBank(bank enums.DetectorType) *DetectorBank {
	return &DetectorBank{bank: bank, rec: bankSchema.NewRecord()}
}

// Type returns which bank this is.
func (b *DetectorBank) Type() enums.DetectorType { return b.bank }

// Record exposes the bank's fields for use with the field descriptors.
func (b *DetectorBank) Record() *typed.Record { return b.rec }

// Name returns the long detector name, or "" when unset.
func (b *DetectorBank) Name() string { return DetectorName.Get(b.rec).UnwrapOr("") }

// ShortName returns the short detector name, or "" when unset.
func (b *DetectorBank) ShortName() string { return DetectorNameShort.Get(b.rec).UnwrapOr("") }

func (b *DetectorBank) clone() *DetectorBank {
	return &DetectorBank{bank: b.bank, rec: b.rec.Clone()}
}
