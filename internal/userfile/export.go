package userfile

import (
	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/settings"
)

// FromModel renders the settings held by m as a Document. Settings that are
// unset, or still at their defaults where no entry exists, are omitted.
func FromModel(m *settings.Model) *Document {
	doc := &Document{}

	if has(m, settings.ReductionMode) || has(m, settings.ReductionDimensionality) || m.EventSlices() != "" {
		doc.Reduction = &Reduction{EventSlices: m.EventSlices()}
		if has(m, settings.ReductionMode) {
			doc.Reduction.Mode = m.ReductionMode().String()
		}
		if has(m, settings.ReductionDimensionality) {
			doc.Reduction.Dimensionality = m.ReductionDimensionality().String()
		}
	}

	if has(m, settings.Wavelength) {
		doc.Wavelength = &Wavelength{
			Min:      optional(m.WavelengthMin().Get()),
			Max:      optional(m.WavelengthMax().Get()),
			Step:     optional(m.WavelengthStep().Get()),
			StepType: m.WavelengthStepType().String(),
		}
	}

	if v, ok := m.AbsoluteScale().Get(); ok {
		doc.Scale = &Scale{Absolute: &v}
	}

	sample := &Sample{
		Height:    optional(m.SampleHeight().Get()),
		Width:     optional(m.SampleWidth().Get()),
		Thickness: optional(m.SampleThickness().Get()),
		ZOffset:   optional(m.ZOffset().Get()),
	}
	if has(m, settings.SampleShape) {
		sample.Shape = m.SampleShape().String()
	}
	if *sample != (Sample{}) {
		doc.Sample = sample
	}

	if has(m, settings.SaveTypes) || has(m, settings.ZeroErrorFree) || has(m, settings.CompatibilityMode) {
		save := &Save{}
		if has(m, settings.SaveTypes) {
			for _, t := range m.SaveTypes() {
				save.Types = append(save.Types, t.String())
			}
		}
		if has(m, settings.ZeroErrorFree) {
			zef := m.ZeroErrorFree()
			save.ZeroErrorFree = &zef
		}
		if has(m, settings.CompatibilityMode) {
			compat := m.CompatibilityMode()
			save.CompatibilityMode = &compat
		}
		doc.Save = save
	}

	detectors := &Detectors{LAB: bankFromModel(m, enums.DetectorLAB), HAB: bankFromModel(m, enums.DetectorHAB)}
	if detectors.LAB != nil || detectors.HAB != nil {
		doc.Detectors = detectors
	}
	return doc
}

func bankFromModel(m *settings.Model, bank enums.DetectorType) *Bank {
	get := func(id settings.ElementID) *float64 {
		return optional(m.Correction(id, bank))
	}
	c := &Corrections{
		X:           get(settings.CorrectionX),
		Y:           get(settings.CorrectionY),
		Z:           get(settings.CorrectionZ),
		Rotation:    get(settings.CorrectionRotation),
		Radius:      get(settings.CorrectionRadius),
		Translation: get(settings.CorrectionTranslation),
		XTilt:       get(settings.CorrectionXTilt),
		YTilt:       get(settings.CorrectionYTilt),
	}
	out := &Bank{}
	if *c != (Corrections{}) {
		out.Corrections = c
	}
	if centre, ok := m.Centre(bank); ok {
		out.Centre = &Centre{Pos1: centre.Pos1, Pos2: centre.Pos2}
	}
	if out.Corrections == nil && out.Centre == nil {
		return nil
	}
	return out
}

func has(m *settings.Model, id settings.ElementID) bool {
	return len(m.Entries(id)) > 0
}

func optional(v float64, ok bool) *float64 {
	if !ok {
		return nil
	}
	return &v
}
