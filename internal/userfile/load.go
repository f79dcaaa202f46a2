package userfile

import (
	"bytes"
	"context"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/settings"
)

// Load reads, validates and converts the user file at path.
func Load(ctx context.Context, path string) (settings.Dict, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read user file").
			WithContext("path", path).
			Build()
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return doc.ToDict()
}

// Parse decodes a YAML user file. Unknown keys are rejected.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse user file").Build()
	}
	return &doc, nil
}

// Marshal renders doc as YAML.
func Marshal(doc *Document) ([]byte, error) {
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to marshal user file").Build()
	}
	return out, nil
}

// ToDict validates doc and converts it through the settings model, so every
// entry obeys the same constraints as an interactive edit.
func (doc *Document) ToDict() (settings.Dict, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	m := settings.NewModel(nil)
	steps := []func(*settings.Model) error{
		doc.applyReduction,
		doc.applyWavelength,
		doc.applySample,
		doc.applySave,
		doc.applyDetectors,
	}
	for _, apply := range steps {
		if err := apply(m); err != nil {
			return nil, err
		}
	}
	if s := doc.Scale; s != nil && s.Absolute != nil {
		if err := m.SetAbsoluteScale(*s.Absolute); err != nil {
			return nil, err
		}
	}
	return m.Settings(), nil
}

func (doc *Document) applyReduction(m *settings.Model) error {
	r := doc.Reduction
	if r == nil {
		return nil
	}
	if r.Mode != "" {
		mode, err := enums.ParseReductionMode(r.Mode)
		if err != nil {
			return err
		}
		if err := m.SetReductionMode(mode); err != nil {
			return err
		}
	}
	if r.Dimensionality != "" {
		dim, err := enums.ParseReductionDimensionality(r.Dimensionality)
		if err != nil {
			return err
		}
		if err := m.SetReductionDimensionality(dim); err != nil {
			return err
		}
	}
	return m.SetEventSlices(r.EventSlices)
}

func (doc *Document) applyWavelength(m *settings.Model) error {
	w := doc.Wavelength
	if w == nil {
		return nil
	}
	if w.StepType != "" {
		st, err := enums.ParseRangeStepType(w.StepType)
		if err != nil {
			return err
		}
		if err := m.SetWavelengthStepType(st); err != nil {
			return err
		}
	}
	for _, f := range []struct {
		v   *float64
		set func(float64) error
	}{
		{w.Min, m.SetWavelengthMin},
		{w.Max, m.SetWavelengthMax},
		{w.Step, m.SetWavelengthStep},
	} {
		if f.v == nil {
			continue
		}
		if err := f.set(*f.v); err != nil {
			return err
		}
	}
	if w.Min != nil && w.Max != nil && *w.Min > *w.Max {
		return errors.ValidationError("wavelength min must not exceed max").
			WithContext("field", "wavelength").
			Build()
	}
	return nil
}

func (doc *Document) applySample(m *settings.Model) error {
	s := doc.Sample
	if s == nil {
		return nil
	}
	for _, f := range []struct {
		v   *float64
		set func(float64) error
	}{
		{s.Height, m.SetSampleHeight},
		{s.Width, m.SetSampleWidth},
		{s.Thickness, m.SetSampleThickness},
	} {
		if f.v == nil {
			continue
		}
		if err := f.set(*f.v); err != nil {
			return err
		}
	}
	if s.ZOffset != nil {
		m.SetZOffset(*s.ZOffset)
	}
	if s.Shape != "" {
		shape, err := enums.ParseSampleShape(s.Shape)
		if err != nil {
			return err
		}
		return m.SetSampleShape(shape)
	}
	return nil
}

func (doc *Document) applySave(m *settings.Model) error {
	s := doc.Save
	if s == nil {
		return nil
	}
	if s.ZeroErrorFree != nil {
		m.SetZeroErrorFree(*s.ZeroErrorFree)
	}
	if s.CompatibilityMode != nil {
		m.SetCompatibilityMode(*s.CompatibilityMode)
	}
	if len(s.Types) == 0 {
		return nil
	}
	types := make([]enums.SaveType, 0, len(s.Types))
	for _, raw := range s.Types {
		t, err := enums.ParseSaveType(raw)
		if err != nil {
			return err
		}
		types = append(types, t)
	}
	return m.SetSaveTypes(types)
}

func (doc *Document) applyDetectors(m *settings.Model) error {
	d := doc.Detectors
	if d == nil {
		return nil
	}
	for _, bank := range []struct {
		typ  enums.DetectorType
		conf *Bank
	}{
		{enums.DetectorLAB, d.LAB},
		{enums.DetectorHAB, d.HAB},
	} {
		if bank.conf == nil {
			continue
		}
		if err := bank.conf.apply(m, bank.typ); err != nil {
			return err
		}
	}
	return nil
}

func (b *Bank) apply(m *settings.Model, bank enums.DetectorType) error {
	if c := b.Corrections; c != nil {
		for _, f := range []struct {
			id settings.ElementID
			v  *float64
		}{
			{settings.CorrectionX, c.X},
			{settings.CorrectionY, c.Y},
			{settings.CorrectionZ, c.Z},
			{settings.CorrectionRotation, c.Rotation},
			{settings.CorrectionRadius, c.Radius},
			{settings.CorrectionTranslation, c.Translation},
			{settings.CorrectionXTilt, c.XTilt},
			{settings.CorrectionYTilt, c.YTilt},
		} {
			if f.v == nil {
				continue
			}
			if err := m.SetCorrection(f.id, bank, *f.v); err != nil {
				return err
			}
		}
	}
	if b.Centre != nil {
		return m.SetCentre(settings.CentreEntry{Pos1: b.Centre.Pos1, Pos2: b.Centre.Pos2, Detector: bank})
	}
	return nil
}
