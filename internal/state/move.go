package state

import (
	"fmt"
	"sort"
	"strings"

	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/typed"
)

var (
	moveSchema = typed.NewSchema("move")

	SampleOffset          = typed.Float(moveSchema, "sample_offset")
	SampleOffsetDirection = typed.Enum(moveSchema, "sample_offset_direction", enums.CanonicalCoordinate.Valid)
	MonitorNames          = typed.StringMap(moveSchema, "monitor_names")
)

// Property map key layout.
const (
	InstrumentKey  = "instrument"
	detectorPrefix = "detectors."
	variantPrefix  = "variant."
)

// Move holds the detector move corrections for one reduction.
type Move struct {
	general   *typed.Record
	detectors map[enums.DetectorType]*DetectorBank
	variant   Variant
	frozen    bool
}

// NewMove returns a Move with the general ISIS defaults: no sample offset,
// offset along Z, no monitor names and zeroed corrections on both banks.
// A nil variant is a programming error.
func NewMove(variant Variant) *Move {
	if variant == nil {
		panic("state: NewMove requires an instrument variant")
	}
	m := &Move{
		general:   moveSchema.NewRecord(),
		detectors: make(map[enums.DetectorType]*DetectorBank, len(enums.DetectorTypes)),
		variant:   variant,
	}
	_ = SampleOffset.Set(m.general, 0)
	_ = SampleOffsetDirection.Set(m.general, enums.CoordinateZ)
	_ = MonitorNames.Set(m.general, map[string]string{})
	for _, d := range enums.DetectorTypes {
		m.detectors[d] = NewDetectorBank(d)
	}
	return m
}

// General exposes the fields shared by every instrument.
func (m *Move) General() *typed.Record { return m.general }

// Detector returns the nested state of bank d.
func (m *Move) Detector(d enums.DetectorType) *DetectorBank { return m.detectors[d] }

// Variant returns the instrument-specific state.
func (m *Move) Variant() Variant { return m.variant }

// Instrument returns the instrument of the variant.
func (m *Move) Instrument() enums.Instrument { return m.variant.Instrument() }

// MonitorNames returns a copy of the monitor spectrum-number to name table.
func (m *Move) MonitorNames() map[string]string {
	return MonitorNames.Get(m.general).UnwrapOr(map[string]string{})
}

// Freeze makes every record of the Move read-only.
func (m *Move) Freeze() {
	m.general.Freeze()
	for _, b := range m.detectors {
		b.rec.Freeze()
	}
	m.variant.Record().Freeze()
	m.frozen = true
}

// Frozen reports whether the Move has been frozen.
func (m *Move) Frozen() bool { return m.frozen }

// Clone returns a deep, mutable copy.
func (m *Move) Clone() *Move {
	out := &Move{
		general:   m.general.Clone(),
		detectors: make(map[enums.DetectorType]*DetectorBank, len(m.detectors)),
		variant:   m.variant.cloneVariant(),
	}
	for d, b := range m.detectors {
		out.detectors[d] = b.clone()
	}
	return out
}

// Validate checks the cross-field invariants of the Move.
func (m *Move) Validate() error {
	return moveValidators.Validate(m).ToError()
}

var moveValidators = foundation.NewValidatorChain(
	bankNamesConsistent(DetectorName),
	bankNamesConsistent(DetectorNameShort),
	recordComplete("move", func(m *Move) *typed.Record { return m.general }),
	recordComplete("variant", func(m *Move) *typed.Record { return m.variant.Record() }),
	banksComplete,
)

// banksComplete requires every correction of every bank. The names are
// optional and checked by bankNamesConsistent.
func banksComplete(m *Move) foundation.ValidationResult {
	result := foundation.Valid()
	for _, d := range enums.DetectorTypes {
		bank := m.detectors[d]
		for _, f := range corrections {
			if bank == nil || !bank.rec.IsSet(f.Name()) {
				result = result.Combine(foundation.Invalid(foundation.NewValidationError(
					detectorPrefix+d.String()+"."+f.Name(), "missing", "value is required")))
			}
		}
	}
	return result
}

// bankNamesConsistent requires that a name field is set on all banks or on
// none of them.
func bankNamesConsistent(field *typed.Field[string]) foundation.Validator[*Move] {
	return func(m *Move) foundation.ValidationResult {
		var named, unnamed []string
		for _, d := range enums.DetectorTypes {
			if field.Get(m.detectors[d].rec).IsSome() {
				named = append(named, d.String())
			} else {
				unnamed = append(unnamed, d.String())
			}
		}
		if len(named) == 0 || len(unnamed) == 0 {
			return foundation.Valid()
		}
		return foundation.Invalid(foundation.NewValidationError(
			"detectors."+field.Name(),
			"inconsistent",
			fmt.Sprintf("%s is set for %s but missing for %s", field.Name(),
				strings.Join(named, ", "), strings.Join(unnamed, ", ")),
		))
	}
}

// recordComplete requires every declared field of a record to be set.
func recordComplete(label string, pick func(*Move) *typed.Record) foundation.Validator[*Move] {
	return func(m *Move) foundation.ValidationResult {
		rec := pick(m)
		result := foundation.Valid()
		for _, name := range rec.Schema().Fields() {
			if !rec.IsSet(name) {
				result = result.Combine(foundation.Invalid(foundation.NewValidationError(
					label+"."+name, "missing", "value is required")))
			}
		}
		return result
	}
}

// ToSettingsMap flattens the Move into one namespace. Bank fields are keyed
// "detectors.<bank>.<field>" and variant fields "variant.<field>".
func (m *Move) ToSettingsMap() map[string]any {
	out := make(map[string]any)
	for k, v := range m.general.Properties() {
		out[k] = v
	}
	for _, d := range enums.DetectorTypes {
		prefix := detectorPrefix + d.String() + "."
		for k, v := range m.detectors[d].rec.Properties() {
			out[prefix+k] = v
		}
	}
	for k, v := range m.variant.Record().Properties() {
		out[variantPrefix+k] = v
	}
	return out
}

// ToPropertyMap returns the flat property bag handed to reduction
// algorithms: the settings map plus the instrument discriminator.
func (m *Move) ToPropertyMap() typed.PropertyMap {
	out := typed.PropertyMap(m.ToSettingsMap())
	out[InstrumentKey] = m.Instrument().String()
	return out
}

// MoveFromPropertyMap rebuilds a Move from ToPropertyMap output. No defaults
// are applied; the result is validated.
func MoveFromPropertyMap(props typed.PropertyMap) (*Move, error) {
	raw, ok := props[InstrumentKey].(string)
	if !ok {
		return nil, errors.TypeError("property map has no instrument discriminator").
			WithContext("key", InstrumentKey).
			Build()
	}
	inst, err := enums.ParseInstrument(raw)
	if err != nil {
		return nil, err
	}

	m := &Move{
		general:   moveSchema.NewRecord(),
		detectors: make(map[enums.DetectorType]*DetectorBank, len(enums.DetectorTypes)),
		variant:   newEmptyVariant(inst),
	}
	for _, d := range enums.DetectorTypes {
		m.detectors[d] = newEmptyBank(d)
	}

	general := typed.PropertyMap{}
	banks := map[enums.DetectorType]typed.PropertyMap{}
	variant := typed.PropertyMap{}

	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		v := props[k]
		switch {
		case k == InstrumentKey:
		case strings.HasPrefix(k, detectorPrefix):
			bankName, field, found := strings.Cut(strings.TrimPrefix(k, detectorPrefix), ".")
			if !found {
				return nil, errors.TypeError(fmt.Sprintf("malformed detector key %q", k)).Build()
			}
			d, err := enums.ParseDetectorType(bankName)
			if err != nil {
				return nil, err
			}
			if banks[d] == nil {
				banks[d] = typed.PropertyMap{}
			}
			banks[d][field] = v
		case strings.HasPrefix(k, variantPrefix):
			variant[strings.TrimPrefix(k, variantPrefix)] = v
		default:
			general[k] = v
		}
	}

	if err := m.general.LoadProperties(general); err != nil {
		return nil, err
	}
	for d, p := range banks {
		if err := m.detectors[d].rec.LoadProperties(p); err != nil {
			return nil, err
		}
	}
	if err := m.variant.Record().LoadProperties(variant); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
