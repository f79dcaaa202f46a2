package state

import (
	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation"
	"git.home.luguber.info/inful/sansstate/internal/typed"
)

// AllPeriods selects every period of a multi-period run.
const AllPeriods = 0

var (
	dataSchema = typed.NewSchema("data")

	SampleScatter          = typed.String(dataSchema, "sample_scatter", typed.WithValidator(typed.NotEmpty))
	SampleScatterPeriod    = typed.Int(dataSchema, "sample_scatter_period", typed.WithValidator(typed.NonNegative[int]))
	SampleScatterRunNumber = typed.Int(dataSchema, "sample_scatter_run_number", typed.WithValidator(typed.NonNegative[int]))
	DataInstrument         = typed.Enum(dataSchema, "instrument", enums.Instrument.Valid)
	DataFacility           = typed.Enum(dataSchema, "facility", enums.Facility.Valid)
)

// DataInfo describes the sample scatter run a reduction is configured for.
type DataInfo struct {
	rec *typed.Record
}

// NewDataInfo returns an empty DataInfo reading all periods.
func NewDataInfo() *DataInfo {
	d := &DataInfo{rec: dataSchema.NewRecord()}
	_ = SampleScatterPeriod.Set(d.rec, AllPeriods)
	return d
}

// Record exposes the fields for use with the field descriptors.
func (d *DataInfo) Record() *typed.Record { return d.rec }

// SampleScatter returns the sample scatter file or run name.
func (d *DataInfo) SampleScatter() string { return SampleScatter.Get(d.rec).UnwrapOr("") }

// Period returns the selected period, AllPeriods when unset.
func (d *DataInfo) Period() int { return SampleScatterPeriod.Get(d.rec).UnwrapOr(AllPeriods) }

// RunNumber returns the run number derived from the sample scatter name.
func (d *DataInfo) RunNumber() int { return SampleScatterRunNumber.Get(d.rec).UnwrapOr(0) }

// Instrument returns the instrument the data was taken on.
func (d *DataInfo) Instrument() enums.Instrument { return DataInstrument.Get(d.rec).UnwrapOr("") }

// Facility returns the facility operating the instrument.
func (d *DataInfo) Facility() enums.Facility { return DataFacility.Get(d.rec).UnwrapOr("") }

// Freeze makes the DataInfo read-only.
func (d *DataInfo) Freeze() { d.rec.Freeze() }

// Validate requires a sample scatter, an instrument and a facility.
func (d *DataInfo) Validate() error {
	result := foundation.Valid()
	for _, name := range []string{SampleScatter.Name(), DataInstrument.Name(), DataFacility.Name()} {
		if !d.rec.IsSet(name) {
			result = result.Combine(foundation.Invalid(
				foundation.NewValidationError("data."+name, "missing", "value is required")))
		}
	}
	return result.ToError()
}

// ToPropertyMap returns the set fields as a property bag.
func (d *DataInfo) ToPropertyMap() typed.PropertyMap { return d.rec.Properties() }

// DataInfoFromPropertyMap rebuilds a DataInfo from ToPropertyMap output. No
// defaults are applied; the result is validated and frozen.
func DataInfoFromPropertyMap(props typed.PropertyMap) (*DataInfo, error) {
	d := &DataInfo{rec: dataSchema.NewRecord()}
	if err := d.rec.LoadProperties(props); err != nil {
		return nil, err
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	d.Freeze()
	return d, nil
}
