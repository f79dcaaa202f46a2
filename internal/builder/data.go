package builder

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/state"
)

// DataBuilder builds a state.DataInfo. The sample scatter has no default.
type DataBuilder struct {
	lifecycle
	info *state.DataInfo
}

// NewDataBuilder returns a data builder for facility.
func NewDataBuilder(facility enums.Facility) (*DataBuilder, error) {
	if !facility.Valid() {
		return nil, errors.UnsupportedInstrumentError(fmt.Sprintf("unsupported facility %q", facility)).
			WithContext("facility", facility.String()).
			Build()
	}
	info := state.NewDataInfo()
	if err := state.DataFacility.Set(info.Record(), facility); err != nil {
		return nil, err
	}
	return &DataBuilder{lifecycle: lifecycle{name: "data"}, info: info}, nil
}

// SetSampleScatter stages the sample scatter run, e.g. "SANS2D00022048".
func (b *DataBuilder) SetSampleScatter(name string) error {
	return b.configure(func() error { return state.SampleScatter.Set(b.info.Record(), name) })
}

// SetFacility replaces the facility given to NewDataBuilder.
func (b *DataBuilder) SetFacility(facility enums.Facility) error {
	return b.configure(func() error { return state.DataFacility.Set(b.info.Record(), facility) })
}

// SetSampleScatterPeriod stages the period; state.AllPeriods selects all.
func (b *DataBuilder) SetSampleScatterPeriod(period int) error {
	return b.configure(func() error { return state.SampleScatterPeriod.Set(b.info.Record(), period) })
}

// Build derives the instrument and run number from the sample scatter name.
func (b *DataBuilder) Build() (*state.DataInfo, error) {
	if err := b.beginBuild(); err != nil {
		return nil, err
	}

	name := b.info.SampleScatter()
	if name == "" {
		return nil, errors.BuilderError("sample scatter is required and has no default").
			WithContext("field", state.SampleScatter.Name()).
			Build()
	}

	stem := runStem(name)
	inst, err := enums.ParseInstrument(enums.SanitiseInstrumentName(stem))
	if err != nil {
		eb := errors.UnsupportedInstrumentError(fmt.Sprintf("cannot derive a supported instrument from %q", name)).
			WithCause(err).
			WithContext("sample_scatter", name)
		if s, ok := enums.SuggestInstrument(strings.TrimRight(stem, "0123456789")); ok {
			eb = eb.WithContext("suggestion", s)
		}
		return nil, eb.Build()
	}
	if err := state.DataInstrument.Set(b.info.Record(), inst); err != nil {
		return nil, err
	}
	if run, ok := RunNumber(stem); ok {
		if err := state.SampleScatterRunNumber.Set(b.info.Record(), run); err != nil {
			return nil, err
		}
	}

	if err := b.info.Validate(); err != nil {
		return nil, err
	}
	b.info.Freeze()
	b.finish()
	return b.info, nil
}

// RunNumber extracts the trailing run number of a run name, so
// "SANS2D00022048" gives 22048.
func RunNumber(name string) (int, bool) {
	stem := runStem(name)
	i := len(stem)
	for i > 0 && stem[i-1] >= '0' && stem[i-1] <= '9' {
		i--
	}
	if i == len(stem) {
		return 0, false
	}
	n, err := strconv.Atoi(stem[i:])
	if err != nil {
		return 0, false
	}
	return n, true
}

// runStem strips directories and a file extension.
func runStem(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	return strings.TrimSuffix(base, filepath.Ext(base))
}
