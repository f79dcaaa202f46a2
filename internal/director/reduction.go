package director

import (
	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/naming"
	"git.home.luguber.info/inful/sansstate/internal/ranges"
	"git.home.luguber.info/inful/sansstate/internal/settings"
	"git.home.luguber.info/inful/sansstate/internal/state"
)

// Reduction is the assembled configuration of one sample scatter run.
type Reduction struct {
	Data           *state.DataInfo
	Move           *state.Move
	Slices         ranges.List
	Mode           enums.ReductionMode
	Dimensionality enums.ReductionDimensionality
	WavelengthLow  foundation.Option[float64]
	WavelengthHigh foundation.Option[float64]
}

// Reduce builds the data and move state of a run and collects the settings
// that shape its output.
func (d *Director) Reduce(model *settings.Model, facility enums.Facility, sampleScatter string, period int) (*Reduction, error) {
	if model == nil {
		model = settings.NewModel(nil)
	}
	slices, err := d.EventSlices(model)
	if err != nil {
		return nil, err
	}
	data, err := d.BuildData(facility, sampleScatter, period)
	if err != nil {
		return nil, err
	}
	move, err := d.BuildMove(model, data)
	if err != nil {
		return nil, err
	}
	return &Reduction{
		Data:           data,
		Move:           move,
		Slices:         slices,
		Mode:           model.ReductionMode(),
		Dimensionality: model.ReductionDimensionality(),
		WavelengthLow:  model.WavelengthMin(),
		WavelengthHigh: model.WavelengthMax(),
	}, nil
}

// OutputNames returns one name per reduced bank and slice. Mode All names
// the LAB and HAB outputs separately.
func (r *Reduction) OutputNames() ([]naming.Names, error) {
	low, okLow := r.WavelengthLow.Get()
	high, okHigh := r.WavelengthHigh.Get()
	if !okLow || !okHigh {
		return nil, errors.BuilderError("a wavelength range is required to name reduced outputs").Build()
	}

	modes := []enums.ReductionMode{r.Mode}
	if r.Mode == enums.ReductionModeAll {
		modes = []enums.ReductionMode{enums.ReductionModeLAB, enums.ReductionModeHAB}
	}

	slices := []foundation.Option[ranges.Range]{foundation.None[ranges.Range]()}
	if len(r.Slices) > 0 {
		slices = slices[:0]
		for _, s := range r.Slices {
			slices = append(slices, foundation.Some(s))
		}
	}

	var out []naming.Names
	for _, mode := range modes {
		for _, slice := range slices {
			names, err := naming.OutputNames(r.Data, r.Move, mode, naming.Options{
				Dimensionality: r.Dimensionality,
				WavelengthLow:  low,
				WavelengthHigh: high,
				Slice:          slice,
			})
			if err != nil {
				return nil, err
			}
			out = append(out, names)
		}
	}
	return out, nil
}
