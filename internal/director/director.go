// Package director turns a settings model and a data description into a
// built, validated Move state.
package director

import (
	"log/slog"
	"time"

	"git.home.luguber.info/inful/sansstate/internal/builder"
	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/logfields"
	"git.home.luguber.info/inful/sansstate/internal/metrics"
	"git.home.luguber.info/inful/sansstate/internal/ranges"
	"git.home.luguber.info/inful/sansstate/internal/settings"
	"git.home.luguber.info/inful/sansstate/internal/state"
	"git.home.luguber.info/inful/sansstate/internal/typed"
)

// mmPerMetre converts user-file lengths, given in millimetres.
const mmPerMetre = 1000.0

// correctionTarget maps a user-file correction onto a bank field. Lengths
// are converted to metres; angles are used as given.
type correctionTarget struct {
	field  *typed.Field[float64]
	length bool
}

var correctionTargets = map[settings.ElementID]correctionTarget{
	settings.CorrectionX:           {state.XTranslationCorrection, true},
	settings.CorrectionY:           {state.YTranslationCorrection, true},
	settings.CorrectionZ:           {state.ZTranslationCorrection, true},
	settings.CorrectionRotation:    {state.RotationCorrection, false},
	settings.CorrectionRadius:      {state.RadiusCorrection, true},
	settings.CorrectionTranslation: {state.SideCorrection, true},
	settings.CorrectionXTilt:       {state.XTiltCorrection, false},
	settings.CorrectionYTilt:       {state.YTiltCorrection, false},
}

// Director assembles state from settings.
type Director struct {
	registry *builder.Registry
	recorder metrics.Recorder
	logger   *slog.Logger
}

// Option configures a Director.
type Option func(*Director)

// WithRegistry replaces the default builder registry.
func WithRegistry(r *builder.Registry) Option {
	return func(d *Director) { d.registry = r }
}

// WithRecorder injects a metrics recorder.
func WithRecorder(r metrics.Recorder) Option {
	return func(d *Director) { d.recorder = r }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Director) { d.logger = l }
}

// New returns a Director over the default registry, without metrics.
func New(opts ...Option) *Director {
	d := &Director{
		registry: builder.DefaultRegistry(),
		recorder: metrics.NoopRecorder{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// BuildData builds the data description of a sample scatter run.
func (d *Director) BuildData(facility enums.Facility, sampleScatter string, period int) (*state.DataInfo, error) {
	start := time.Now()
	info, err := d.buildData(facility, sampleScatter, period)
	d.observe("data", instrumentOf(info), start, err)
	return info, err
}

func (d *Director) buildData(facility enums.Facility, sampleScatter string, period int) (*state.DataInfo, error) {
	b, err := builder.NewDataBuilder(facility)
	if err != nil {
		return nil, err
	}
	if err := b.SetSampleScatter(sampleScatter); err != nil {
		return nil, err
	}
	if err := b.SetSampleScatterPeriod(period); err != nil {
		return nil, err
	}
	return b.Build()
}

// BuildMove builds the Move state for data from the settings in model.
func (d *Director) BuildMove(model *settings.Model, data *state.DataInfo) (*state.Move, error) {
	start := time.Now()
	m, err := d.buildMove(model, data)
	d.observe("move", instrumentOf(data), start, err)
	if err == nil {
		d.logger.Debug("Built move state",
			logfields.Instrument(m.Instrument().String()),
			logfields.Run(data.SampleScatter()),
			logfields.Count(len(m.MonitorNames())))
	}
	return m, err
}

func (d *Director) buildMove(model *settings.Model, data *state.DataInfo) (*state.Move, error) {
	if model == nil {
		model = settings.NewModel(nil)
	}
	b, err := d.registry.NewMoveBuilder(data)
	if err != nil {
		return nil, err
	}

	if offset, ok := model.ZOffset().Get(); ok {
		if err := b.SetSampleOffset(offset / mmPerMetre); err != nil {
			return nil, err
		}
	}

	for _, id := range settings.CorrectionIDs {
		target := correctionTargets[id]
		for _, bank := range enums.DetectorTypes {
			v, ok := model.Correction(id, bank)
			if !ok {
				continue
			}
			if target.length {
				v /= mmPerMetre
			}
			if err := b.SetCorrection(bank, target.field, v); err != nil {
				return nil, err
			}
		}
	}

	for _, bank := range enums.DetectorTypes {
		c, ok := model.Centre(bank)
		if !ok {
			continue
		}
		if err := b.SetCorrection(bank, state.SampleCentrePos1, c.Pos1/mmPerMetre); err != nil {
			return nil, err
		}
		if err := b.SetCorrection(bank, state.SampleCentrePos2, c.Pos2/mmPerMetre); err != nil {
			return nil, err
		}
	}

	return b.Build()
}

// EventSlices parses the event-slice setting of model.
func (d *Director) EventSlices(model *settings.Model) (ranges.List, error) {
	list, err := ranges.Parse(model.EventSlices())
	d.recorder.IncParseResult("event_slices", metrics.Result(err))
	return list, err
}

func (d *Director) observe(model, inst string, start time.Time, err error) {
	d.recorder.ObserveBuildDuration(model, inst, time.Since(start))
	d.recorder.IncBuildOutcome(model, inst, outcomeFor(err))
	if errors.HasCategory(err, errors.CategoryValidation) {
		d.recorder.IncValidationFailure(model)
	}
	if err != nil {
		d.logger.Debug("State build failed",
			logfields.Model(model),
			logfields.Category(string(errors.GetCategory(err))),
			logfields.Error(err))
	}
}

func instrumentOf(data *state.DataInfo) string {
	if data == nil {
		return ""
	}
	return data.Instrument().String()
}

func outcomeFor(err error) metrics.BuildOutcomeLabel {
	switch {
	case err == nil:
		return metrics.BuildOutcomeSuccess
	case errors.HasCategory(err, errors.CategoryValidation):
		return metrics.BuildOutcomeInvalid
	case errors.HasCategory(err, errors.CategoryUnsupportedInstrument):
		return metrics.BuildOutcomeUnsupported
	default:
		return metrics.BuildOutcomeFailed
	}
}
