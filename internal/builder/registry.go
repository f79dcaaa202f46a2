package builder

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/state"
)

// MoveBuilderFactory constructs a move builder for a data set.
type MoveBuilderFactory func(data *state.DataInfo) MoveBuilder

type registryKey struct {
	facility   enums.Facility
	instrument enums.Instrument
}

// Registry maps (facility, instrument) pairs to move builder constructors.
type Registry struct {
	factories map[registryKey]MoveBuilderFactory
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[registryKey]MoveBuilderFactory)}
}

// DefaultRegistry returns a registry with the ISIS instruments.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(enums.FacilityISIS, enums.InstrumentLOQ, func(d *state.DataInfo) MoveBuilder { return NewLOQMoveBuilder(d) })
	r.Register(enums.FacilityISIS, enums.InstrumentSANS2D, func(d *state.DataInfo) MoveBuilder { return NewSANS2DMoveBuilder(d) })
	r.Register(enums.FacilityISIS, enums.InstrumentLARMOR, func(d *state.DataInfo) MoveBuilder { return NewLARMORMoveBuilder(d) })
	return r
}

// Register adds or replaces the constructor for a pair.
func (r *Registry) Register(facility enums.Facility, instrument enums.Instrument, factory MoveBuilderFactory) {
	r.factories[registryKey{facility: facility, instrument: instrument}] = factory
}

// Supported lists the registered pairs as "FACILITY/INSTRUMENT", sorted.
func (r *Registry) Supported() []string {
	out := make([]string, 0, len(r.factories))
	for k := range r.factories {
		out = append(out, k.facility.String()+"/"+k.instrument.String())
	}
	sort.Strings(out)
	return out
}

// NewMoveBuilder selects the builder for data's facility and instrument.
func (r *Registry) NewMoveBuilder(data *state.DataInfo) (MoveBuilder, error) {
	if data == nil {
		return nil, errors.BuilderError("move builder requires data info").Build()
	}
	key := registryKey{facility: data.Facility(), instrument: data.Instrument()}
	if factory, ok := r.factories[key]; ok {
		return factory(data), nil
	}

	b := errors.UnsupportedInstrumentError(
		fmt.Sprintf("no move builder for instrument %q at facility %q", key.instrument, key.facility)).
		WithContext("instrument", key.instrument.String()).
		WithContext("facility", key.facility.String()).
		WithContext("supported", strings.Join(r.Supported(), ", "))
	if s, ok := r.suggest(key); ok {
		b = b.WithContext("suggestion", s)
	}
	return nil, b.Build()
}

// suggest finds the registered instrument at the same facility closest to
// the requested one.
func (r *Registry) suggest(key registryKey) (string, bool) {
	best, bestDist := "", 4
	want := strings.ToUpper(key.instrument.String())
	for k := range r.factories {
		if k.facility != key.facility {
			continue
		}
		d := levenshtein.ComputeDistance(want, k.instrument.String())
		if d < bestDist || (d == bestDist && k.instrument.String() < best) {
			best, bestDist = k.instrument.String(), d
		}
	}
	return best, best != ""
}

var defaultRegistry = DefaultRegistry()

// NewMoveBuilder selects a builder from the default registry.
func NewMoveBuilder(data *state.DataInfo) (MoveBuilder, error) {
	return defaultRegistry.NewMoveBuilder(data)
}
