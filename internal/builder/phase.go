package builder

import (
	"fmt"

	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
)

// Phase is the lifecycle position of a builder.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseConfiguring
	PhaseBuilt
)

func (p Phase) String() string {
	switch p {
	case PhaseEmpty:
		return "empty"
	case PhaseConfiguring:
		return "configuring"
	case PhaseBuilt:
		return "built"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// lifecycle tracks the phase shared by every builder.
type lifecycle struct {
	name  string
	phase Phase
}

// Phase returns the current phase.
func (l *lifecycle) Phase() Phase { return l.phase }

// configure runs set and advances Empty to Configuring when it succeeds.
func (l *lifecycle) configure(set func() error) error {
	if l.phase == PhaseBuilt {
		return errors.BuilderError(l.name + " builder has already built its state").
			WithContext("phase", l.phase.String()).
			Build()
	}
	if err := set(); err != nil {
		return err
	}
	l.phase = PhaseConfiguring
	return nil
}

// beginBuild rejects a second Build.
func (l *lifecycle) beginBuild() error {
	if l.phase == PhaseBuilt {
		return errors.BuilderError(l.name + " builder is single use, create a new builder").
			WithContext("phase", l.phase.String()).
			Build()
	}
	return nil
}

func (l *lifecycle) finish() { l.phase = PhaseBuilt }
