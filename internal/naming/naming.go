// Package naming derives the names of reduced output workspaces.
package naming

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/ranges"
	"git.home.luguber.info/inful/sansstate/internal/state"
)

// MergedName replaces the detector name of merged reductions.
const MergedName = "merged"

// Options carries the reduction settings that appear in an output name.
type Options struct {
	Dimensionality enums.ReductionDimensionality
	WavelengthLow  float64
	WavelengthHigh float64
	PhiMin         foundation.Option[float64]
	PhiMax         foundation.Option[float64]
	Slice          foundation.Option[ranges.Range]
}

// Names is the full output name and the base name shared by every period
// and slice of the same reduction.
type Names struct {
	Name string
	Base string
}

// OutputNames builds the workspace names for one reduction mode. The name
// is composed of the run number, the period ("p" + n) unless all periods
// are reduced, the short detector name or "merged", the dimensionality, the
// wavelength range, phi limits for 1D reductions that do not span 180
// degrees, and the slice limits. The base name omits period and slice.
func OutputNames(data *state.DataInfo, move *state.Move, mode enums.ReductionMode, opts Options) (Names, error) {
	detector, err := detectorName(move, mode)
	if err != nil {
		return Names{}, err
	}

	run := strconv.Itoa(data.RunNumber())

	period := ""
	if data.Period() != state.AllPeriods {
		period = "p" + strconv.Itoa(data.Period())
	}

	dim := "_2D"
	if opts.Dimensionality == enums.OneDim {
		dim = "_1D"
	}

	wavelength := "_" + formatFloat(opts.WavelengthLow) + "_" + formatFloat(opts.WavelengthHigh)

	phi := ""
	if opts.Dimensionality == enums.OneDim {
		lo, okLo := opts.PhiMin.Get()
		hi, okHi := opts.PhiMax.Get()
		if okLo && okHi && lo != 0 && hi != 0 && math.Abs(hi-lo) != 180 {
			phi = "Phi" + formatFloat(lo) + "_" + formatFloat(hi)
		}
	}

	slice := ""
	if r, ok := opts.Slice.Get(); ok {
		slice = fmt.Sprintf("_t%.2f_T%.2f", r.Lower, r.Upper)
	}

	return Names{
		Name: run + period + detector + dim + wavelength + phi + slice,
		Base: run + detector + dim + wavelength + phi,
	}, nil
}

func detectorName(move *state.Move, mode enums.ReductionMode) (string, error) {
	switch mode {
	case enums.ReductionModeMerged:
		return MergedName, nil
	case enums.ReductionModeLAB:
		return move.Detector(enums.DetectorLAB).ShortName(), nil
	case enums.ReductionModeHAB:
		return move.Detector(enums.DetectorHAB).ShortName(), nil
	default:
		return "", errors.ValueError(fmt.Sprintf("reduction mode %q cannot name a single output", mode)).
			WithContext("mode", mode.String()).
			Build()
	}
}

var multiPeriodSuffix = regexp.MustCompile(`_[0-9]+$`)

// BaseNameFromMultiPeriod strips the "_N" period suffix of a multi-period
// workspace name.
func BaseNameFromMultiPeriod(name string) (string, error) {
	if !multiPeriodSuffix.MatchString(name) {
		return "", errors.ValueError(fmt.Sprintf("workspace name %q is not part of a multi-period workspace", name)).
			WithContext("name", name).
			Build()
	}
	return multiPeriodSuffix.ReplaceAllString(name, ""), nil
}

// formatFloat renders integral values with one decimal, "4.0", and other
// values in their shortest form.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") && !math.IsInf(v, 0) && !math.IsNaN(v) {
		s += ".0"
	}
	return s
}
