package ranges

import (
	"fmt"
	"math"

	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
)

// MaxBins caps the number of bin edges Bins will generate.
const MaxBins = 1000000

// Bins returns the bin edges from min to max. A linear step adds step to
// each edge; a logarithmic step multiplies each edge by (1 + step). The
// final edge is clamped to max.
func Bins(minValue, maxValue, step float64, stepType enums.RangeStepType) ([]float64, error) {
	if step <= 0 || math.IsNaN(step) {
		return nil, errors.ValueError(fmt.Sprintf("rebin step must be positive, got %v", step)).Build()
	}
	if stepType == enums.StepLog && minValue <= 0 && minValue < maxValue {
		return nil, errors.ValueError(fmt.Sprintf("logarithmic rebin needs a positive minimum, got %v", minValue)).Build()
	}
	if !stepType.Valid() {
		return nil, errors.ValueError(fmt.Sprintf("unknown rebin step type %q", stepType)).Build()
	}

	bins := []float64{}
	lower := minValue
	for lower < maxValue {
		if len(bins) >= MaxBins {
			return nil, errors.ValueError(fmt.Sprintf("rebin from %v to %v by %v exceeds %d bins", minValue, maxValue, step, MaxBins)).Build()
		}
		bins = append(bins, lower)
		width := step
		if stepType == enums.StepLog {
			width = lower * step
		}
		lower = math.Min(lower+width, maxValue)
	}
	return append(bins, lower), nil
}

// RebinRanges returns the lower and upper edge of every bin.
func RebinRanges(minValue, maxValue, step float64, stepType enums.RangeStepType) (lower, upper []float64, err error) {
	bins, err := Bins(minValue, maxValue, step, stepType)
	if err != nil {
		return nil, nil, err
	}
	return bins[:len(bins)-1], bins[1:], nil
}

// RebinArrayRanges converts a (min, step, max) rebin triple into bin ranges.
// A negative step selects logarithmic binning.
func RebinArrayRanges(params [3]float64) (lower, upper []float64, err error) {
	minValue, step, maxValue := params[0], params[1], params[2]
	stepType := enums.StepLin
	if step < 0 {
		stepType = enums.StepLog
	}
	return RebinRanges(minValue, maxValue, math.Abs(step), stepType)
}
