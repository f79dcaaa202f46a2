package enums

import "git.home.luguber.info/inful/sansstate/internal/foundation/normalization"

// ReductionMode selects which banks a reduction produces output for.
type ReductionMode string

const (
	ReductionModeLAB    ReductionMode = "LAB"
	ReductionModeHAB    ReductionMode = "HAB"
	ReductionModeMerged ReductionMode = "Merged"
	ReductionModeAll    ReductionMode = "All"
)

var reductionModeNormalizer = normalization.NewNormalizer("reduction mode", map[string]ReductionMode{
	"LAB":    ReductionModeLAB,
	"HAB":    ReductionModeHAB,
	"Merged": ReductionModeMerged,
	"All":    ReductionModeAll,
})

// ParseReductionMode parses a reduction mode name.
func ParseReductionMode(raw string) (ReductionMode, error) {
	return reductionModeNormalizer.Normalize(raw)
}

// Valid reports whether m is a member of the enumeration.
func (m ReductionMode) Valid() bool { return reductionModeNormalizer.Contains(m) }

func (m ReductionMode) String() string { return string(m) }

// ReductionDimensionality is the output dimensionality of a reduction.
type ReductionDimensionality string

const (
	OneDim ReductionDimensionality = "OneDim"
	TwoDim ReductionDimensionality = "TwoDim"
)

var dimensionalityNormalizer = normalization.NewNormalizer("reduction dimensionality", map[string]ReductionDimensionality{
	"OneDim": OneDim,
	"TwoDim": TwoDim,
})

// ParseReductionDimensionality parses "OneDim" or "TwoDim".
func ParseReductionDimensionality(raw string) (ReductionDimensionality, error) {
	return dimensionalityNormalizer.Normalize(raw)
}

// Valid reports whether d is a member of the enumeration.
func (d ReductionDimensionality) Valid() bool { return dimensionalityNormalizer.Contains(d) }

func (d ReductionDimensionality) String() string { return string(d) }

// RangeStepType selects linear or logarithmic binning.
type RangeStepType string

const (
	StepLin RangeStepType = "Lin"
	StepLog RangeStepType = "Log"
)

var stepTypeNormalizer = normalization.NewNormalizer("range step type", map[string]RangeStepType{
	"Lin": StepLin,
	"Log": StepLog,
})

// ParseRangeStepType parses "Lin" or "Log".
func ParseRangeStepType(raw string) (RangeStepType, error) {
	return stepTypeNormalizer.Normalize(raw)
}

// Valid reports whether s is a member of the enumeration.
func (s RangeStepType) Valid() bool { return stepTypeNormalizer.Contains(s) }

func (s RangeStepType) String() string { return string(s) }
