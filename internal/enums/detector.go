package enums

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/foundation/normalization"
)

// DetectorType names a detector bank: the low-angle bank (LAB) or the
// high-angle bank (HAB).
type DetectorType string

const (
	DetectorLAB DetectorType = "LAB"
	DetectorHAB DetectorType = "HAB"
)

// DetectorTypes lists the banks in their canonical order.
var DetectorTypes = []DetectorType{DetectorLAB, DetectorHAB}

var detectorTypeNormalizer = normalization.NewNormalizer("detector type", map[string]DetectorType{
	"LAB": DetectorLAB,
	"HAB": DetectorHAB,
})

// ParseDetectorType parses "LAB" or "HAB".
func ParseDetectorType(raw string) (DetectorType, error) {
	return detectorTypeNormalizer.Normalize(raw)
}

// Valid reports whether d is a known bank.
func (d DetectorType) Valid() bool { return detectorTypeNormalizer.Contains(d) }

func (d DetectorType) String() string { return string(d) }

// DetectorTypeFromBankName converts an instrument bank name, long or short,
// into its detector type.
func DetectorTypeFromBankName(name string) (DetectorType, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "REAR-DETECTOR", "MAIN-DETECTOR-BANK", "DETECTORBENCH", "REAR", "MAIN":
		return DetectorLAB, nil
	case "FRONT-DETECTOR", "HAB", "FRONT":
		return DetectorHAB, nil
	default:
		return "", errors.ValueError(fmt.Sprintf("no detector type for bank name %q", name)).
			WithContext("bank", name).
			Build()
	}
}

// CanonicalCoordinate is an axis of the beam coordinate frame.
type CanonicalCoordinate string

const (
	CoordinateX CanonicalCoordinate = "X"
	CoordinateY CanonicalCoordinate = "Y"
	CoordinateZ CanonicalCoordinate = "Z"
)

var coordinateNormalizer = normalization.NewNormalizer("coordinate", map[string]CanonicalCoordinate{
	"X": CoordinateX,
	"Y": CoordinateY,
	"Z": CoordinateZ,
})

// ParseCanonicalCoordinate parses "X", "Y" or "Z".
func ParseCanonicalCoordinate(raw string) (CanonicalCoordinate, error) {
	return coordinateNormalizer.Normalize(raw)
}

// Valid reports whether c is an axis.
func (c CanonicalCoordinate) Valid() bool { return coordinateNormalizer.Contains(c) }

func (c CanonicalCoordinate) String() string { return string(c) }
