package enums

import (
	"strings"

	"git.home.luguber.info/inful/sansstate/internal/foundation/normalization"
)

// Instrument identifies a supported SANS instrument.
type Instrument string

const (
	InstrumentLOQ    Instrument = "LOQ"
	InstrumentSANS2D Instrument = "SANS2D"
	InstrumentLARMOR Instrument = "LARMOR"
)

// Instruments lists every supported instrument in declaration order.
var Instruments = []Instrument{InstrumentLOQ, InstrumentSANS2D, InstrumentLARMOR}

var instrumentNormalizer = normalization.NewNormalizer("instrument", map[string]Instrument{
	"LOQ":    InstrumentLOQ,
	"SANS2D": InstrumentSANS2D,
	"LARMOR": InstrumentLARMOR,
})

// ParseInstrument parses a canonical instrument name.
func ParseInstrument(raw string) (Instrument, error) {
	return instrumentNormalizer.Normalize(raw)
}

// SuggestInstrument returns the supported instrument name closest to raw.
func SuggestInstrument(raw string) (string, bool) {
	s, ok := instrumentNormalizer.Suggest(raw)
	return strings.ToUpper(s), ok
}

// Valid reports whether i is a supported instrument.
func (i Instrument) Valid() bool { return instrumentNormalizer.Contains(i) }

func (i Instrument) String() string { return string(i) }

// SanitiseInstrumentName maps an instrument name read from a data file onto a
// canonical name. Names in data files are sometimes truncated or extended, so
// any name containing a known instrument is reduced to it. Other names are
// returned unchanged.
func SanitiseInstrumentName(name string) string {
	upper := strings.ToUpper(name)
	for _, inst := range Instruments {
		if strings.Contains(upper, string(inst)) {
			return string(inst)
		}
	}
	return name
}

// Facility identifies the facility operating an instrument.
type Facility string

const (
	FacilityISIS Facility = "ISIS"
)

var facilityNormalizer = normalization.NewNormalizer("facility", map[string]Facility{
	"ISIS": FacilityISIS,
})

// ParseFacility parses a canonical facility name.
func ParseFacility(raw string) (Facility, error) {
	return facilityNormalizer.Normalize(raw)
}

// Valid reports whether f is a known facility.
func (f Facility) Valid() bool { return facilityNormalizer.Contains(f) }

func (f Facility) String() string { return string(f) }
