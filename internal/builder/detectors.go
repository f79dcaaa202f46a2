package builder

import (
	"strconv"

	"git.home.luguber.info/inful/sansstate/internal/enums"
)

// DetectorNames is the long and short name of one detector bank.
type DetectorNames struct {
	Long  string
	Short string
}

var detectorTable = map[enums.Instrument]map[enums.DetectorType]DetectorNames{
	enums.InstrumentLOQ: {
		enums.DetectorLAB: {Long: "main-detector-bank", Short: "main"},
		enums.DetectorHAB: {Long: "HAB", Short: "HAB"},
	},
	enums.InstrumentSANS2D: {
		enums.DetectorLAB: {Long: "rear-detector", Short: "rear"},
		enums.DetectorHAB: {Long: "front-detector", Short: "front"},
	},
	enums.InstrumentLARMOR: {
		enums.DetectorLAB: {Long: "DetectorBench", Short: "rear"},
		enums.DetectorHAB: {Long: "front-detector", Short: "front"},
	},
}

var monitorCounts = map[enums.Instrument]int{
	enums.InstrumentLOQ:    2,
	enums.InstrumentSANS2D: 8,
	enums.InstrumentLARMOR: 10,
}

// LookupDetectorNames returns the names of bank on inst.
func LookupDetectorNames(inst enums.Instrument, bank enums.DetectorType) (DetectorNames, bool) {
	names, ok := detectorTable[inst][bank]
	return names, ok
}

// MonitorNames returns the spectrum-number to monitor-name table of inst,
// e.g. "1" -> "monitor1". Unknown instruments have no monitors.
func MonitorNames(inst enums.Instrument) map[string]string {
	n := monitorCounts[inst]
	out := make(map[string]string, n)
	for i := 1; i <= n; i++ {
		key := strconv.Itoa(i)
		out[key] = "monitor" + key
	}
	return out
}
