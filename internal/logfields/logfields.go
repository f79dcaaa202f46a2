package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyInstrument = "instrument"
	KeyFacility   = "facility"
	KeyRun        = "run"
	KeyPeriod     = "period"
	KeyModel      = "model"
	KeyStateID    = "state_id"
	KeyElement    = "element"
	KeyGrammar    = "grammar"
	KeyPath       = "path"
	KeyCategory   = "category"
	KeyDurationMS = "duration_ms"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Instrument(i string) slog.Attr   { return slog.String(KeyInstrument, i) }
func Facility(f string) slog.Attr     { return slog.String(KeyFacility, f) }
func Run(name string) slog.Attr       { return slog.String(KeyRun, name) }
func Period(p int) slog.Attr          { return slog.Int(KeyPeriod, p) }
func Model(name string) slog.Attr     { return slog.String(KeyModel, name) }
func StateID(id string) slog.Attr     { return slog.String(KeyStateID, id) }
func Element(id string) slog.Attr     { return slog.String(KeyElement, id) }
func Grammar(g string) slog.Attr      { return slog.String(KeyGrammar, g) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Category(c string) slog.Attr     { return slog.String(KeyCategory, c) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
