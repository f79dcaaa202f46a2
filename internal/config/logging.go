package config

import (
	"log/slog"

	"git.home.luguber.info/inful/sansstate/internal/foundation/normalization"
)

// LogLevel enumerates supported logging levels.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

var logLevelNormalizer = normalization.NewNormalizer("log level", map[string]LogLevel{
	"debug":   LogLevelDebug,
	"info":    LogLevelInfo,
	"warn":    LogLevelWarn,
	"warning": LogLevelWarn,
	"error":   LogLevelError,
})

// NormalizeLogLevel parses a log level name.
func NormalizeLogLevel(raw string) (LogLevel, error) {
	return logLevelNormalizer.Normalize(raw)
}

// SlogLevel maps l onto slog; unknown levels map to Info.
func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LogFormat enumerates supported log output formats.
type LogFormat string

const (
	LogFormatJSON LogFormat = "json"
	LogFormatText LogFormat = "text"
)

var logFormatNormalizer = normalization.NewNormalizer("log format", map[string]LogFormat{
	"json": LogFormatJSON,
	"text": LogFormatText,
})

// NormalizeLogFormat parses a log format name.
func NormalizeLogFormat(raw string) (LogFormat, error) {
	return logFormatNormalizer.Normalize(raw)
}

// OutputFormat selects how commands print results.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputYAML OutputFormat = "yaml"
)

var outputFormatNormalizer = normalization.NewNormalizer("output format", map[string]OutputFormat{
	"text": OutputText,
	"yaml": OutputYAML,
})

// NormalizeOutputFormat parses an output format name.
func NormalizeOutputFormat(raw string) (OutputFormat, error) {
	return outputFormatNormalizer.Normalize(raw)
}
