package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultFacility = "ISIS"
	defaultDebounce = 500 * time.Millisecond
	defaultStoreDir = ".sansstate"
)

// DefaultApplier applies defaults for a specific configuration domain.
type DefaultApplier interface {
	ApplyDefaults(cfg *Config) error
	Domain() string
}

// defaultAppliers run in order on every loaded configuration.
var defaultAppliers = []DefaultApplier{
	&LoggingDefaultApplier{},
	&StoreDefaultApplier{},
	&MetricsDefaultApplier{},
	&OutputDefaultApplier{},
}

func applyDefaults(cfg *Config) error {
	if cfg.Facility == "" {
		cfg.Facility = defaultFacility
	}
	if cfg.Watch.Debounce <= 0 {
		cfg.Watch.Debounce = Duration(defaultDebounce)
	}
	for _, applier := range defaultAppliers {
		if err := applier.ApplyDefaults(cfg); err != nil {
			return err
		}
	}
	return nil
}

// LoggingDefaultApplier handles logging defaults.
type LoggingDefaultApplier struct{}

func (l *LoggingDefaultApplier) Domain() string { return "logging" }

func (l *LoggingDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = LogLevelInfo
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = LogFormatText
	}
	return nil
}

// StoreDefaultApplier places the snapshot database under the user's home
// directory, falling back to the working directory.
type StoreDefaultApplier struct{}

func (s *StoreDefaultApplier) Domain() string { return "store" }

func (s *StoreDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Store.Path != "" {
		return nil
	}
	base := "."
	if home, err := os.UserHomeDir(); err == nil {
		base = home
	}
	cfg.Store.Path = filepath.Join(base, defaultStoreDir, "state.db")
	return nil
}

// MetricsDefaultApplier handles metrics defaults.
type MetricsDefaultApplier struct{}

func (m *MetricsDefaultApplier) Domain() string { return "metrics" }

func (m *MetricsDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Metrics.Enabled && cfg.Metrics.TextfilePath == "" {
		cfg.Metrics.TextfilePath = "sansstate.prom"
	}
	return nil
}

// OutputDefaultApplier handles output defaults.
type OutputDefaultApplier struct{}

func (o *OutputDefaultApplier) Domain() string { return "output" }

func (o *OutputDefaultApplier) ApplyDefaults(cfg *Config) error {
	if cfg.Output.Format == "" {
		cfg.Output.Format = OutputText
	}
	return nil
}
