// Package config loads the sansstate configuration file.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
)

// ConfigVersion is the only supported configuration schema version.
const ConfigVersion = "1.0"

// Config represents the application configuration.
type Config struct {
	Version  string         `yaml:"version"`
	Facility string         `yaml:"facility,omitempty"`
	Logging  LoggingConfig  `yaml:"logging"`
	Store    StoreConfig    `yaml:"store"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Output   OutputConfig   `yaml:"output"`
	Watch    WatchConfig    `yaml:"watch"`
	Defaults ReductionHints `yaml:"defaults,omitempty"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level,omitempty"`
	Format LogFormat `yaml:"format,omitempty"`
}

// StoreConfig locates the snapshot database.
type StoreConfig struct {
	Path string `yaml:"path,omitempty"`
}

// MetricsConfig controls the Prometheus textfile written after each command.
type MetricsConfig struct {
	Enabled      bool   `yaml:"enabled"`
	TextfilePath string `yaml:"textfile_path,omitempty"`
}

// OutputConfig selects how commands print results.
type OutputConfig struct {
	Format OutputFormat `yaml:"format,omitempty"`
}

// WatchConfig tunes the user-file watcher.
type WatchConfig struct {
	Debounce Duration `yaml:"debounce,omitempty"`
}

// ReductionHints are used when a command does not name them.
type ReductionHints struct {
	UserFile string `yaml:"user_file,omitempty"`
	Period   int    `yaml:"period,omitempty"`
}

// Load loads configuration from the specified file. Variables from .env files
// and the process environment are expanded in the file content.
func Load(configPath string) (*Config, error) {
	loadEnvFile()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigError("configuration file not found").
				WithContext("path", configPath).
				UserAction().
				Build()
		}
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
			WithContext("path", configPath).
			Build()
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to unmarshal config").
			WithContext("path", configPath).
			Build()
	}
	if cfg.Version != ConfigVersion {
		return nil, errors.ConfigError("unsupported configuration version").
			WithContext("version", cfg.Version).
			WithContext("supported", ConfigVersion).
			Build()
	}

	if err := applyDefaults(&cfg); err != nil {
		return nil, err
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns a configuration with every default applied, used when no
// configuration file exists.
func Default() *Config {
	cfg := &Config{Version: ConfigVersion}
	_ = applyDefaults(cfg)
	return cfg
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", configPath).
			UserAction().
			Build()
	}

	example := Config{
		Version:  ConfigVersion,
		Facility: "ISIS",
		Logging:  LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
		Store:    StoreConfig{Path: "${HOME}/.sansstate/state.db"},
		Metrics:  MetricsConfig{Enabled: false, TextfilePath: "./sansstate.prom"},
		Output:   OutputConfig{Format: OutputText},
		Watch:    WatchConfig{Debounce: Duration(defaultDebounce)},
		Defaults: ReductionHints{UserFile: "./user.yaml"},
	}

	data, err := yaml.Marshal(&example)
	if err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to marshal example config").Build()
	}
	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "failed to write config file").
			WithContext("path", configPath).
			Build()
	}
	return nil
}
