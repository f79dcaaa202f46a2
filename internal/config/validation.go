package config

import (
	"strings"

	"git.home.luguber.info/inful/sansstate/internal/enums"
	"git.home.luguber.info/inful/sansstate/internal/foundation"
	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
)

// ValidateConfig checks enumerated and bounded fields after defaults were
// applied. Every failure is reported in a single config error.
func ValidateConfig(cfg *Config) error {
	result := newConfigurationValidator().Validate(cfg)
	if result.Valid {
		return nil
	}
	messages := make([]string, 0, len(result.Errors))
	fields := make([]string, 0, len(result.Errors))
	for _, fe := range result.Errors {
		messages = append(messages, fe.Error())
		fields = append(fields, fe.Field)
	}
	return errors.ConfigError("invalid configuration: " + strings.Join(messages, "; ")).
		WithContext("fields", fields).
		UserAction().
		Build()
}

func newConfigurationValidator() *foundation.ValidatorChain[*Config] {
	return foundation.NewValidatorChain(
		validateFacility,
		validateLogging,
		validateOutput,
		validateStore,
		validateMetrics,
		validateDefaults,
	)
}

func validateFacility(cfg *Config) foundation.ValidationResult {
	if _, err := enums.ParseFacility(cfg.Facility); err != nil {
		return foundation.Invalid(foundation.NewValidationError("facility", "invalid", err.Error()))
	}
	return foundation.Valid()
}

func validateLogging(cfg *Config) foundation.ValidationResult {
	result := foundation.Valid()
	if lvl, err := NormalizeLogLevel(string(cfg.Logging.Level)); err != nil {
		result = result.Combine(foundation.Invalid(foundation.NewValidationError("logging.level", "invalid", err.Error())))
	} else {
		cfg.Logging.Level = lvl
	}
	if f, err := NormalizeLogFormat(string(cfg.Logging.Format)); err != nil {
		result = result.Combine(foundation.Invalid(foundation.NewValidationError("logging.format", "invalid", err.Error())))
	} else {
		cfg.Logging.Format = f
	}
	return result
}

func validateOutput(cfg *Config) foundation.ValidationResult {
	f, err := NormalizeOutputFormat(string(cfg.Output.Format))
	if err != nil {
		return foundation.Invalid(foundation.NewValidationError("output.format", "invalid", err.Error()))
	}
	cfg.Output.Format = f
	return foundation.Valid()
}

func validateStore(cfg *Config) foundation.ValidationResult {
	if cfg.Store.Path == "" {
		return foundation.Invalid(foundation.NewValidationError("store.path", "required", "must not be empty"))
	}
	return foundation.Valid()
}

func validateMetrics(cfg *Config) foundation.ValidationResult {
	if cfg.Metrics.Enabled && cfg.Metrics.TextfilePath == "" {
		return foundation.Invalid(foundation.NewValidationError("metrics.textfile_path", "required", "is required when metrics are enabled"))
	}
	return foundation.Valid()
}

func validateDefaults(cfg *Config) foundation.ValidationResult {
	if cfg.Defaults.Period < 0 {
		return foundation.Invalid(foundation.NewValidationError("defaults.period", "range", "must not be negative"))
	}
	return foundation.Valid()
}
