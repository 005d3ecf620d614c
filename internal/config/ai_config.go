package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
)

type AIConfig struct {
	// APIKey is only needed by commands that call the model.
	APIKey               string  `mapstructure:"api_key"`
	Model                string  `mapstructure:"model"`
	MaxRequestsPerMinute float32 `mapstructure:"max_requests_per_minute"`
	MaxRequestsPerDay    float32 `mapstructure:"max_requests_per_day"`
}

var ErrMissingAIKey = errors.New("missing variable: ai api key, set AI_KEY")

// RequireKey fails when the model cannot be called.
func (config AIConfig) RequireKey() error {
	if config.APIKey == "" {
		return ErrMissingAIKey
	}
	return nil
}

func (config AIConfig) validate() error {
	var errs []error

	if config.Model == "" {
		errs = append(errs, fmt.Errorf("missing variable: model"))
	}
	if config.MaxRequestsPerMinute <= 0 {
		errs = append(errs, fmt.Errorf("max_requests_per_minute must be greater than zero"))
	}
	if config.MaxRequestsPerDay <= 0 {
		errs = append(errs, fmt.Errorf("max_requests_per_day must be greater than zero"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}
	return nil
}

func (config AIConfig) bindEnvironmentVariables() error {
	var errs []error
	if err := viper.BindEnv("ai.api_key", "AI_KEY"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("ai.model", "AI_MODEL"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("ai.max_requests_per_minute", "AI_MAX_REQUESTS_PER_MINUTE"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("ai.max_requests_per_day", "AI_MAX_REQUESTS_PER_DAY"); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
