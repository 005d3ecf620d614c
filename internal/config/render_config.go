package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"strings"
)

type RenderConfig struct {
	DefaultDensity      string `mapstructure:"default_density"`
	Paginate            bool   `mapstructure:"paginate"`
	OutputDir           string `mapstructure:"output_dir"`
	DraftExpirationDays int    `mapstructure:"draft_expiration_days"`
	ChromePath          string `mapstructure:"chrome_path"`
}

func (config RenderConfig) validate() error {
	var errs []error

	switch strings.ToLower(config.DefaultDensity) {
	case "", "normal", "compact", "very_compact":
	default:
		errs = append(errs, fmt.Errorf("unknown default_density %q", config.DefaultDensity))
	}
	if config.OutputDir == "" {
		errs = append(errs, fmt.Errorf("missing variable: output_dir"))
	}
	if config.DraftExpirationDays <= 0 {
		errs = append(errs, fmt.Errorf("draft_expiration_days must be greater than zero"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}
	return nil
}

func (config RenderConfig) bindEnvironmentVariables() error {
	var errs []error
	if err := viper.BindEnv("render.default_density", "RENDER_DENSITY"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("render.output_dir", "OUTPUT_DIR"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("render.draft_expiration_days", "DRAFT_EXPIRATION_DAYS"); err != nil {
		errs = append(errs, err)
	}

	if err := viper.BindEnv("render.chrome_path", "CHROME_PATH"); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

type MetricsConfig struct {
	Address string `mapstructure:"address"`
}

func (config MetricsConfig) bindEnvironmentVariables() error {
	return viper.BindEnv("metrics.address", "METRICS_ADDRESS")
}
