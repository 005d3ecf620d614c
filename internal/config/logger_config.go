package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
)

type LogLevel string

const (
	LevelInfo    LogLevel = "INFO"
	LevelDebug   LogLevel = "DEBUG"
	LevelWarning LogLevel = "WARNING"
	LevelError   LogLevel = "ERROR"
	LevelFatal   LogLevel = "FATAL"
)

type LoggerConfig struct {
	LogLevel   LogLevel `mapstructure:"log_level"`
	OutputDir  string   `mapstructure:"output_dir"`
	OutputFile string   `mapstructure:"output_file"`
	// Quiet keeps log lines out of the terminal, the file still receives them.
	Quiet bool `mapstructure:"quiet"`
}

func (config LoggerConfig) validate() error {
	var errs []error

	switch config.LogLevel {
	case LevelInfo, LevelDebug, LevelWarning, LevelError, LevelFatal:
	case "":
		errs = append(errs, fmt.Errorf("missing variable: log_level"))
	default:
		errs = append(errs, fmt.Errorf("unknown log_level %q", config.LogLevel))
	}
	if config.OutputDir == "" {
		errs = append(errs, fmt.Errorf("missing variable: output_dir"))
	}
	if config.OutputFile == "" {
		errs = append(errs, fmt.Errorf("missing variable: output_file"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config LoggerConfig) bindEnvironmentVariables() error {

	err := viper.BindEnv("logger.output_dir", "LOG_DIR")
	if err != nil {
		return err
	}

	err = viper.BindEnv("logger.quiet", "LOG_QUIET")
	if err != nil {
		return err
	}

	return viper.BindEnv("logger.log_level", "LOG_LEVEL")
}
