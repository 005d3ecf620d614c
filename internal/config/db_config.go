package config

import (
	"errors"
	"fmt"
	"github.com/spf13/viper"
	"strings"
)

type DBConfig struct {
	ConnectionString string `mapstructure:"connection_string"`
	// BusyTimeoutMs is how long sqlite waits on a locked database, so the daemon
	// and a CLI command can share one file.
	BusyTimeoutMs int `mapstructure:"busy_timeout_ms"`
}

// DSN is the connection string with the busy timeout pragma added, unless the
// connection string already sets pragmas of its own.
func (config DBConfig) DSN() string {
	if config.BusyTimeoutMs <= 0 || strings.Contains(config.ConnectionString, "_pragma=") {
		return config.ConnectionString
	}

	separator := "?"
	if strings.Contains(config.ConnectionString, "?") {
		separator = "&"
	}
	return fmt.Sprintf("%s%s_pragma=busy_timeout(%d)", config.ConnectionString, separator, config.BusyTimeoutMs)
}

func (config DBConfig) validate() error {
	var errs []error
	if config.ConnectionString == "" {
		errs = append(errs, fmt.Errorf("missing variable: db connection string"))
	}
	if config.BusyTimeoutMs < 0 {
		errs = append(errs, fmt.Errorf("db busy timeout can't be negative"))
	}
	return errors.Join(errs...)
}

func (config DBConfig) bindEnvironmentVariables() error {
	return errors.Join(
		viper.BindEnv("db.connection_string", "DB_CONNECTION_STRING"),
		viper.BindEnv("db.busy_timeout_ms", "DB_BUSY_TIMEOUT_MS"),
	)
}
