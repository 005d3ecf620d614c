package config

import (
	"errors"
	"fmt"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"io/fs"
	"os"
)

type Config struct {
	Logger  LoggerConfig  `mapstructure:"logger"`
	DB      DBConfig      `mapstructure:"db"`
	AI      AIConfig      `mapstructure:"ai"`
	Render  RenderConfig  `mapstructure:"render"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

var configFile = "./configs/config.yaml"

func Get() *Config {

	file := configFile
	if value, ok := os.LookupEnv("CONFIG_PATH"); ok && value != "" {
		file = value
	}

	config, err := loadConfig(file)
	if err != nil {
		log.Fatal(err)
	}

	return config
}

func loadConfig(file string) (*Config, error) {

	viper.SetConfigFile(file)
	viper.AutomaticEnv()
	setDefaults()

	err := bindEnvironmentVariables()
	if err != nil {
		return nil, err
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("error reading config file %s: %w", file, err)
		}
		log.Debugf("config file %s not found, using defaults", file)
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	err = config.validate()
	if err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("logger.log_level", string(LevelInfo))
	viper.SetDefault("logger.output_dir", "./logs")
	viper.SetDefault("logger.output_file", "cvcraft.log")
	viper.SetDefault("db.connection_string", "./data/cvcraft.db")
	viper.SetDefault("db.busy_timeout_ms", 5000)
	viper.SetDefault("ai.model", "gemini-2.0-flash")
	viper.SetDefault("ai.max_requests_per_minute", 10)
	viper.SetDefault("ai.max_requests_per_day", 1000)
	viper.SetDefault("render.default_density", "normal")
	viper.SetDefault("render.output_dir", "./output")
	viper.SetDefault("render.draft_expiration_days", 30)
}

func bindEnvironmentVariables() error {
	var errs []error

	db, logger, ai, render, metrics := DBConfig{}, LoggerConfig{}, AIConfig{}, RenderConfig{}, MetricsConfig{}

	if err := db.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("DBConfig: %w", err))
	}

	if err := logger.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if err := ai.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("AIConfig: %w", err))
	}

	if err := render.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("RenderConfig: %w", err))
	}

	if err := metrics.bindEnvironmentVariables(); err != nil {
		errs = append(errs, fmt.Errorf("MetricsConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}

func (config Config) validate() error {
	var errs []error

	if err := config.DB.validate(); err != nil {
		errs = append(errs, fmt.Errorf("DBConfig: %w", err))
	}

	if err := config.Logger.validate(); err != nil {
		errs = append(errs, fmt.Errorf("LoggerConfig: %w", err))
	}

	if err := config.AI.validate(); err != nil {
		errs = append(errs, fmt.Errorf("AIConfig: %w", err))
	}

	if err := config.Render.validate(); err != nil {
		errs = append(errs, fmt.Errorf("RenderConfig: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred: %w", errors.Join(errs...))
	}

	return nil
}
