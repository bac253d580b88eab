// Package config provides configuration management for the scanner.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	apperrors "harmonic-scanner/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Scanner ScannerConfig `mapstructure:"scanner"`
	Store   StoreConfig   `mapstructure:"store"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ScannerConfig holds swing detection and ratio matching parameters.
type ScannerConfig struct {
	LeftBars  int     `mapstructure:"left_bars"`
	RightBars int     `mapstructure:"right_bars"`
	Tolerance float64 `mapstructure:"tolerance"`
}

// StoreConfig holds persistence configuration.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".config", "harmonic-scanner")
}

// Load reads configuration from the config file and environment. A missing
// config file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(DefaultConfigDir())
	v.AddConfigPath(".")

	v.SetEnvPrefix("HARMONIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, apperrors.Wrap(err, "failed to read config file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal config")
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("scanner.left_bars", 5)
	v.SetDefault("scanner.right_bars", 5)
	v.SetDefault("scanner.tolerance", 0.03)

	v.SetDefault("store.path", filepath.Join(DefaultConfigDir(), "scanner.db"))

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", false)
	v.SetDefault("logging.file_path", filepath.Join(DefaultConfigDir(), "logs", "scanner.log"))
	v.SetDefault("logging.max_size", 50)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age", 30)
}

func validate(cfg *Config) error {
	if cfg.Scanner.LeftBars < 0 || cfg.Scanner.RightBars < 0 {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "scanner window bars must be non-negative")
	}
	if cfg.Scanner.Tolerance < 0 {
		return apperrors.Wrap(apperrors.ErrConfigInvalid, "scanner tolerance must be non-negative")
	}
	return nil
}
