// Package config loads qcalc settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"qcalc/internal/calc"
	"qcalc/internal/logging"
)

// Config holds user settings. The zero value is not valid; use Default.
type Config struct {
	AngleMode string `yaml:"angle_mode"`
	ShowExtra bool   `yaml:"show_extra"`
	LogLevel  string `yaml:"log_level"`
	LogFile   string `yaml:"log_file"`
}

// Default returns the built-in settings: radians, extra panel hidden,
// info-level logging disabled (no log file).
func Default() Config {
	return Config{
		AngleMode: calc.Radians.String(),
		LogLevel:  "info",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/qcalc/config.yaml or the platform
// equivalent. It returns "" if no config directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "qcalc", "config.yaml")
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := calc.ParseAngleMode(c.AngleMode); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Mode returns the configured initial angle mode.
func (c Config) Mode() calc.AngleMode {
	m, _ := calc.ParseAngleMode(c.AngleMode)
	return m
}
