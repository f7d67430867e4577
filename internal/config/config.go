// Package config loads the shell's optional ~/.poshrc.yaml settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds ambient, non-functional shell tuning. It never revives
// aliases or any other excluded feature; it only adjusts history behavior.
type Config struct {
	HistorySize int    `yaml:"history_size"`
	HistFile    string `yaml:"histfile"`
}

// Default returns the configuration used when no ~/.poshrc.yaml exists.
func Default() *Config {
	return &Config{HistorySize: 1000}
}

// Path returns the on-disk location of the config file.
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".poshrc.yaml"), nil
}

// Load reads ~/.poshrc.yaml if present, overlaying it on Default(). A
// missing file is not an error. A malformed file returns Default() alongside
// a non-fatal error the caller is expected to warn about and continue past.
func Load() (*Config, error) {
	cfg := Default()

	path, err := Path()
	if err != nil {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("posh: reading %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return Default(), fmt.Errorf("posh: parsing %s: %w", path, err)
	}

	return cfg, nil
}
