// SPDX-License-Identifier: MIT

// Package config loads the optional YAML defaults file for the wavefront CLI.
//
// A config file supplies the values that command-line flags would otherwise
// carry on every invocation (worker count, edge direction, output format,
// log level). Flags always win over the file; the file wins over Default().
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrBadValue - a configuration field holds a value outside its legal range.
var ErrBadValue = errors.New("config: bad value")

// Config carries the CLI defaults that flags may override.
type Config struct {
	Workers    int    `yaml:"workers"`    // 0 → one worker per logical CPU
	MaxLevels  int    `yaml:"max_levels"` // 0 → unbounded traversal depth
	Undirected bool   `yaml:"undirected"` // store both directions of every edge
	Format     string `yaml:"format"`     // "text" | "csv"
	LogLevel   string `yaml:"log_level"`  // "debug" | "info" | "warn" | "error"
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Workers:   0,
		MaxLevels: 0,
		Format:    "text",
		LogLevel:  "info",
	}
}

// Load reads a YAML file into a Config seeded with Default values, so keys
// absent from the file keep their defaults. The merged result is validated
// before it is returned; errors carry the file path.
func Load(path string) (Config, error) {
	cfg := Default()

	// 1. Read the config file.
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	// 2. Parse YAML over the defaults.
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	// 3. Validate the merged result.
	if err = cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field against its legal range.
// Violations surface as ErrBadValue with the offending field named.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers cannot be negative (%d)", ErrBadValue, c.Workers)
	}
	if c.MaxLevels < 0 {
		return fmt.Errorf("%w: max_levels cannot be negative (%d)", ErrBadValue, c.MaxLevels)
	}

	switch c.Format {
	case "text", "csv":
	default:
		return fmt.Errorf("%w: format must be text or csv (%q)", ErrBadValue, c.Format)
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level must be debug, info, warn or error (%q)", ErrBadValue, c.LogLevel)
	}

	return nil
}
