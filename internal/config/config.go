// Package config loads optional defaults for the CLI from a YAML file.
//
// Every key is optional. Explicit command-line flags always win over the
// file, and the file wins over built-in defaults.
//
//	data_dir: ./Data
//	top: 15
//	order: gain
//	include_aggregates: false
//	decimals: 3
//	format: table
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds file-provided defaults. Nil or empty fields are unset.
type Config struct {
	DataDir           string `yaml:"data_dir,omitempty"`
	Top               *int   `yaml:"top,omitempty"`
	Order             string `yaml:"order,omitempty"`
	IncludeAggregates *bool  `yaml:"include_aggregates,omitempty"`
	Decimals          *int   `yaml:"decimals,omitempty"`
	Format            string `yaml:"format,omitempty"`
}

// Load reads and parses the config file at path.
// Unknown keys are rejected so typos surface instead of being ignored.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML config content. Empty content yields an empty Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges. Enumerated values (order, format) are
// checked by the CLI, which owns their vocabularies.
func (c *Config) Validate() error {
	if c.Top != nil && *c.Top < 0 {
		return fmt.Errorf("top must be non-negative, got %d", *c.Top)
	}
	if c.Decimals != nil && *c.Decimals < 0 {
		return fmt.Errorf("decimals must be non-negative, got %d", *c.Decimals)
	}
	return nil
}
