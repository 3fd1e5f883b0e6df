// Package config handles layered YAML configuration with environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Sort orders accepted by display.sort.
const (
	SortInsertion = "insertion"
	SortFirst     = "first"
	SortLast      = "last"
)

// Seed sources with special meaning; any other value is a file path.
const (
	SeedSample = "sample"
	SeedNone   = "none"
)

// Config holds all addressbook configuration.
type Config struct {
	Contacts Contacts `yaml:"contacts"`
	Display  Display  `yaml:"display"`
	Logging  Logging  `yaml:"logging"`
}

// Contacts selects where the book is populated from at startup.
type Contacts struct {
	Seed string `yaml:"seed"` // "sample" | "none" | path to YAML
}

// Display holds output settings.
type Display struct {
	Sort  string `yaml:"sort"`   // "insertion" | "first" | "last"
	NoTUI bool   `yaml:"no_tui"` // Refuse to start the interactive browser
}

// Logging holds diagnostic log settings.
type Logging struct {
	Level string `yaml:"level"` // "debug" | "info" | "warn" | "error"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Contacts: Contacts{
			Seed: SeedSample,
		},
		Display: Display{
			Sort: SortInsertion,
		},
		Logging: Logging{
			Level: "warn",
		},
	}
}

// Load reads a single YAML config file at path and returns a Config.
// For merging multiple config sources, use LoadLayered instead.
// If the file does not exist, defaults are returned without error.
// If the file contains invalid YAML or unknown fields, an error is returned.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return &cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		// Comment-only YAML files produce EOF with no decoded content.
		if errors.Is(err, io.EOF) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadLayered loads config from multiple paths with increasing priority.
// Later paths override earlier ones. Missing files are skipped.
func LoadLayered(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		layer, err := loadLayer(path)
		if err != nil {
			return nil, err
		}
		if layer == nil {
			continue
		}
		cfg.merge(layer)
	}

	return &cfg, nil
}

// Validate checks that config values are usable.
func (c *Config) Validate() error {
	if c.Contacts.Seed == "" {
		return errors.New("config: contacts.seed cannot be empty")
	}
	switch c.Display.Sort {
	case SortInsertion, SortFirst, SortLast:
		// valid
	default:
		return fmt.Errorf("config: display.sort must be %q, %q or %q, got %q",
			SortInsertion, SortFirst, SortLast, c.Display.Sort)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return fmt.Errorf("config: logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}

// ApplyEnv applies environment variable overrides to the config.
// Supported variables: ADDRESSBOOK_SEED, ADDRESSBOOK_SORT, ADDRESSBOOK_LOG_LEVEL.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("ADDRESSBOOK_SEED"); v != "" {
		c.Contacts.Seed = v
	}
	if v := os.Getenv("ADDRESSBOOK_SORT"); v != "" {
		c.Display.Sort = v
	}
	if v := os.Getenv("ADDRESSBOOK_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// rawConfig mirrors Config but uses pointers to distinguish set vs unset fields.
type rawConfig struct {
	Contacts *rawContacts `yaml:"contacts"`
	Display  *rawDisplay  `yaml:"display"`
	Logging  *rawLogging  `yaml:"logging"`
}

type rawContacts struct {
	Seed *string `yaml:"seed"`
}

type rawDisplay struct {
	Sort  *string `yaml:"sort"`
	NoTUI *bool   `yaml:"no_tui"`
}

type rawLogging struct {
	Level *string `yaml:"level"`
}

// loadLayer reads a single config file into a rawConfig for selective merging.
// Returns nil if the file does not exist. Rejects unknown fields.
func loadLayer(path string) (*rawConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	var raw rawConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return &raw, nil
}

// merge applies non-nil fields from a rawConfig layer onto this Config.
func (c *Config) merge(layer *rawConfig) {
	if layer.Contacts != nil && layer.Contacts.Seed != nil {
		c.Contacts.Seed = *layer.Contacts.Seed
	}
	if layer.Display != nil {
		if layer.Display.Sort != nil {
			c.Display.Sort = *layer.Display.Sort
		}
		if layer.Display.NoTUI != nil {
			c.Display.NoTUI = *layer.Display.NoTUI
		}
	}
	if layer.Logging != nil && layer.Logging.Level != nil {
		c.Logging.Level = *layer.Logging.Level
	}
}
