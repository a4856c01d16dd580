package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nested keys: FERIADOS_STORAGE__BACKEND -> storage.backend.
const EnvPrefix = "FERIADOS_"

// DefaultConfigFile is looked up in the working directory.
const DefaultConfigFile = "feriados.yml"

var (
	ErrInvalidBackend  = errors.New("invalid storage backend")
	ErrInvalidLogLevel = errors.New("invalid log level")
	ErrInvalidSystem   = errors.New("invalid theme system value")
)

// Config is the runtime configuration. The calendar content itself (year,
// labels, holidays) is fixed in the calendar package.
type Config struct {
	OutputDir string        `yaml:"output_dir" koanf:"output_dir"`
	Storage   StorageConfig `yaml:"storage" koanf:"storage"`
	Theme     ThemeConfig   `yaml:"theme" koanf:"theme"`
	Log       LogConfig     `yaml:"log" koanf:"log"`
	Page      PageConfig    `yaml:"page" koanf:"page"`
}

// StorageConfig selects where the theme preference is persisted.
type StorageConfig struct {
	Backend string `yaml:"backend" koanf:"backend"`
	Path    string `yaml:"path" koanf:"path"`
}

// ThemeConfig controls the ambient system signal: auto reads the
// environment, dark/light force a value, none disables it.
type ThemeConfig struct {
	System string `yaml:"system" koanf:"system"`
}

type LogConfig struct {
	Level string `yaml:"level" koanf:"level"`
}

// PageConfig holds presentation options of the generated page.
type PageConfig struct {
	Title          string `yaml:"title" koanf:"title"`
	FooterMarkdown string `yaml:"footer_markdown" koanf:"footer_markdown"`
}

// DefaultConfig returns a Config with defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputDir: "public",
		Storage: StorageConfig{
			Backend: "file",
			Path:    ".feriados/preferences.json",
		},
		Theme: ThemeConfig{System: "auto"},
		Log:   LogConfig{Level: "info"},
		Page: PageConfig{
			Title:          "Calendario 2025",
			FooterMarkdown: "Feriados de **Costa Rica**.",
		},
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FERIADOS_*). A missing file is not an
// error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validBackends = map[string]bool{"file": true, "sqlite": true, "memory": true}

var validLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

var validSystems = map[string]bool{"auto": true, "dark": true, "light": true, "none": true}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validBackends[c.Storage.Backend] {
		return fmt.Errorf("%w %q: must be one of file, sqlite, memory", ErrInvalidBackend, c.Storage.Backend)
	}
	if c.Storage.Backend != "memory" && c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required for the %s backend", c.Storage.Backend)
	}
	if !validLevels[c.Log.Level] {
		return fmt.Errorf("%w %q: must be one of debug, info, warn, error", ErrInvalidLogLevel, c.Log.Level)
	}
	if !validSystems[c.Theme.System] {
		return fmt.Errorf("%w %q: must be one of auto, dark, light, none", ErrInvalidSystem, c.Theme.System)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir is required")
	}
	return nil
}
