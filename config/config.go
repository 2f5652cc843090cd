// Package config handles configuration loading and management for profilecard.
// Configuration is loaded from:
// 1. ~/.config/profilecard/config.yaml (user-level)
// 2. .profilecard/config.yaml (project-level override)
// 3. Environment variables (highest priority)
//
// Configuration only controls presentation and server identity; the
// profile values themselves are fixed.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Color modes
const (
	ColorNever  = "never"
	ColorAuto   = "auto"
	ColorAlways = "always"
)

// OutputConfig holds settings for how the profile is printed.
type OutputConfig struct {
	// Format is the output format (text, json)
	Format string `yaml:"format"`

	// Color controls ANSI emphasis of the header and footer (never, auto, always)
	Color string `yaml:"color"`
}

// ServerConfig holds the MCP server identity.
type ServerConfig struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Config is the main configuration structure.
type Config struct {
	// Output holds presentation settings
	Output OutputConfig `yaml:"output"`

	// Server holds MCP server settings
	Server ServerConfig `yaml:"server"`

	// Debug enables verbose logging
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: FormatText,
			Color:  ColorNever,
		},
		Server: ServerConfig{
			Name:    "profilecard",
			Version: "0.1.0",
		},
		Debug: false,
	}
}

// Load reads configuration from standard locations and merges with defaults.
// Priority (highest to lowest):
// 1. Environment variables
// 2. Project config (.profilecard/config.yaml)
// 3. User config (~/.config/profilecard/config.yaml)
// 4. Defaults
//
// Missing files are skipped; unreadable YAML is an error.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	var paths []string
	if p, err := userConfigPath(); err == nil {
		paths = append(paths, p)
	}
	paths = append(paths, ProjectConfigPath)

	for _, path := range paths {
		if err := mergeFile(cfg, path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return finish(cfg)
}

// LoadFromPath reads configuration from a specific file path, which must exist.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := mergeFile(cfg, path); err != nil {
		return nil, err
	}
	return finish(cfg)
}

// ProjectConfigPath is the project-level config, relative to the working directory.
var ProjectConfigPath = filepath.Join(".profilecard", "config.yaml")

// mergeFile overlays the YAML at path onto cfg. Fields absent from the
// file keep their current values.
func mergeFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func finish(cfg *Config) (*Config, error) {
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	var errs []string

	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Sprintf("unknown output format: %s", c.Output.Format))
	}

	switch c.Output.Color {
	case ColorNever, ColorAuto, ColorAlways:
	default:
		errs = append(errs, fmt.Sprintf("unknown color mode: %s", c.Output.Color))
	}

	if c.Server.Name == "" {
		errs = append(errs, "server name is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}

	return nil
}

// userConfigPath returns the path to the user configuration file.
func userConfigPath() (string, error) {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "profilecard", "config.yaml"), nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".config", "profilecard", "config.yaml"), nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PROFILECARD_FORMAT"); v != "" {
		cfg.Output.Format = strings.ToLower(v)
	}

	if v := os.Getenv("PROFILECARD_COLOR"); v != "" {
		cfg.Output.Color = strings.ToLower(v)
	}

	if v := os.Getenv("PROFILECARD_DEBUG"); v == "1" || strings.ToLower(v) == "true" {
		cfg.Debug = true
	}
}

// WriteDefault creates a default config file at the specified path.
func WriteDefault(path string) error {
	cfg := DefaultConfig()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	content := "# profilecard configuration\n" +
		"# output.format: text | json\n" +
		"# output.color:  never | auto | always\n\n" + string(data)

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
