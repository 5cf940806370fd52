package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-latex2web/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// Config holds file-based defaults for conversion. Flags take precedence
// over config values, config over built-in defaults.
type Config struct {
	Theme     string `yaml:"theme"`     // theme name (default "clean-serif")
	ThemeDir  string `yaml:"themeDir"`  // custom theme directory (empty = embedded only)
	OutputDir string `yaml:"outputDir"` // default output directory (empty = next to input)
	Highlight string `yaml:"highlight"` // "client" or "server"
}

// DefaultConfig returns an empty configuration; the library supplies the
// actual defaults for unset values.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig reads and strictly parses a YAML config file.
// Unknown keys are rejected.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// mergeFlags overlays explicitly set flag values onto the config.
func (c *Config) mergeFlags(f *cliFlags) {
	if f.theme != "" {
		c.Theme = f.theme
	}
	if f.themeDir != "" {
		c.ThemeDir = f.themeDir
	}
	if f.highlight != "" {
		c.Highlight = f.highlight
	}
}
