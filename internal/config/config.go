// Package config loads the ecaplugin YAML configuration file.
//
// The file provides defaults for the output layout; command-line flags
// override every field. Example:
//
//	client_name: fx
//	single_line: false
//	no_description: true
//	include_disabled: true
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/ecatools/ecaplugin/ecasound"
)

const (
	// DefaultDir is the directory below the user configuration directory
	DefaultDir = "ecaplugin"
	// DefaultFile is the default configuration filename
	DefaultFile = "config.yaml"
)

// Config holds output defaults.
type Config struct {
	// ClientName is the JACK client name used in chain setups
	ClientName string `yaml:"client_name,omitempty"`

	// SingleLine joins plugins on one line
	SingleLine bool `yaml:"single_line,omitempty"`

	// NoDescription suppresses plugin comments
	NoDescription bool `yaml:"no_description,omitempty"`

	// IncludeDisabled renders disabled plugins as comments
	IncludeDisabled bool `yaml:"include_disabled,omitempty"`

	// path is the file the configuration was read from, if any
	path string
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{ClientName: ecasound.DefaultClientName}
}

// DefaultPath returns the location of the configuration file when none is
// given explicitly.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, DefaultDir, DefaultFile), nil
}

// Load reads the configuration from path. With an empty path the default
// location is used, and a missing file there yields the defaults. A
// missing file at an explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	cfg.path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			cfg.path = ""
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.ClientName == "" {
		cfg.ClientName = ecasound.DefaultClientName
	}

	return cfg, nil
}

// Path returns the file the configuration was read from, or "" when the
// defaults are in effect.
func (c *Config) Path() string {
	return c.path
}

// Options returns formatter options carrying the configured defaults.
func (c *Config) Options() ecasound.Options {
	return ecasound.Options{
		ClientName:      c.ClientName,
		SingleLine:      c.SingleLine,
		NoDescription:   c.NoDescription,
		IncludeDisabled: c.IncludeDisabled,
	}
}
