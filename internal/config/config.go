// Package config loads the optional mcp-cdisc-library configuration file.
// The file supplies defaults for values not given on the command line or in
// the environment; a missing default file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// File is the on-disk configuration.
type File struct {
	// APIKey is the CDISC Library API key.
	APIKey string `yaml:"apiKey"`
	// BaseURL overrides the CDISC Library API root.
	BaseURL string `yaml:"baseURL"`
	// RequestTimeout and CTRequestTimeout are Go duration strings ("15s",
	// "1m") overriding the per-call timeouts.
	RequestTimeout   string `yaml:"requestTimeout"`
	CTRequestTimeout string `yaml:"ctRequestTimeout"`
}

// DefaultPath returns the default config file location,
// $XDG_CONFIG_HOME/mcp-cdisc-library/config.yaml or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving user config dir: %w", err)
	}
	return filepath.Join(dir, "mcp-cdisc-library", "config.yaml"), nil
}

// Load reads and parses the file at path. The file must exist; use
// LoadDefault for the tolerant default-location lookup.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if err := f.validate(path); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadDefault loads the file at the default location, returning (nil, nil)
// when it does not exist.
func LoadDefault() (*File, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	return Load(path)
}

func (f *File) validate(path string) error {
	for _, field := range []struct{ name, value string }{
		{"requestTimeout", f.RequestTimeout},
		{"ctRequestTimeout", f.CTRequestTimeout},
	} {
		if field.value == "" {
			continue
		}
		if _, err := time.ParseDuration(field.value); err != nil {
			return fmt.Errorf("config file %s: invalid %s: %w", path, field.name, err)
		}
	}
	return nil
}

// RequestTimeoutOr returns the configured request timeout, or fallback when
// unset. Load has already validated the syntax.
func (f *File) RequestTimeoutOr(fallback time.Duration) time.Duration {
	return timeoutOr(f, func(f *File) string { return f.RequestTimeout }, fallback)
}

// CTRequestTimeoutOr returns the configured controlled terminology timeout,
// or fallback when unset.
func (f *File) CTRequestTimeoutOr(fallback time.Duration) time.Duration {
	return timeoutOr(f, func(f *File) string { return f.CTRequestTimeout }, fallback)
}

func timeoutOr(f *File, field func(*File) string, fallback time.Duration) time.Duration {
	if f == nil {
		return fallback
	}
	v := field(f)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
