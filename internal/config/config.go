// Package config loads the optional switchgen settings file.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

const (
	DefaultPath = "~/.switchgen.yaml"

	LineEndingCRLF = "crlf"
	LineEndingLF   = "lf"
)

// Config holds settings that rarely change between runs.
type Config struct {
	// Locale selects the language of place names and printed phrases.
	Locale string `yaml:"locale"`
	// LineEnding terminates each generated branch line: crlf or lf.
	LineEnding string `yaml:"line_ending"`
}

// Default returns the settings used when no file is present.
func Default() *Config {
	return &Config{
		Locale:     "en",
		LineEnding: LineEndingCRLF,
	}
}

// Load reads the file at path over the defaults. A missing file at
// DefaultPath is not an error; a missing file anywhere else is.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		// no home directory means no default file
		if path == DefaultPath {
			return cfg, nil
		}
		return nil, err
	}
	data, err := os.ReadFile(expanded)
	if err != nil {
		if os.IsNotExist(err) && path == DefaultPath {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse %s", expanded)
	}
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", expanded)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.LineEnding = strings.ToLower(strings.TrimSpace(c.LineEnding))
	switch c.LineEnding {
	case "":
		c.LineEnding = LineEndingCRLF
	case LineEndingCRLF, LineEndingLF:
	default:
		return errors.WithHint(errors.Newf("line_ending %q is not supported", c.LineEnding), "use crlf or lf")
	}
	if strings.TrimSpace(c.Locale) == "" {
		c.Locale = "en"
	}
	return nil
}

// EOL returns the line terminator selected by LineEnding.
func (c *Config) EOL() string {
	if c.LineEnding == LineEndingLF {
		return "\n"
	}
	return "\r\n"
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "expand ~")
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
	}
	return path, nil
}
