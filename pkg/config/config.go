// Package config loads the optional gymdiag configuration file.
//
// The file is TOML and mirrors the generate flags:
//
//	output_dir = "figures"
//	formats    = ["png", "pdf", "svg"]
//	dpi        = 300
//	timestamp  = false
//	engine     = "native"
//
// Every key is optional. Values from the file seed [pipeline.Options];
// command-line flags given explicitly take precedence.
//
// When no --config flag is passed the CLI looks for
// $XDG_CONFIG_HOME/gymdiag/config.toml (or ~/.config/gymdiag/config.toml)
// and silently continues without one when it does not exist.
package config

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/pentagongym/gymdiag/pkg/errors"
	"github.com/pentagongym/gymdiag/pkg/pipeline"
)

const (
	appName  = "gymdiag"
	fileName = "config.toml"
)

// Config is the decoded configuration file. Pointer fields distinguish
// "unset" from the zero value.
type Config struct {
	OutputDir string   `toml:"output_dir"`
	Formats   []string `toml:"formats"`
	DPI       float64  `toml:"dpi"`
	Timestamp *bool    `toml:"timestamp"`
	Engine    string   `toml:"engine"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// Decode parses a configuration from r. Unknown keys are rejected and the
// values are validated.
func Decode(r io.Reader) (*Config, error) {
	var c Config
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	for i, f := range c.Formats {
		c.Formats[i] = strings.ToLower(strings.TrimSpace(f))
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Load reads the configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open config %s", path)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	c.Path = path
	return c, nil
}

// LoadDefault reads the configuration from [DefaultPath]. A missing file
// yields an empty configuration.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return &Config{}, nil
	}
	c, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return &Config{}, nil
	}
	return c, err
}

// DefaultPath returns the XDG location of the configuration file
// (~/.config/gymdiag/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Validate checks every set value.
func (c *Config) Validate() error {
	if c.OutputDir != "" {
		if err := errors.ValidateOutputDir(c.OutputDir); err != nil {
			return err
		}
	}
	if err := pipeline.ValidateFormats(c.Formats); err != nil {
		return err
	}
	if c.Engine != "" {
		if err := pipeline.ValidateEngine(c.Engine); err != nil {
			return err
		}
	}
	if c.DPI < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "dpi must be positive, got %g", c.DPI)
	}
	return nil
}

// Options converts the configuration into pipeline options. Timestamps
// are on unless the file turns them off.
func (c *Config) Options() pipeline.Options {
	opts := pipeline.Options{
		OutputDir: c.OutputDir,
		Formats:   append([]string(nil), c.Formats...),
		DPI:       c.DPI,
		Engine:    c.Engine,
		Timestamp: true,
	}
	if c.Timestamp != nil {
		opts.Timestamp = *c.Timestamp
	}
	return opts
}
