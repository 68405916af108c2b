// Package config holds the loom CLI configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
)

const (
	// EnvLogLevel overrides the configured log level.
	EnvLogLevel = "LOOM_LOG_LEVEL"

	// EnvStrict overrides the configured strict mode.
	EnvStrict = "LOOM_STRICT"

	defaultLogLevel = "info"
	defaultIndent   = 2
)

var logLevels = []interface{}{"trace", "debug", "info", "warn", "error", "off"}

// Config is the loom CLI configuration, read from an HCL file:
//
//	log_level = "debug"
//	strict    = true
//	indent    = 4
type Config struct {
	// LogLevel is one of trace, debug, info, warn, error or off.
	LogLevel string `hcl:"log_level,optional"`

	// Strict rejects definition fields a model does not declare.
	Strict bool `hcl:"strict,optional"`

	// Indent is the number of spaces used when rendering JSON.
	Indent int `hcl:"indent,optional"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: defaultLogLevel,
		Indent:   defaultIndent,
	}
}

// LoadFile decodes the HCL configuration file at path. Unset attributes keep
// their defaults.
func LoadFile(fs afero.Fs, path string) (*Config, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := &Config{}
	if err := hclsimple.Decode(path, src, nil, cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	cfg.applyDefaults()

	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.Indent == 0 {
		c.Indent = defaultIndent
	}
}

// ApplyEnv overrides configuration values from the environment.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	if v, ok := lookup(EnvStrict); ok && v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvStrict, v, err)
		}
		c.Strict = strict
	}
	return nil
}

// Validate validates the configuration.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.LogLevel, validation.Required, validation.In(logLevels...)),
		validation.Field(&c.Indent, validation.Min(0), validation.Max(8)),
	)
}
