// Package base holds what every loom subcommand shares.
package base

import (
	"errors"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/kryptnostic/loom-api-go/internal/config"
)

// Command is embedded by every subcommand.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// Fs is where config and definition files are read from.
	Fs afero.Fs
}

// LoadConfig reads the config file at path, or the defaults when path is
// empty, applies environment overrides and sets the log level.
func (c *Command) LoadConfig(path string) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path != "" {
		var err error
		if cfg, err = config.LoadFile(c.Fs, path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c.Log.SetLevel(hclog.LevelFromString(cfg.LogLevel))
	return cfg, nil
}

// ReportErrors writes each error aggregated in err on its own line.
func (c *Command) ReportErrors(err error) {
	var merr *multierror.Error
	if errors.As(err, &merr) {
		for _, e := range merr.Errors {
			c.UI.Error(e.Error())
		}
		return
	}
	c.UI.Error(err.Error())
}
