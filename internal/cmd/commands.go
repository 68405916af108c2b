package cmd

import (
	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"

	"github.com/kryptnostic/loom-api-go/internal/cmd/base"
	"github.com/kryptnostic/loom-api-go/internal/cmd/commands/render"
	"github.com/kryptnostic/loom-api-go/internal/cmd/commands/validate"
	"github.com/kryptnostic/loom-api-go/internal/cmd/commands/version"
)

// Commands is the mapping of all available loom commands.
var Commands map[string]cli.CommandFactory

func initCommands(log hclog.Logger, ui cli.Ui) {
	b := &base.Command{
		Log: log,
		UI:  ui,
		Fs:  afero.NewOsFs(),
	}

	Commands = map[string]cli.CommandFactory{
		"render": func() (cli.Command, error) {
			return &render.Command{Command: b}, nil
		},
		"validate": func() (cli.Command, error) {
			return &validate.Command{Command: b}, nil
		},
		"version": func() (cli.Command, error) {
			return &version.Command{Command: b}, nil
		},
	}
}
