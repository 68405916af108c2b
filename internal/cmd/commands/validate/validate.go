package validate

import (
	"flag"
	"fmt"

	"github.com/kryptnostic/loom-api-go/internal/cmd/base"
	"github.com/kryptnostic/loom-api-go/pkg/definitions"
)

type Command struct {
	*base.Command

	flagConfig string
	flagStrict bool
}

func (c *Command) Synopsis() string {
	return "Validate model definition files"
}

func (c *Command) Help() string {
	return `Usage: loom validate [options] FILE...

  This command builds every model declared in the given HCL, YAML or JSON
  files and reports each definition that fails validation.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("validate", flag.ContinueOnError))

	f.StringVar(
		&c.flagConfig, "config", "", "Path to loom config file.",
	)
	f.BoolVar(
		&c.flagStrict, "strict", false,
		"Fail definitions that set fields their model does not declare.",
	)

	return f
}

func (c *Command) Run(args []string) int {
	ui := c.UI

	flags := c.Flags()
	if err := flags.Parse(args); err != nil {
		ui.Error(fmt.Sprintf("error parsing flags: %v", err))
		return 1
	}
	paths := flags.Args()
	if len(paths) == 0 {
		ui.Error("at least one definitions file is required")
		return 1
	}

	cfg, err := c.LoadConfig(c.flagConfig)
	if err != nil {
		ui.Error(fmt.Sprintf("error loading config: %v", err))
		return 1
	}

	loader := definitions.NewLoader(definitions.Options{
		Fs:     c.Fs,
		Logger: c.Log.Named("definitions"),
		Strict: cfg.Strict || c.flagStrict,
	})

	failed := false
	defs, err := loader.LoadFiles(paths...)
	if err != nil {
		c.ReportErrors(err)
		failed = true
	}

	built, err := loader.Build(defs)
	if err != nil {
		c.ReportErrors(err)
		failed = true
	}

	ui.Info(fmt.Sprintf("%d of %d definitions valid", len(built), len(defs)))
	if failed {
		return 1
	}
	return 0
}
