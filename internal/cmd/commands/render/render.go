package render

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"github.com/kryptnostic/loom-api-go/internal/cmd/base"
	"github.com/kryptnostic/loom-api-go/pkg/definitions"
)

type Command struct {
	*base.Command

	flagConfig string
	flagStrict bool
}

// renderedModel is one element of the rendered output.
type renderedModel struct {
	Kind  string          `json:"kind"`
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

func (c *Command) Synopsis() string {
	return "Render model definitions as JSON"
}

func (c *Command) Help() string {
	return `Usage: loom render [options] FILE...

  This command builds every model declared in the given files and prints
  them as a JSON array of {kind, name, value} objects. Nothing is printed
  if any definition fails validation.` +
		c.Flags().Help()
}

func (c *Command) Flags() *base.FlagSet {
	f := base.NewFlagSet(
		flag.NewFlagSet("render", flag.ContinueOnError))

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

	defs, err := loader.LoadFiles(paths...)
	if err != nil {
		c.ReportErrors(err)
		return 1
	}
	built, err := loader.Build(defs)
	if err != nil {
		c.ReportErrors(err)
		return 1
	}

	out := make([]renderedModel, 0, len(built))
	for _, b := range built {
		value, err := json.Marshal(b.Model)
		if err != nil {
			ui.Error(fmt.Sprintf("error rendering %s %q: %v", b.Kind, b.Name, err))
			return 1
		}
		out = append(out, renderedModel{
			Kind:  b.Model.Kind(),
			Name:  b.Name,
			Value: value,
		})
	}

	rendered, err := json.MarshalIndent(out, "", strings.Repeat(" ", cfg.Indent))
	if err != nil {
		ui.Error(fmt.Sprintf("error rendering models: %v", err))
		return 1
	}
	ui.Output(string(rendered))

	return 0
}
