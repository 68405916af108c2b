package version

import (
	"fmt"

	"github.com/kryptnostic/loom-api-go/internal/cmd/base"
	"github.com/kryptnostic/loom-api-go/internal/version"
)

type Command struct {
	*base.Command
}

func (c *Command) Synopsis() string {
	return "Print the loom version"
}

func (c *Command) Help() string {
	return `Usage: loom version

  This command prints the loom version.`
}

func (c *Command) Run(args []string) int {
	c.UI.Output(fmt.Sprintf("loom v%s", version.Version))
	return 0
}
