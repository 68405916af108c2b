package render

import (
	"encoding/json"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kryptnostic/loom-api-go/internal/cmd/base"
)

const defs = `
principal "alice" {
  type = "user"
  id   = "alice"
}

fqn "person" {
  namespace = "general"
  name      = "person"
}
`

func newTestCommand(t *testing.T, files map[string]string) (*Command, *cli.MockUi) {
	t.Helper()
	t.Setenv("LOOM_LOG_LEVEL", "")
	t.Setenv("LOOM_STRICT", "")

	fs := afero.NewMemMapFs()
	for name, content := range files {
		require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))
	}

	ui := cli.NewMockUi()
	return &Command{
		Command: &base.Command{
			Log: hclog.NewNullLogger(),
			UI:  ui,
			Fs:  fs,
		},
	}, ui
}

func TestRun(t *testing.T) {
	c, ui := newTestCommand(t, map[string]string{"defs.hcl": defs})
	require.Equal(t, 0, c.Run([]string{"defs.hcl"}), ui.ErrorWriter.String())

	var out []struct {
		Kind  string                 `json:"kind"`
		Name  string                 `json:"name"`
		Value map[string]interface{} `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(ui.OutputWriter.String()), &out))
	require.Len(t, out, 2)

	assert.Equal(t, "principal", out[0].Kind)
	assert.Equal(t, "alice", out[0].Name)
	assert.Equal(t, map[string]interface{}{"type": "USER", "id": "alice"}, out[0].Value)

	assert.Equal(t, "fqn", out[1].Kind)
	assert.Equal(t, map[string]interface{}{"namespace": "general", "name": "person"}, out[1].Value)
}

func TestRun_Indent(t *testing.T) {
	c, ui := newTestCommand(t, map[string]string{
		"defs.hcl": defs,
		"loom.hcl": `indent = 4`,
	})
	require.Equal(t, 0, c.Run([]string{"-config", "loom.hcl", "defs.hcl"}))
	assert.Contains(t, ui.OutputWriter.String(), "\n    {")
}

func TestRun_Invalid(t *testing.T) {
	c, ui := newTestCommand(t, map[string]string{
		"defs.hcl": `principal "nobody" { type = "USER" }`,
	})
	assert.Equal(t, 1, c.Run([]string{"defs.hcl"}))
	assert.Empty(t, ui.OutputWriter.String())
	assert.Contains(t, ui.ErrorWriter.String(), `principal "nobody"`)
}

func TestRun_NoFiles(t *testing.T) {
	c, ui := newTestCommand(t, nil)
	assert.Equal(t, 1, c.Run(nil))
	assert.Contains(t, ui.ErrorWriter.String(), "at least one definitions file is required")
}
