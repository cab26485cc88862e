// SPDX-License-Identifier: MIT

package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout, stderr and the
// error of Execute.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

// decode parses a JSON envelope and its data payload into data.
func decode(t *testing.T, out string, data interface{}) CLIResponse {
	t.Helper()
	var raw struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
		Error  *CLIError       `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &raw), "output: %s", out)
	if data != nil && len(raw.Data) > 0 {
		require.NoError(t, json.Unmarshal(raw.Data, data))
	}

	return CLIResponse{Status: raw.Status, Error: raw.Error}
}

func writeParams(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "cylmag", cmd.Use)
	assert.Contains(t, cmd.Long, "finite cylinder")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := [][]string{
		{"field"}, {"force"}, {"infinite"}, {"moment"}, {"outline"}, {"sweep"},
		{"runs"}, {"runs", "list"}, {"runs", "export"}, {"runs", "delete"},
	}

	for _, path := range commands {
		name := path[len(path)-1]
		t.Run(name, func(t *testing.T) {
			subCmd, _, err := cmd.Find(path)
			require.NoError(t, err, "Command %v should exist", path)
			require.NotNil(t, subCmd)
			assert.Equal(t, name, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	presetFlag := cmd.PersistentFlags().Lookup("preset")
	require.NotNil(t, presetFlag)
	assert.Equal(t, "base", presetFlag.DefValue)

	paramsFlag := cmd.PersistentFlags().Lookup("params")
	require.NotNil(t, paramsFlag)
	assert.Equal(t, "", paramsFlag.DefValue)
}

func TestSweepCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	sweepCmd, _, err := cmd.Find([]string{"sweep"})
	require.NoError(t, err)

	for flag, def := range map[string]string{
		"plane":      "xz",
		"u":          "-10:10:101",
		"v":          "-10:10:101",
		"quantity":   "force",
		"ceiling":    "0",
		"db":         "",
		"csv":        "",
		"png":        "",
		"no-outline": "false",
	} {
		f := sweepCmd.Flags().Lookup(flag)
		require.NotNil(t, f, "flag %s", flag)
		assert.Equal(t, def, f.DefValue, "flag %s", flag)
	}
	assert.Equal(t, "q", sweepCmd.Flags().Lookup("quantity").Shorthand)
}

// TestPointCommandHelp checks that the help text names what each command returns.
func TestPointCommandHelp(t *testing.T) {
	cmd := NewRootCommand()

	forceCmd, _, err := cmd.Find([]string{"force"})
	require.NoError(t, err)
	assert.Contains(t, forceCmd.Short, "drift velocity")
	assert.Contains(t, forceCmd.Long, "mobility·F")

	infiniteCmd, _, err := cmd.Find([]string{"infinite"})
	require.NoError(t, err)
	assert.Contains(t, infiniteCmd.Short, "force")
	assert.Contains(t, infiniteCmd.Long, "no mobility factor")

	for _, c := range []string{forceCmd.Short, forceCmd.Long, infiniteCmd.Short, infiniteCmd.Long} {
		assert.NotContains(t, c, "force factor")
	}
}

func TestInvalidFormat(t *testing.T) {
	_, _, err := execute(t, "field", "1", "2", "3", "--format", "yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.False(t, Reported(err))
}

func TestUnknownFlagIsCommandError(t *testing.T) {
	_, _, err := execute(t, "outline", "--bogus")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestUnknownPreset(t *testing.T) {
	out, _, err := execute(t, "field", "3", "0", "4", "--preset", "nope")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.True(t, Reported(err))
	assert.Contains(t, out, "Error [E001]")
	assert.Contains(t, out, "unknown preset")
}

func TestParamsFile(t *testing.T) {
	t.Run("applied over preset", func(t *testing.T) {
		path := writeParams(t, "x_position: 1\ny_position: 2\nz_position: 3\n")
		moved, _, err := execute(t, "field", "4", "2", "7", "--params", path)
		require.NoError(t, err)
		base, _, err := execute(t, "field", "3", "0", "4")
		require.NoError(t, err)

		// same relative point, so the same vector line
		assert.Equal(t, lastLine(base), lastLine(moved))
	})

	t.Run("unknown key", func(t *testing.T) {
		path := writeParams(t, "lenght: 4\n")
		out, _, err := execute(t, "field", "3", "0", "4", "--params", path, "--format", "json")
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
		resp := decode(t, out, nil)
		assert.Equal(t, "error", resp.Status)
		require.NotNil(t, resp.Error)
		assert.Equal(t, ErrCodeParams, resp.Error.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := execute(t, "field", "3", "0", "4", "--params", filepath.Join(t.TempDir(), "none.yaml"))
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})

	t.Run("invalid geometry", func(t *testing.T) {
		path := writeParams(t, "radius_magnet: -1\n")
		_, _, err := execute(t, "field", "3", "0", "4", "--params", path)
		require.Error(t, err)
		assert.Equal(t, ExitCommandError, GetExitCode(err))
	})
}

func TestVerboseGoesToStderr(t *testing.T) {
	out, errOut, err := execute(t, "field", "3", "0", "4", "-v", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, "ok", decode(t, out, nil).Status)
	assert.Contains(t, errOut, "field(3, 0, 4)")
}

func lastLine(s string) string {
	lines := bytes.Split(bytes.TrimSpace([]byte(s)), []byte("\n"))
	return string(lines[len(lines)-1])
}
