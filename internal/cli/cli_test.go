package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/flowreach/pkg/errors"
	"github.com/matzehuels/flowreach/pkg/flow"
)

const triangle = "3 4\n0 1 200\n1 2 350\n0 2 500\n1 2 600\n"

const detour = "4 4\n0 1 1\n0 2 10\n1 3 1\n3 2 1\n"

// run executes the root command with args and stdin, returning stdout,
// stderr, and the command error.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	c := New(strings.NewReader(stdin), &out, &errOut)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&errOut)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestReportText(t *testing.T) {
	out, _, err := run(t, triangle)
	require.NoError(t, err)

	want := "node 0: time 500, nodes 2\n" +
		"node 1: time 350, nodes 2\n" +
		"node 2: time 500, nodes 2\n"
	assert.Equal(t, want, out)
}

func TestReportEmptyGraph(t *testing.T) {
	out, _, err := run(t, "0 0\n")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestReportIsolatedNode(t *testing.T) {
	out, _, err := run(t, "2 0\n")
	require.NoError(t, err)
	assert.Equal(t, "node 0: time 0, nodes 0\nnode 1: time 0, nodes 0\n", out)
}

func TestReportMalformedInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  errors.Code
	}{
		{"too few edge lines", "3 2\n0 1 5\n", errors.ErrCodeInvalidInput},
		{"bad weight", "2 1\n0 1 x\n", errors.ErrCodeInvalidInput},
		{"endpoint out of range", "2 1\n0 2 5\n", errors.ErrCodeOutOfRange},
		{"empty input", "", errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetCode(err))
			assert.Empty(t, out, "no report lines on malformed input")
		})
	}
}

func TestReportJSON(t *testing.T) {
	out, _, err := run(t, triangle, "--format", "json")
	require.NoError(t, err)

	var doc struct {
		Nodes []struct {
			Node        int    `json:"node"`
			MaxDistance uint64 `json:"max_distance"`
			Reachable   int    `json:"reachable"`
		} `json:"nodes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Nodes, 3)
	assert.Equal(t, 1, doc.Nodes[1].Node)
	assert.Equal(t, uint64(350), doc.Nodes[1].MaxDistance)
	assert.Equal(t, 2, doc.Nodes[1].Reachable)
}

func TestReportModes(t *testing.T) {
	out, _, err := run(t, detour)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "node 0: time 10, nodes 3\n"), out)

	out, _, err = run(t, detour, "--mode", "shortest")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "node 0: time 3, nodes 3\n"), out)
}

func TestSetupResolvesMode(t *testing.T) {
	tests := []struct {
		args []string
		want flow.Mode
	}{
		{nil, flow.ModeFrontier},
		{[]string{"--mode", "shortest"}, flow.ModeShortest},
	}

	for _, tt := range tests {
		c := New(strings.NewReader(triangle), &bytes.Buffer{}, &bytes.Buffer{})
		root := c.RootCommand()
		root.SetArgs(tt.args)
		require.NoError(t, root.Execute())
		assert.Equal(t, tt.want, c.mode)
	}
}

func TestReportInvalidFlags(t *testing.T) {
	_, _, err := run(t, triangle, "--mode", "fastest")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidMode, errors.GetCode(err))

	_, _, err = run(t, triangle, "--format", "yaml")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidFormat, errors.GetCode(err))
}

func TestReportInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(triangle), 0644))

	out, _, err := run(t, "", "--input", path)
	require.NoError(t, err)
	assert.Contains(t, out, "node 1: time 350, nodes 2")
}

func TestReportOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	out, errOut, err := run(t, triangle, "-o", path, "--format", "json")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"max_distance": 500`)
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "flowreach.toml")
	require.NoError(t, os.WriteFile(path, []byte("[engine]\nmode = \"shortest\"\n\n[output]\nformat = \"json\"\n"), 0644))

	out, _, err := run(t, detour, "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"max_distance": 3`)

	// flags override the file
	out, _, err = run(t, detour, "--config", path, "--mode", "frontier", "--format", "text")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "node 0: time 10, nodes 3\n"), out)
}

func TestConfigFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[engine]\nmdoe = \"shortest\"\n"), 0644))

	_, _, err := run(t, triangle, "--config", path)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidConfig, errors.GetCode(err))
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := run(t, triangle, "-v")
	require.NoError(t, err)
	assert.NotContains(t, out, "computed report")
	assert.Contains(t, errOut, "computed report")
	assert.Contains(t, errOut, "read graph")
}

func TestRenderDOT(t *testing.T) {
	out, _, err := run(t, triangle, "render", "--format", "dot")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "graph G {"), out)
	assert.Contains(t, out, "0 -- 1")
	assert.Contains(t, out, "max 500")
}

func TestRenderDOTToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.dot")

	out, errOut, err := run(t, triangle, "render", "-o", path, "--no-weights")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graph G {")
	assert.NotContains(t, string(data), `label="200"`)
}

func TestRenderNoStatsKeepsSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.dot")

	_, errOut, err := run(t, triangle, "render", "-o", path, "--no-stats")
	require.NoError(t, err)
	assert.Contains(t, errOut, "node 0 (500)")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "max 500")
}

func TestServeRejectsNegativeLimits(t *testing.T) {
	for _, flag := range []string{"--max-nodes", "--max-edges", "--frontier-limit"} {
		t.Run(flag, func(t *testing.T) {
			_, _, err := run(t, "", "serve", flag+"=-1")
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeInvalidConfig, errors.GetCode(err))
		})
	}
}

func TestRenderInvalidFormat(t *testing.T) {
	_, _, err := run(t, triangle, "render", "--format", "gif")
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeInvalidFormat, errors.GetCode(err))
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, _, err := run(t, "", "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "flowreach")
		})
	}

	_, _, err := run(t, "", "completion", "tcsh")
	assert.Error(t, err)
}

func TestRejectsPositionalArgs(t *testing.T) {
	_, _, err := run(t, triangle, "graph.txt")
	assert.Error(t, err)
}

func TestPrintError(t *testing.T) {
	var errOut bytes.Buffer
	c := New(strings.NewReader(""), &bytes.Buffer{}, &errOut)

	c.PrintError(errors.New(errors.ErrCodeOutOfRange, "line 2: node 7 out of range"))
	assert.Contains(t, errOut.String(), "line 2: node 7 out of range")
	assert.Contains(t, errOut.String(), "OUT_OF_RANGE")
}
