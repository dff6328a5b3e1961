// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hypervolume/frontfile"
	"github.com/katalvlaran/hypervolume/internal/cli"
	"github.com/katalvlaran/hypervolume/internal/runner"
)

const twoFronts = `#
1 3
2 2
3 1
#
0.5 0.5
#
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	return executeWithInput(t, "", args...)
}

func executeWithInput(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

// hvLines keeps the "hv(i) = ..." lines, dropping timings.
func hvLines(out string) []string {
	var lines []string
	for _, l := range strings.Split(out, "\n") {
		if strings.HasPrefix(l, "hv(") {
			lines = append(lines, l)
		}
	}

	return lines
}

// TestCompute_DefaultOrigin prints one line per front.
func TestCompute_DefaultOrigin(t *testing.T) {
	out, err := execute(t, writeFile(t, "f.dat", twoFronts))
	require.NoError(t, err)
	assert.Equal(t, []string{"hv(1) = 6.0000000000", "hv(2) = 0.2500000000"}, hvLines(out))
	assert.Contains(t, out, "Time: ")
}

// TestCompute_PositionalReference overrides the origin.
func TestCompute_PositionalReference(t *testing.T) {
	out, err := execute(t, writeFile(t, "f.dat", "1 3\n2 2\n3 1\n"), "1", "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"hv(1) = 1.0000000000"}, hvLines(out))
}

// TestCompute_ReferenceLength reports the expected length.
func TestCompute_ReferenceLength(t *testing.T) {
	_, err := execute(t, "--reference", "0,0,0", writeFile(t, "f.dat", twoFronts))
	require.Error(t, err)
	assert.ErrorIs(t, err, runner.ErrReference)
	assert.Contains(t, err.Error(), "should have 2 values")
}

// TestCompute_FlagsAndEnv combines minimize, strategy from env, columns
// and the YAML report.
func TestCompute_FlagsAndEnv(t *testing.T) {
	t.Setenv("WFG_STRATEGY", "plain")
	path := writeFile(t, "f.csv", "9,1,3\n9,2,2\n9,3,1\n")
	out, err := execute(t,
		"--minimize", "--delimiter", ",", "--columns", "1,2",
		"--format", "yaml", "--contributions", "--jobs", "2",
		path, "4", "4")
	require.NoError(t, err)

	var rep runner.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "plain", rep.Strategy)
	assert.Equal(t, "minimize", rep.Sense)
	assert.Equal(t, []float64{4, 4}, rep.Reference)
	require.Len(t, rep.Fronts, 1)
	// Boxes to (4,4): 3x1, 2x2, 1x3 staircase → 9 - 3 = 6.
	assert.InDelta(t, 6.0, rep.Fronts[0].Hypervolume, 1e-12)
	assert.InDeltaSlice(t, []float64{1, 1, 1}, rep.Fronts[0].Contributions, 1e-12)
	assert.NotEmpty(t, rep.RunID)
}

// TestCompute_ConfigFile reads settings from YAML.
func TestCompute_ConfigFile(t *testing.T) {
	cfg := writeFile(t, "wfg.yaml", "strategy: sliced\nreference: [1, 1]\nformat: yaml\n")
	out, err := execute(t, "--config", cfg, writeFile(t, "f.dat", "1 3\n2 2\n3 1\n"))
	require.NoError(t, err)

	var rep runner.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "sliced", rep.Strategy)
	assert.InDelta(t, 1.0, rep.Fronts[0].Hypervolume, 1e-12)

	_, err = execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "f.dat")
	assert.Error(t, err)
}

// TestCompute_BadSettings rejects unknown values.
func TestCompute_BadSettings(t *testing.T) {
	path := writeFile(t, "f.dat", twoFronts)
	for _, args := range [][]string{
		{"--strategy", "quantum", path},
		{"--format", "xml", path},
		{"--jobs", "0", path},
		{"--log-level", "loud", path},
		{"--columns", "x", path},
		{path, "one", "two"},
		{filepath.Join(t.TempDir(), "missing.dat")},
	} {
		_, err := execute(t, args...)
		assert.Error(t, err, "%v", args)
	}
	_, err := execute(t)
	assert.Error(t, err)
}

// TestCompute_StdinAndOutput reads "-" and writes the report to --output.
func TestCompute_StdinAndOutput(t *testing.T) {
	out, err := executeWithInput(t, twoFronts, "-")
	require.NoError(t, err)
	assert.Equal(t, []string{"hv(1) = 6.0000000000", "hv(2) = 0.2500000000"}, hvLines(out))

	report := filepath.Join(t.TempDir(), "hv.txt")
	out, err = executeWithInput(t, twoFronts, "--output", report, "-")
	require.NoError(t, err)
	assert.Empty(t, out)
	written, err := os.ReadFile(report)
	require.NoError(t, err)
	assert.Equal(t, []string{"hv(1) = 6.0000000000", "hv(2) = 0.2500000000"}, hvLines(string(written)))

	_, err = executeWithInput(t, "1 x\n", "-")
	assert.ErrorIs(t, err, frontfile.ErrSyntax)
	_, err = executeWithInput(t, twoFronts, "--output", filepath.Join(t.TempDir(), "no", "such", "dir"), "-")
	assert.Error(t, err)
}

// TestCompute_Tabs splits on tab characters.
func TestCompute_Tabs(t *testing.T) {
	out, err := execute(t, "--tabs", writeFile(t, "f.tsv", "1\t3\n2\t2\n3\t1\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"hv(1) = 6.0000000000"}, hvLines(out))

	_, err = execute(t, "--tabs", "--delimiter", ",", writeFile(t, "f.tsv", "1\t3\n"))
	assert.Error(t, err)
}

// TestCompute_MaximizeColumns maximizes column 0 and minimizes column 1.
func TestCompute_MaximizeColumns(t *testing.T) {
	path := writeFile(t, "f.dat", "1 3\n2 2\n3 1\n")
	// (3,1) dominates: box [0,3]×[1,4].
	out, err := execute(t, "--maximize", "0", "--format", "yaml", path, "0", "4")
	require.NoError(t, err)
	var rep runner.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	assert.Equal(t, "mixed", rep.Sense)
	assert.Equal(t, []int{0}, rep.Maximize)
	assert.Equal(t, []float64{0, 4}, rep.Reference)
	assert.InDelta(t, 9.0, rep.Fronts[0].Hypervolume, 1e-12)

	// --columns swaps the objectives; --maximize still names input column 0.
	out, err = execute(t, "--columns", "1,0", "--maximize", "0", path, "4", "0")
	require.NoError(t, err)
	assert.Equal(t, []string{"hv(1) = 9.0000000000"}, hvLines(out))

	// --maximize-all is the default sense.
	out, err = execute(t, "--maximize-all", path)
	require.NoError(t, err)
	assert.Equal(t, []string{"hv(1) = 6.0000000000"}, hvLines(out))

	for _, args := range [][]string{
		{"--maximize", "2", path},
		{"--columns", "1", "--maximize", "0", path},
		{"--maximize", "0", "--maximize-all", path},
		{"--minimize", "--maximize-all", path},
	} {
		_, err := execute(t, args...)
		assert.Error(t, err, "%v", args)
	}
	_, err = execute(t, "--maximize", "2", path)
	assert.ErrorIs(t, err, runner.ErrMaximize)
}

// TestGenerate_RoundTrip writes compressed fronts and computes them.
func TestGenerate_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sphere.dat.zst")
	out, err := execute(t, "generate", "--fronts", "3", "--points", "20", "--objectives", "4", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 3 fronts")

	fronts, err := frontfile.Open(path)
	require.NoError(t, err)
	require.Len(t, fronts, 3)
	for _, f := range fronts {
		assert.Equal(t, 20, f.Len())
		assert.Equal(t, 4, f.Objectives())
	}

	out, err = execute(t, "--jobs", "3", path)
	require.NoError(t, err)
	assert.Len(t, hvLines(out), 3)

	for _, shape := range []string{"linear", "random"} {
		_, err = execute(t, "generate", "--shape", shape, filepath.Join(t.TempDir(), shape+".dat"))
		assert.NoError(t, err, shape)
	}
	_, err = execute(t, "generate", "--shape", "cube", path)
	assert.Error(t, err)
	_, err = execute(t, "generate", "--points", "0", path)
	assert.Error(t, err)
}

// TestVersion prints build information.
func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "wfg dev\n"))
}
