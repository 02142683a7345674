package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/tempus/payload"
)

const goldenYAML = `edges:
  - {source: 1, target: 2, interval: [10, 20]}
  - {source: 2, target: 3, interval: [30, 40]}
  - {source: 4, target: 3, interval: [10, 20]}
  - {source: 4, target: 5, interval: [40, 50]}
  - {source: 1, target: 5, interval: [60, 70]}
`

const infeasibleHCL = `
edge {
  source   = 1
  target   = 2
  interval = [10, 20]
}
edge {
  source   = 2
  target   = 3
  interval = [10, 20]
}
edge {
  source   = 1
  target   = 3
  interval = [0, 5]
}
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func execute(args ...string) (code int, stdout, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)

	return code, out.String(), errOut.String()
}

func TestSolve_JSON(t *testing.T) {
	path := writeFile(t, "plan.yaml", goldenYAML)

	code, stdout, stderr := execute("solve", path, "--output", "json")
	require.Equal(t, 0, code, stderr)

	var res payload.Result
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Len(t, res.Rows, 25)
	assert.Contains(t, res.Rows, payload.Row{From: 1, To: 3, Distance: 50})
	assert.Contains(t, res.Rows, payload.Row{From: 5, To: 4, Distance: -40})
}

func TestSolve_YAML(t *testing.T) {
	path := writeFile(t, "plan.yml", goldenYAML)

	code, stdout, stderr := execute("solve", "-o", "yaml", path)
	require.Equal(t, 0, code, stderr)

	var res payload.Result
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &res))
	assert.Len(t, res.Rows, 25)
	assert.Contains(t, res.Rows, payload.Row{From: 3, To: 1, Distance: -40})
}

func TestSolve_Table(t *testing.T) {
	path := writeFile(t, "plan.yaml", goldenYAML)

	code, stdout, stderr := execute("solve", path)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "FROM")
	assert.Contains(t, stdout, "DISTANCE")
	assert.Contains(t, stdout, "-60")
	assert.Equal(t, 25+4, strings.Count(stdout, "\n"))
}

func TestSolve_Infeasible(t *testing.T) {
	path := writeFile(t, "plan.hcl", infeasibleHCL)

	code, stdout, stderr := execute("solve", path)
	assert.Equal(t, exitInfeasible, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "stn: negative cycle found on time point")
}

func TestSolve_BadInput(t *testing.T) {
	inverted := writeFile(t, "plan.json", `{"edges": [{"source": 1, "target": 2, "interval": [5, 1]}]}`)
	code, _, stderr := execute("solve", inverted)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "payload: malformed input")

	unknown := writeFile(t, "plan.toml", "")
	code, _, stderr = execute("solve", unknown)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "payload: unknown format")

	ok := writeFile(t, "plan.yaml", goldenYAML)
	code, _, stderr = execute("solve", ok, "--output", "xml")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "invalid --output")

	code, _, _ = execute("solve")
	assert.Equal(t, exitUsage, code)
}

func TestCheck(t *testing.T) {
	code, stdout, _ := execute("check", writeFile(t, "ok.yaml", goldenYAML))
	assert.Equal(t, 0, code)
	assert.Equal(t, "consistent\n", stdout)

	code, stdout, stderr := execute("check", writeFile(t, "bad.hcl", infeasibleHCL))
	assert.Equal(t, exitInfeasible, code)
	assert.True(t, strings.HasPrefix(stdout, "inconsistent: stn: negative cycle found on time point "), stdout)
	assert.NotContains(t, stderr, "inconsistent")
}

func TestBounds(t *testing.T) {
	path := writeFile(t, "plan.yaml", goldenYAML)

	code, stdout, stderr := execute("bounds", path, "1", "3")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "[40, 50]\n", stdout)

	code, _, stderr = execute("bounds", path, "1", "99")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "time point 99")

	code, _, stderr = execute("bounds", path, "x", "3")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `invalid time point "x"`)
}

func TestBounds_Unconnected(t *testing.T) {
	path := writeFile(t, "plan.json",
		`{"edges": [{"source": 1, "target": 2, "interval": [1, 2]}, {"source": 3, "target": 4, "interval": [1, 2]}]}`)

	code, stdout, stderr := execute("bounds", path, "1", "4")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "[-Inf, +Inf]\n", stdout)
}

func TestLogging_JSONWithRunID(t *testing.T) {
	path := writeFile(t, "plan.yaml", goldenYAML)

	code, _, stderr := execute("--log-level", "info", "--log-format", "json", "check", path)
	require.Equal(t, 0, code, stderr)

	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	require.NotEmpty(t, lines)
	runIDs := map[string]bool{}
	for _, line := range lines {
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec), line)
		id, ok := rec["run_id"].(string)
		require.True(t, ok, line)
		runIDs[id] = true
	}
	assert.Len(t, runIDs, 1)
}

func TestLogging_BadFlags(t *testing.T) {
	path := writeFile(t, "plan.yaml", goldenYAML)

	code, _, stderr := execute("--log-format", "xml", "check", path)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "invalid --log-format")

	code, _, stderr = execute("--log-level", "loud", "check", path)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "invalid --log-level")
}

func TestMetricsFile(t *testing.T) {
	path := writeFile(t, "plan.hcl", infeasibleHCL)
	metricsPath := filepath.Join(t.TempDir(), "tempus.prom")

	code, _, _ := execute("--metrics-file", metricsPath, "check", path)
	assert.Equal(t, exitInfeasible, code)

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `tempus_propagations_total{result="negative_cycle"} 1`)
	assert.Contains(t, string(data), "tempus_time_points 3")
}

func TestRenderTable_Styled(t *testing.T) {
	res := &payload.Result{Rows: []payload.Row{{From: 1, To: 2, Distance: 20}}}

	plain := renderTable(res, false)
	styled := renderTable(res, true)
	assert.Contains(t, plain, "20")
	assert.Contains(t, styled, "20")
	assert.Contains(t, styled, "FROM")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestCheck_ReportsWriteErrors(t *testing.T) {
	var errOut bytes.Buffer
	code := run([]string{"check", writeFile(t, "ok.yaml", goldenYAML)}, failingWriter{}, &errOut)
	assert.NotEqual(t, 0, code)
	assert.Contains(t, errOut.String(), "stdout closed")

	errOut.Reset()
	code = run([]string{"check", writeFile(t, "bad.hcl", infeasibleHCL)}, failingWriter{}, &errOut)
	assert.Equal(t, exitInfeasible, code)
	assert.Contains(t, errOut.String(), "stdout closed")
}
