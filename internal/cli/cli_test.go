package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the command tree with args and returns stdout and log output.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&logs)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), logs.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLDS_BothMethods(t *testing.T) {
	out, logs, err := run(t, "lds", "--size", "10", "--seed", "3", "--max-element", "20")
	require.NoError(t, err)

	assert.Contains(t, out, "sequence: [")
	assert.Contains(t, out, "dp length: ")
	assert.Contains(t, out, "bruteforce length: ")
	assert.Contains(t, logs, "run_id=")
	assert.Contains(t, logs, "command=lds")
}

func TestLDS_SkipsBruteForceAboveLimit(t *testing.T) {
	out, logs, err := run(t, "lds", "-n", "30", "--brute-force-limit", "5")
	require.NoError(t, err)

	assert.Contains(t, out, "dp length: ")
	assert.NotContains(t, out, "bruteforce")
	assert.Contains(t, logs, "brute force skipped")
}

func TestLDS_InvalidMaxElement(t *testing.T) {
	_, _, err := run(t, "lds", "--max-element=-1")
	assert.Error(t, err)
}

func TestCrossing_GridFile(t *testing.T) {
	path := writeFile(t, "marsh.txt", "..X\n...\n.X.\n")
	out, _, err := run(t, "crossing", "--grid-file", path)
	require.NoError(t, err)

	assert.Contains(t, out, "..X\n...\n.X.\n")
	assert.Contains(t, out, "dp paths: 2 ")
	assert.Contains(t, out, "bruteforce paths: 2 ")
}

func TestCrossing_RandomGrid(t *testing.T) {
	out, _, err := run(t, "crossing", "-r", "5", "-k", "6", "--thicket-percent", "25", "--seed", "11")
	require.NoError(t, err)
	assert.Contains(t, out, "dp paths: ")
	assert.Contains(t, out, "bruteforce paths: ")
}

func TestCrossing_LimitAboveWordWidth(t *testing.T) {
	out, logs, err := run(t, "crossing", "-r", "33", "-k", "33", "--thicket-percent", "0", "--brute-force-limit", "100")
	require.NoError(t, err)

	assert.Contains(t, out, "dp paths: 1832624140942590534 ", "C(64,32)")
	assert.NotContains(t, out, "bruteforce")
	assert.Contains(t, logs, "brute force skipped")
}

func TestCrossing_BadGridFile(t *testing.T) {
	path := writeFile(t, "bad.txt", "..?\n")
	_, _, err := run(t, "crossing", "-f", path)
	assert.Error(t, err)

	_, _, err = run(t, "crossing", "-f", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	cfg := writeFile(t, "dpkit.yaml", `
logging:
  level: debug
  format: json
crossing:
  rows: 2
  columns: 2
  thicket_percent: 0
`)
	out, logs, err := run(t, "--config", cfg, "crossing")
	require.NoError(t, err)

	assert.Contains(t, out, "..\n..\n")
	assert.Contains(t, out, "dp paths: 2 ")
	assert.Contains(t, logs, `"run_id":`)
	assert.Contains(t, logs, "configuration loaded")
}

func TestConfigFile_Invalid(t *testing.T) {
	cfg := writeFile(t, "dpkit.yaml", "crossing:\n  rows: 0\n")
	_, _, err := run(t, "--config", cfg, "crossing")
	assert.Error(t, err)

	_, _, err = run(t, "--log-level", "loud", "version")
	assert.Error(t, err)
}

func TestLogLevelOverride(t *testing.T) {
	_, logs, err := run(t, "--log-level", "error", "lds", "-n", "5")
	require.NoError(t, err)
	assert.Empty(t, logs)
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dpkit dev\n", out)
}
