package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rlaau/sortlab/internal/config"
)

func TestDemo(t *testing.T) {
	for _, algo := range config.Algorithms() {
		t.Run(algo, func(t *testing.T) {
			var out bytes.Buffer
			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetArgs([]string{"demo", "-a", algo, "--", "2", "3", "-1", "5", "10", "-4"})
			require.NoError(t, cmd.Execute())
			require.Equal(t, "[-4 -1 2 3 5 10]\n", out.String())
		})
	}
}

func TestDemo_BadInput(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"demo", "1", "x"})
	require.Error(t, cmd.Execute())
}

func TestRunAndReport(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "sortbench.toml")
	body := `
[bench]
sizes = [50, 300]
runs = 1
file-threshold = 300

[store]
backend = "pebble"
path = "` + filepath.ToSlash(filepath.Join(dir, "store")) + `"

[output]
markdown = "` + filepath.ToSlash(filepath.Join(dir, "out.md")) + `"
json = "` + filepath.ToSlash(filepath.Join(dir, "out.json")) + `"

[log]
level = "error"
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"run", "--config", cfgPath, "--session", "t1"})
	require.NoError(t, cmd.Execute())

	md, err := os.ReadFile(filepath.Join(dir, "out.md"))
	require.NoError(t, err)
	require.Contains(t, string(md), "parallel_quicksort")

	var out bytes.Buffer
	cmd = newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"report", "--config", cfgPath, "--list"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, "t1\n", out.String())

	require.NoError(t, os.Remove(filepath.Join(dir, "out.md")))
	cmd = newRootCmd()
	cmd.SetArgs([]string{"report", "--config", cfgPath, "--session", "t1"})
	require.NoError(t, cmd.Execute())
	_, err = os.Stat(filepath.Join(dir, "out.md"))
	require.NoError(t, err)

	cmd = newRootCmd()
	cmd.SetArgs([]string{"report", "--config", cfgPath, "--session", "missing"})
	require.Error(t, cmd.Execute())
}
