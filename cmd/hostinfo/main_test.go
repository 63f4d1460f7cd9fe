package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hostFixture(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"etc/os-release": "PRETTY_NAME=\"Test Linux 1.0\"\n",
		"proc/meminfo":   "MemTotal:       16000000 kB\nMemAvailable:    8000000 kB\n",
		"proc/loadavg":   "0.50 0.25 0.10 1/100 42\n",
		"proc/swaps":     "Filename\tType\tSize\tUsed\tPriority\n",
		"proc/mounts":    "",
	}
	for name, content := range files {
		p := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	}
	return root
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_LinuxReport(t *testing.T) {
	root := hostFixture(t)

	out, _, err := execute(t, "--config", "", "--pipeline", "linux", "--root", root)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "OS: Test Linux 1.0\n"), out)
	assert.Contains(t, out, "RAM: 7812MB free / 15625MB total\n")
	assert.Contains(t, out, "Load average: 0.50, 0.25, 0.10\n")
	assert.True(t, strings.HasSuffix(out, "Drives:\n  No drives found\n"), out)
}

func TestRoot_LogsStayOffStdout(t *testing.T) {
	root := hostFixture(t)

	out, errOut, err := execute(t, "--config", "", "--pipeline", "linux", "--root", root, "--log-level", "debug")
	require.NoError(t, err)

	assert.NotContains(t, out, "Collected")
	assert.Contains(t, errOut, "Starting hostinfo")
}

func TestRoot_LogFile(t *testing.T) {
	root := hostFixture(t)
	logPath := filepath.Join(t.TempDir(), "hostinfo.log")
	t.Setenv("HOSTINFO_LOG_FILE", logPath)

	_, _, err := execute(t, "--config", "", "--pipeline", "linux", "--root", root, "--log-level", "info")
	require.NoError(t, err)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"Starting hostinfo"`)
}

func TestRoot_UnknownPipeline(t *testing.T) {
	out, _, err := execute(t, "--config", "", "--pipeline", "beos")
	assert.ErrorContains(t, err, "unknown pipeline")
	assert.Empty(t, out)
}

func TestRoot_MissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to load config")
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "--config", "", "extra")
	assert.Error(t, err)
}

func TestRoot_Version(t *testing.T) {
	out, _, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, version)
}

func TestConfigWriteAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "config.yaml")

	out, _, err := execute(t, "--config", "", "--pipeline", "windows", "config", "write", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Config written to")

	out, _, err = execute(t, "--config", path, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "pipeline: windows")
	assert.Contains(t, out, "proc: /proc")
}
