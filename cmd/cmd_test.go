package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reqcheck/internal/bootstrap"
	"reqcheck/internal/platform"
	"reqcheck/internal/python"
	"reqcheck/internal/runner"
)

func quiet(t *testing.T) *bytes.Buffer {
	t.Helper()
	stderr := new(bytes.Buffer)
	prevOut, prevErr, prevNoColor := color.Output, color.Error, color.NoColor
	color.Output, color.Error, color.NoColor = new(bytes.Buffer), stderr, true
	t.Cleanup(func() {
		color.Output, color.Error, color.NoColor = prevOut, prevErr, prevNoColor
	})
	return stderr
}

func versionToolchain(banner string) (*python.Toolchain, *runner.Recorder) {
	rec := runner.NewRecorder()
	rec.Outputs["python3 --version"] = banner
	return python.New("", platform.Linux, rec), rec
}

func TestCheckVersionSatisfied(t *testing.T) {
	quiet(t)
	tc, _ := versionToolchain("Python 3.11.4")
	assert.Equal(t, bootstrap.ExitReady, checkVersion(tc, ">= 3.8"))
}

func TestCheckVersionTooOld(t *testing.T) {
	stderr := quiet(t)
	tc, _ := versionToolchain("Python 3.6.9")
	assert.Equal(t, bootstrap.ExitFatal, checkVersion(tc, ">= 3.8"))
	assert.Contains(t, stderr.String(), "does not satisfy")
}

func TestCheckVersionMissingInterpreter(t *testing.T) {
	quiet(t)
	tc, rec := versionToolchain("")
	rec.Fail(runner.Cmd("python3", "--version"))
	assert.Equal(t, bootstrap.ExitFatal, checkVersion(tc, ">= 3.8"))
}

func TestCheckVersionBadConstraint(t *testing.T) {
	quiet(t)
	tc, rec := versionToolchain("Python 3.11.4")
	assert.Equal(t, bootstrap.ExitFatal, checkVersion(tc, "not a constraint"))
	assert.Empty(t, rec.Calls)
}

func TestExecuteMissingExplicitConfig(t *testing.T) {
	stderr := quiet(t)
	rootCmd.SetArgs([]string{"ensure", "--config", filepath.Join(t.TempDir(), "missing.yaml")})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.Equal(t, bootstrap.ExitFatal, Execute())
	assert.Contains(t, stderr.String(), "failed to read")
}

func TestExecuteUnknownFlag(t *testing.T) {
	quiet(t)
	rootCmd.SetArgs([]string{"--no-such-flag"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.Equal(t, bootstrap.ExitFatal, Execute())
}

func TestLoadConfigPythonFlagWins(t *testing.T) {
	quiet(t)
	path := filepath.Join(t.TempDir(), "reqcheck.yaml")
	require.NoError(t, os.WriteFile(path, []byte("python: python3.9\n"), 0644))

	rootCmd.SetArgs([]string{"check-version", "--config", path, "--python", "reqcheck-no-such-python", "--min", ">= 3.0"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	// The flag points at a binary that does not exist, so the version query fails.
	assert.Equal(t, bootstrap.ExitFatal, Execute())
}
