package commands

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cterrors "github.com/thoreinstein/cctarget/internal/errors"
	"github.com/thoreinstein/cctarget/internal/paths"
	"github.com/thoreinstein/cctarget/internal/target"
)

// run executes cctarget in an isolated config directory and returns the
// exit code, stdout and stderr.
func run(t *testing.T, configYAML string, args ...string) (int, string, string) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dir)
	for _, key := range []string{debugEnv, "CCTARGET_LOG_LEVEL", "CCTARGET_LOG_FILE", "CCTARGET_COLOR", "NO_COLOR"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	if configYAML != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, paths.ConfigFileName), []byte(configYAML), 0o600))
	}

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	code := Execute(args)
	return code, stdout.String(), stderr.String()
}

// fieldValue returns the text after "label: " on the report line for label.
func fieldValue(t *testing.T, out, label string) string {
	t.Helper()
	var found []string
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		if v, ok := strings.CutPrefix(sc.Text(), label+": "); ok {
			found = append(found, v)
		}
	}
	require.Len(t, found, 1, "expected exactly one %q line in:\n%s", label, out)
	return found[0]
}

func TestExecute_NoArguments(t *testing.T) {
	code, out, _ := run(t, "")

	assert.Equal(t, cterrors.ExitSuccess, code)
	assert.True(t, strings.HasPrefix(out, "CCTARGET - Cross-Compilation Target Demonstrator\n"))
	assert.Contains(t, out, "Compilation Target Information:\n")
	assert.NotContains(t, out, "Arguments passed")
	assert.NotContains(t, out, "\x1b[", "no color when stdout is not a terminal")
}

func TestExecute_OSLine(t *testing.T) {
	_, out, _ := run(t, "")

	got := fieldValue(t, out, "Operating System")
	labels := 0
	for _, p := range target.Platforms() {
		if got == p.String() {
			labels++
		}
	}
	assert.Equal(t, 1, labels, "OS line %q", got)
}

func TestExecute_ArchitectureLine(t *testing.T) {
	_, out, _ := run(t, "")

	got := fieldValue(t, out, "Architecture")
	labels := 0
	for _, a := range target.Architectures() {
		if got == a.Display() {
			labels++
		}
	}
	assert.Equal(t, 1, labels, "architecture line %q", got)
}

func TestExecute_PointerSize(t *testing.T) {
	_, out, _ := run(t, "")

	got := fieldValue(t, out, "Pointer Size")
	assert.Contains(t, []string{"4 bytes", "8 bytes"}, got)
}

func TestExecute_Toolchain(t *testing.T) {
	_, out, _ := run(t, "")

	assert.Equal(t, runtime.Compiler+" "+runtime.Version(), fieldValue(t, out, "Go Toolchain"))
	assert.NotEmpty(t, fieldValue(t, out, "Compiler"))
}

func TestExecute_EchoesArguments(t *testing.T) {
	code, out, _ := run(t, "", "foo", "bar")

	assert.Equal(t, 0, code)
	assert.True(t, strings.HasSuffix(out, "\nArguments passed:\n  [1]: foo\n  [2]: bar\n"), "got:\n%s", out)
}

func TestExecute_EveryTokenIsData(t *testing.T) {
	tests := [][]string{
		{"--help"},
		{"-h"},
		{"help"},
		{"version"},
		{"--version"},
		{"completion", "bash"},
		{"-v", "--unknown-flag=1", "--"},
		{"--", "x"},
		{"__complete"},
		{"__complete", "foo"},
		{"__completeNoDesc", "x"},
		{"__completeNoDesc", ""},
	}
	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			code, out, _ := run(t, "", args...)

			assert.Equal(t, 0, code)
			assert.Contains(t, out, "Compilation Target Information:")
			assert.NotContains(t, out, "Usage:")
			for i, arg := range args {
				assert.Contains(t, out, "  ["+strconv.Itoa(i+1)+"]: "+arg+"\n")
			}
			assert.NotContains(t, out, "  ["+strconv.Itoa(len(args)+1)+"]:", "no extra arguments echoed")
		})
	}
}

func TestExecute_InvalidConfigStillReports(t *testing.T) {
	code, out, errOut := run(t, "version: 7\n", "x")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "  [1]: x\n")
	assert.Contains(t, errOut, "ignoring configuration")
}

func TestExecute_ConfigDoesNotChangeReport(t *testing.T) {
	_, plain, _ := run(t, "", "a")
	_, configured, _ := run(t, "version: 1\ncolor: never\nlog:\n  level: error\n  format: json\n", "a")

	assert.Equal(t, plain, configured)
}

func TestExecute_DebugLogsToStderr(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(paths.ConfigDirEnv, dir)
	t.Setenv(debugEnv, "2")

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	code := Execute([]string{"ghp_supersecret"})

	assert.Equal(t, 0, code)
	assert.Contains(t, stderr.String(), "resolved build target")
	assert.Contains(t, stderr.String(), "TRACE")
	assert.Contains(t, stderr.String(), "arg=****cret")
	assert.NotContains(t, stdout.String(), "resolved build target")
	assert.Contains(t, stdout.String(), "  [1]: ghp_supersecret\n", "the report echoes verbatim")
}

func TestExecute_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "cctarget.log")
	code, _, _ := run(t, "version: 1\nlog:\n  level: debug\n  file: "+logPath+"\n")

	require.Equal(t, 0, code)
	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.NotEmpty(t, lines)
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "starting", entry["msg"])
	assert.Nil(t, logFile, "log file closed after Execute")
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("stdout closed")
}

func TestExecute_UnwritableStdout(t *testing.T) {
	t.Setenv(paths.ConfigDirEnv, t.TempDir())

	var stderr bytes.Buffer
	rootCmd.SetOut(brokenWriter{})
	rootCmd.SetErr(&stderr)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	code := Execute(nil)

	assert.Equal(t, cterrors.ExitSystem, code)
	assert.Contains(t, stderr.String(), "stdout closed")
	assert.Contains(t, stderr.String(), "check that stdout is writable")
}

func TestExecute_FailureBeforeLoggingSetup(t *testing.T) {
	t.Setenv(paths.ConfigDirEnv, t.TempDir())

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	preRun := rootCmd.PersistentPreRunE
	rootCmd.PersistentPreRunE = func(*cobra.Command, []string) error {
		return cterrors.NewUserError(errors.New("setup exploded"), "try again")
	}
	t.Cleanup(func() {
		rootCmd.PersistentPreRunE = preRun
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	code := Execute([]string{"a"})

	assert.Equal(t, cterrors.ExitUser, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "cctarget failed")
	assert.Contains(t, stderr.String(), "setup exploded")
	assert.Contains(t, stderr.String(), "try again")
}

func TestExecute_InvalidConfigSuggestion(t *testing.T) {
	_, _, errOut := run(t, "log:\n  format: xml\n")

	assert.Contains(t, errOut, "ignoring configuration")
	assert.Contains(t, errOut, "config.yaml")
}
