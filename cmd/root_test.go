package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "elgen", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "scaffolds custom elements")
}

// stubRootCmd replaces rootCmd for the duration of the test.
func stubRootCmd(t *testing.T, run func() error) {
	t.Helper()

	original := rootCmd
	rootCmd = &cobra.Command{
		Use:  "elgen",
		RunE: func(*cobra.Command, []string) error { return run() },
	}
	rootCmd.SetArgs([]string{})
	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	t.Cleanup(func() { rootCmd = original })
}

func TestExecute_Succeeds(t *testing.T) {
	called := false
	stubRootCmd(t, func() error {
		called = true
		return nil
	})

	Execute()

	assert.True(t, called)
}

// TestExecute_ExitCode re-runs the test binary so os.Exit can be observed.
func TestExecute_ExitCode(t *testing.T) {
	const modeEnv = "ELGEN_TEST_EXECUTE_MODE"

	if mode := os.Getenv(modeEnv); mode != "" {
		stubRootCmd(t, func() error {
			if mode == "fail" {
				return errors.New("scaffold x-foo: directive not found")
			}

			fmt.Println("scaffolded x-foo")

			return nil
		})

		Execute()

		return
	}

	tests := []struct {
		mode     string
		wantCode int
		wantOut  string
	}{
		{"ok", 0, "scaffolded x-foo"},
		{"fail", 1, "directive not found"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			cmd := exec.Command(os.Args[0], "-test.run=^TestExecute_ExitCode$")
			cmd.Env = append(os.Environ(), modeEnv+"="+tt.mode)
			output, err := cmd.CombinedOutput()

			assert.Contains(t, string(output), tt.wantOut)

			if tt.wantCode == 0 {
				require.NoError(t, err, "output: %s", output)
				return
			}

			var exitErr *exec.ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, tt.wantCode, exitErr.ExitCode())
		})
	}
}

func TestRootCmd_LogsToDefaultFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	slog.Info("Scaffolding element", "element", "x-foo")

	contents, err := os.ReadFile(filepath.Join(dir, ".elgen.log"))
	require.NoError(t, err)
	assert.Contains(t, string(contents), "element=x-foo")
}

func TestRootCmd_LogFileFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())

	logPath := filepath.Join(t.TempDir(), "from-env.log")
	t.Setenv("ELGEN_LOG_FILENAME", logPath)
	t.Setenv("ELGEN_LOG_LEVEL", "debug")

	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	slog.Debug("Resolved paths", "element", "x-foo")

	contents, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "Resolved paths")
	assert.NoFileExists(t, ".elgen.log")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	flags := rootCmd.PersistentFlags()

	require.NotNil(t, flags.Lookup(logFileFlagName))
	require.NotNil(t, flags.Lookup(configFlagName))

	verbose := flags.Lookup(verboseFlagName)
	require.NotNil(t, verbose)
	assert.Equal(t, "v", verbose.Shorthand)
}

func TestRootCmd_RegistersCommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"el", "init", "version"})
}

func TestRootCmd_MissingConfigFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"--config", "does-not-exist.yaml"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does-not-exist.yaml")
}
