// file: cmd/root_test.go
// version: 2.0.0
// guid: 7eae8d0c-7fda-4f45-8f73-5d1e0c7c9f1a

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jdfalk/library-catalog/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags puts every flag in the tree back to its default so one
// execution cannot leak into the next.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

// executeCommand runs the root command with args and returns what it wrote
// to stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())
	viper.Reset()
	resetFlags(rootCmd)

	origConfig := config.AppConfig
	t.Cleanup(func() {
		config.AppConfig = origConfig
		viper.Reset()
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestInitConfigDefaults(t *testing.T) {
	_, _, err := executeCommand(t, "", "list")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultStoragePath, config.AppConfig.StoragePath)
	assert.Equal(t, config.DefaultBackupDir, config.AppConfig.BackupDir)
	assert.Equal(t, config.DefaultMaxBackups, config.AppConfig.MaxBackups)
	assert.Equal(t, config.DefaultLogLevel, config.AppConfig.LogLevel)
}

func TestFlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	storage := filepath.Join(dir, "books.json")

	_, _, err := executeCommand(t, "", "--storage", storage, "--max-backups", "3", "--log-level", "WARN", "list")
	require.NoError(t, err)

	assert.Equal(t, storage, config.AppConfig.StoragePath)
	assert.Equal(t, 3, config.AppConfig.MaxBackups)
	assert.Equal(t, "warn", config.AppConfig.LogLevel)
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	storage := filepath.Join(dir, "env.json")
	t.Setenv("LIBRARY_STORAGE_PATH", storage)

	_, _, err := executeCommand(t, "", "list")
	require.NoError(t, err)
	assert.Equal(t, storage, config.AppConfig.StoragePath)
}

func TestConfigFileIsRead(t *testing.T) {
	dir := t.TempDir()
	storage := filepath.Join(dir, "from-file.json")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage_path: "+storage+"\nmax_backups: 4\n"), 0644))

	_, _, err := executeCommand(t, "", "--config", cfgPath, "list")
	require.NoError(t, err)
	assert.Equal(t, storage, config.AppConfig.StoragePath)
	assert.Equal(t, 4, config.AppConfig.MaxBackups)
}

func TestMissingExplicitConfigFails(t *testing.T) {
	_, _, err := executeCommand(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestInvalidLogLevelFails(t *testing.T) {
	_, _, err := executeCommand(t, "", "--storage", filepath.Join(t.TempDir(), "l.json"), "--log-level", "loud", "list")
	require.Error(t, err)
}

func TestRootRunsShell(t *testing.T) {
	storage := filepath.Join(t.TempDir(), "library.json")

	stdout, _, err := executeCommand(t, "4\n6\n", "--storage", storage)
	require.NoError(t, err)
	assert.Contains(t, stdout, "The library is empty.")
	assert.Contains(t, stdout, "Goodbye.")
}
