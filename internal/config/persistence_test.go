// file: internal/config/persistence_test.go
// version: 2.0.0
// guid: 5f2e8a1c-4b6d-4e93-a0c7-d1b9e3f72a58

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "library.yaml")
	cfg := Config{
		StoragePath:   "/srv/library.json",
		BackupDir:     "/srv/backups",
		MaxBackups:    4,
		LogLevel:      "warn",
		WatchDebounce: time.Second,
	}

	require.NoError(t, SaveConfigToFile(path, cfg, false))

	loaded, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSaveConfigRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, SaveConfigToFile(path, Default(), false))

	err := SaveConfigToFile(path, Default(), false)
	assert.Error(t, err)

	assert.NoError(t, SaveConfigToFile(path, Default(), true))
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage_path: books.json\n"), 0644))

	cfg, err := LoadConfigFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "books.json", cfg.StoragePath)
	assert.Equal(t, DefaultBackupDir, cfg.BackupDir)
	assert.Equal(t, DefaultMaxBackups, cfg.MaxBackups)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfigFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_backups: [1, 2\n"), 0644))
	_, err = LoadConfigFromFile(path)
	assert.Error(t, err)
}

func TestMarshalUsesSnakeCaseKeys(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "storage_path: library.json")
	assert.Contains(t, string(data), "max_backups: 10")
}
