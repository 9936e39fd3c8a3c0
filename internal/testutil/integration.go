// file: internal/testutil/integration.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jdfalk/library-catalog/internal/config"
	"github.com/jdfalk/library-catalog/internal/models"
	"github.com/jdfalk/library-catalog/internal/storage"
	"github.com/stretchr/testify/require"
)

// CatalogEnv holds the files of a catalog under test.
type CatalogEnv struct {
	StoragePath string
	BackupDir   string
	TempDir     string
	T           *testing.T
}

// SetupCatalog writes books to a fresh storage file in a temp directory and
// points config.AppConfig at it. The previous config is restored when the
// test ends.
func SetupCatalog(t *testing.T, books ...models.Book) *CatalogEnv {
	t.Helper()

	tmpBase := t.TempDir()
	env := &CatalogEnv{
		StoragePath: filepath.Join(tmpBase, "library.json"),
		BackupDir:   filepath.Join(tmpBase, "backups"),
		TempDir:     tmpBase,
		T:           t,
	}
	require.NoError(t, storage.Save(env.StoragePath, books))

	origConfig := config.AppConfig
	t.Cleanup(func() {
		config.AppConfig = origConfig
	})

	cfg := config.Default()
	cfg.StoragePath = env.StoragePath
	cfg.BackupDir = env.BackupDir
	config.AppConfig = cfg

	return env
}

// Books reads the storage file back.
func (e *CatalogEnv) Books() []models.Book {
	e.T.Helper()
	return LoadCatalog(e.T, e.StoragePath)
}

// SeedCatalog writes books to a new storage file and returns its path.
func SeedCatalog(t *testing.T, books ...models.Book) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "library.json")
	require.NoError(t, storage.Save(path, books))
	return path
}

// LoadCatalog reads the storage file at path, failing the test on error.
func LoadCatalog(t *testing.T, path string) []models.Book {
	t.Helper()
	books, err := storage.Load(path)
	require.NoError(t, err)
	return books
}

// ReadFile returns the raw bytes at path.
func ReadFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
