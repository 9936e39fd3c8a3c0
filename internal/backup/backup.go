// file: internal/backup/backup.go
// version: 2.0.0
// guid: 8f9e0a1b-2c3d-4e5f-6a7b-8c9d0e1f2a3b

package backup

import (
	"archive/tar"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/jdfalk/library-catalog/internal/fileops"
	"github.com/jdfalk/library-catalog/internal/storage"
	"github.com/klauspost/compress/gzip"
)

const (
	filePrefix      = "catalog_"
	fileSuffix      = ".tar.gz"
	timestampLayout = "20060102_150405.000"

	// maxCatalogSize bounds how much is read back from an archive.
	maxCatalogSize = 64 << 20
)

// ErrNoCatalog is returned by Restore when the archive holds no catalog file.
var ErrNoCatalog = errors.New("archive contains no catalog file")

// BackupInfo contains information about a backup
type BackupInfo struct {
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	Checksum  string    `json:"checksum"`
	CreatedAt time.Time `json:"created_at"`
}

// BackupConfig holds backup configuration
type BackupConfig struct {
	BackupDir        string
	MaxBackups       int // 0 keeps every backup
	CompressionLevel int
	Now              func() time.Time
}

// DefaultBackupConfig returns default backup configuration
func DefaultBackupConfig() BackupConfig {
	return BackupConfig{
		BackupDir:        "backups",
		MaxBackups:       10,
		CompressionLevel: gzip.BestCompression,
		Now:              time.Now,
	}
}

// CreateBackup writes a compressed snapshot of the catalog file and prunes
// old snapshots beyond MaxBackups.
func CreateBackup(storagePath string, config BackupConfig) (*BackupInfo, error) {
	if config.Now == nil {
		config.Now = time.Now
	}

	catalogInfo, err := os.Stat(storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog file: %w", err)
	}

	if err := os.MkdirAll(config.BackupDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	createdAt := config.Now()
	backupFilename := filePrefix + createdAt.Format(timestampLayout) + fileSuffix
	backupPath := filepath.Join(config.BackupDir, backupFilename)

	backupFile, err := os.OpenFile(backupPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create backup file: %w", err)
	}

	if err := writeArchive(backupFile, storagePath, catalogInfo, config.CompressionLevel); err != nil {
		backupFile.Close()
		os.Remove(backupPath)
		return nil, err
	}
	if err := backupFile.Close(); err != nil {
		os.Remove(backupPath)
		return nil, fmt.Errorf("failed to close backup file: %w", err)
	}

	fileInfo, err := os.Stat(backupPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat backup file: %w", err)
	}
	checksum, err := fileops.ComputeFileHash(backupPath)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate checksum: %w", err)
	}

	info := &BackupInfo{
		Filename:  backupFilename,
		Path:      backupPath,
		Size:      fileInfo.Size(),
		Checksum:  checksum,
		CreatedAt: createdAt,
	}

	if err := cleanupOldBackups(config.BackupDir, config.MaxBackups); err != nil {
		return info, fmt.Errorf("backup created but pruning failed: %w", err)
	}

	return info, nil
}

func writeArchive(w io.Writer, storagePath string, info os.FileInfo, level int) error {
	if level == 0 {
		level = gzip.DefaultCompression
	}
	gzipWriter, err := gzip.NewWriterLevel(w, level)
	if err != nil {
		return fmt.Errorf("failed to create gzip writer: %w", err)
	}
	tarWriter := tar.NewWriter(gzipWriter)

	header, err := tar.FileInfoHeader(info, "")
	if err != nil {
		return fmt.Errorf("failed to build tar header: %w", err)
	}
	header.Name = filepath.Base(storagePath)

	if err := tarWriter.WriteHeader(header); err != nil {
		return fmt.Errorf("failed to write tar header: %w", err)
	}

	file, err := os.Open(storagePath)
	if err != nil {
		return fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(tarWriter, file); err != nil {
		return fmt.Errorf("failed to archive catalog file: %w", err)
	}

	if err := tarWriter.Close(); err != nil {
		return fmt.Errorf("failed to close tar writer: %w", err)
	}
	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("failed to close gzip writer: %w", err)
	}
	return nil
}

// RestoreBackup replaces the catalog file with the one stored in archivePath.
// The archived catalog must decode; a bad archive leaves the current file
// untouched.
func RestoreBackup(archivePath, storagePath string) error {
	backupFile, err := os.Open(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open backup file: %w", err)
	}
	defer backupFile.Close()

	gzipReader, err := gzip.NewReader(backupFile)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	tarReader := tar.NewReader(gzipReader)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			return ErrNoCatalog
		}
		if err != nil {
			return fmt.Errorf("failed to read tar header: %w", err)
		}
		if header.Typeflag != tar.TypeReg {
			continue
		}

		data, err := io.ReadAll(io.LimitReader(tarReader, maxCatalogSize))
		if err != nil {
			return fmt.Errorf("failed to read %s from archive: %w", header.Name, err)
		}
		if _, err := storage.Decode(data); err != nil {
			return fmt.Errorf("backup %s: %w", filepath.Base(archivePath), err)
		}
		return fileops.WriteFileAtomic(storagePath, data, storage.FilePerm)
	}
}

// ListBackups lists all available backups, newest first
func ListBackups(backupDir string) ([]BackupInfo, error) {
	var backups []BackupInfo

	entries, err := os.ReadDir(backupDir)
	if err != nil {
		if os.IsNotExist(err) {
			return backups, nil // No backups directory yet
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, filePrefix) || !strings.HasSuffix(name, fileSuffix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		backupPath := filepath.Join(backupDir, name)
		checksum, _ := fileops.ComputeFileHash(backupPath)

		createdAt := info.ModTime()
		stamp := strings.TrimSuffix(strings.TrimPrefix(name, filePrefix), fileSuffix)
		if t, err := time.ParseInLocation(timestampLayout, stamp, time.Local); err == nil {
			createdAt = t
		}

		backups = append(backups, BackupInfo{
			Filename:  name,
			Path:      backupPath,
			Size:      info.Size(),
			Checksum:  checksum,
			CreatedAt: createdAt,
		})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].CreatedAt.After(backups[j].CreatedAt)
	})
	return backups, nil
}

// cleanupOldBackups removes old backups exceeding the maximum count
func cleanupOldBackups(backupDir string, maxBackups int) error {
	if maxBackups <= 0 {
		return nil
	}

	backups, err := ListBackups(backupDir)
	if err != nil {
		return err
	}
	if len(backups) <= maxBackups {
		return nil
	}

	var errs []error
	for _, b := range backups[maxBackups:] {
		if err := os.Remove(b.Path); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete old backup %s: %w", b.Filename, err))
		}
	}
	return errors.Join(errs...)
}
