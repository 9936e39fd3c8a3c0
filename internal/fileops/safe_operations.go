// file: internal/fileops/safe_operations.go
// version: 2.0.0
// guid: 37ed32bc-8f2f-49f8-a368-43069ce057e8

package fileops

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// quarantineSuffix is appended, together with a timestamp, to files moved
// aside by Quarantine.
const quarantineSuffix = ".corrupt-"

// WriteFileAtomic replaces path with data. The bytes are written to a temp
// file in the same directory, synced, and renamed over the target so a crash
// leaves either the old or the new content, never a truncated file. An
// existing target keeps its permission bits; perm applies to new files.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	// Best effort removal if anything below fails before the rename.
	committed := false
	defer func() {
		if !committed {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	committed = true

	return nil
}

// Quarantine moves an unreadable file aside so a subsequent rewrite does not
// destroy it. An earlier quarantined copy with the same timestamp is never
// replaced; a numeric suffix is added instead. It returns the new location. A missing file is not an error
// and yields an empty path.
func Quarantine(path string, now time.Time) (string, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to stat %s: %w", path, err)
	}

	base := path + quarantineSuffix + now.Format("20060102_150405.000000000")
	target := base
	for n := 1; ; n++ {
		if _, err := os.Lstat(target); os.IsNotExist(err) {
			break
		} else if err != nil {
			return "", fmt.Errorf("failed to stat %s: %w", target, err)
		}
		target = fmt.Sprintf("%s-%d", base, n)
	}
	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("failed to quarantine %s: %w", path, err)
	}
	return target, nil
}
