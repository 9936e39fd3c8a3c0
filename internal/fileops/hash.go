// file: internal/fileops/hash.go
// version: 2.0.0
// guid: 0a1b2c3d-4e5f-6a7b-8c9d-0e1f2a3b4c5d

package fileops

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"

	"github.com/zeebo/xxh3"
)

// ComputeFileHash computes the SHA256 hash of a file
func ComputeFileHash(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", err
	}
	defer file.Close()

	return computeHash(file)
}

// computeHash computes the SHA256 hash of everything read from r
func computeHash(r io.Reader) (string, error) {
	hasher := sha256.New()
	if _, err := io.Copy(hasher, r); err != nil {
		return "", err
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// Fingerprint returns an xxh3 digest of a file's content. It is not
// collision resistant; use it only to notice that bytes changed.
func Fingerprint(filePath string) (uint64, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return 0, err
	}
	return xxh3.Hash(data), nil
}
