// file: main_test.go
// version: 2.0.0
// guid: 9c3cc5d7-3d49-4e97-a0c1-9b2e38a9986f

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMainHelp(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	origArgs := os.Args
	defer func() {
		os.Args = origArgs
	}()

	os.Args = []string{
		"library",
		"--storage",
		filepath.Join(tempDir, "library.json"),
		"--help",
	}

	main()
}
