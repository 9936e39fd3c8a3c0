// file: internal/watcher/watcher_test.go
// version: 2.0.0
// guid: a1b2c3d4-e5f6-7890-abcd-ef1234567890

package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jdfalk/library-catalog/internal/fileops"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDebounceSingleEvent(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "library.json")

	var calls atomic.Int32
	var gotPath atomic.Value
	w := New(func(path string) {
		gotPath.Store(path)
		calls.Add(1)
	}, 100*time.Millisecond, nil)

	if err := w.Start(target); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(target, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	// Wait for debounce + buffer.
	time.Sleep(400 * time.Millisecond)

	if c := calls.Load(); c != 1 {
		t.Errorf("expected 1 callback, got %d", c)
	}
	if p, _ := gotPath.Load().(string); p != target {
		t.Errorf("expected callback path %s, got %s", target, p)
	}
}

func TestAtomicRewriteIsDetected(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "library.json")
	if err := os.WriteFile(target, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	var calls atomic.Int32
	w := New(func(string) { calls.Add(1) }, 100*time.Millisecond, nil)
	if err := w.Start(target); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	for i := 0; i < 3; i++ {
		if err := fileops.WriteFileAtomic(target, []byte("[ ]"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	time.Sleep(400 * time.Millisecond)

	if c := calls.Load(); c != 1 {
		t.Errorf("expected rewrites to collapse into 1 callback, got %d", c)
	}
}

func TestStopWaitsForRunningCallback(t *testing.T) {
	target := filepath.Join(t.TempDir(), "library.json")

	started := make(chan struct{})
	var once sync.Once
	var finished atomic.Bool
	w := New(func(string) {
		once.Do(func() { close(started) })
		time.Sleep(200 * time.Millisecond)
		finished.Store(true)
	}, 20*time.Millisecond, nil)
	if err := w.Start(target); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(target, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		w.Stop()
		t.Fatal("callback never ran")
	}

	w.Stop()
	if !finished.Load() {
		t.Error("Stop returned while the callback was still running")
	}
}

func TestOtherFilesIgnored(t *testing.T) {
	dir := t.TempDir()

	var calls atomic.Int32
	w := New(func(string) { calls.Add(1) }, 50*time.Millisecond, nil)
	if err := w.Start(filepath.Join(dir, "library.json")); err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(200 * time.Millisecond)

	if c := calls.Load(); c != 0 {
		t.Errorf("expected no callbacks, got %d", c)
	}
}

func TestStartMissingDirectory(t *testing.T) {
	w := New(nil, 0, nil)
	if err := w.Start(filepath.Join(t.TempDir(), "missing", "library.json")); err == nil {
		w.Stop()
		t.Fatal("expected error watching a missing directory")
	}
}

func TestStopIdempotent(t *testing.T) {
	w := New(nil, 0, nil)
	if err := w.Start(filepath.Join(t.TempDir(), "library.json")); err != nil {
		t.Fatal(err)
	}
	w.Stop()
	w.Stop()
}

func TestNewDefaultDebounce(t *testing.T) {
	w := New(nil, 0, nil)
	if w.debounce != DefaultDebounce {
		t.Errorf("expected %v, got %v", DefaultDebounce, w.debounce)
	}
}
