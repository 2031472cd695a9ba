package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcherReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewind.toml")
	if err := os.WriteFile(path, []byte(`capacity = 10`), 0o644); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan Config, 1)
	w, err := Watch(path, func(cfg Config) {
		select {
		case reloaded <- cfg:
		default:
		}
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`capacity = 99`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case cfg := <-reloaded:
		if cfg.Capacity != 99 {
			t.Errorf("reloaded capacity = %d, want 99", cfg.Capacity)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}
}

func TestWatcherDebounceCollapsesWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewind.toml")
	if err := os.WriteFile(path, []byte(`capacity = 1`), 0o644); err != nil {
		t.Fatal(err)
	}

	reloads := make(chan Config, 16)
	w, err := Watch(path, func(cfg Config) {
		reloads <- cfg
	}, WithDebounce(150*time.Millisecond))
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	// Rapid writes within one debounce window.
	for i := 2; i <= 5; i++ {
		if err := os.WriteFile(path, []byte("capacity = 5"), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case cfg := <-reloads:
		if cfg.Capacity != 5 {
			t.Errorf("reloaded capacity = %d, want 5", cfg.Capacity)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload")
	}

	// The collapsed window should not produce a burst of callbacks.
	time.Sleep(300 * time.Millisecond)
	if extra := len(reloads); extra > 1 {
		t.Errorf("got %d extra reloads after debounce window", extra)
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rewind.toml")
	if err := os.WriteFile(path, []byte(`capacity = 10`), 0o644); err != nil {
		t.Fatal(err)
	}

	reloads := make(chan Config, 1)
	w, err := Watch(path, func(cfg Config) {
		reloads <- cfg
	}, WithDebounce(20*time.Millisecond))
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.toml"), []byte(`capacity = 1`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-reloads:
		t.Error("unrelated file change triggered a reload")
	case <-time.After(500 * time.Millisecond):
	}
}

func TestWatcherReloadErrorReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewind.toml")
	if err := os.WriteFile(path, []byte(`capacity = 10`), 0o644); err != nil {
		t.Fatal(err)
	}

	errs := make(chan error, 1)
	w, err := Watch(path, func(Config) {
		t.Error("reload callback fired for a broken config")
	}, WithDebounce(20*time.Millisecond), WithErrorHandler(func(err error) {
		select {
		case errs <- err:
		default:
		}
	}))
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte(`capacity = [broken`), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-errs:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for error callback")
	}
}

func TestWatcherCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rewind.toml")
	if err := os.WriteFile(path, []byte(`capacity = 10`), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := Watch(path, func(Config) {})
	if err != nil {
		t.Fatalf("Watch failed: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first close: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second close: %v", err)
	}
}
