package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/rewind"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rewind.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Capacity != rewind.DefaultCapacity {
		t.Errorf("capacity = %d, want %d", cfg.Capacity, rewind.DefaultCapacity)
	}
	if cfg.Mode != "compatible" {
		t.Errorf("mode = %q, want compatible", cfg.Mode)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
capacity = 50
mode = "strict"

[demo]
initial = "hello"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Capacity != 50 {
		t.Errorf("capacity = %d, want 50", cfg.Capacity)
	}
	if cfg.Mode != "strict" {
		t.Errorf("mode = %q, want strict", cfg.Mode)
	}
	if cfg.Demo.Initial != "hello" {
		t.Errorf("demo.initial = %q, want hello", cfg.Demo.Initial)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("missing file should not be an error: %v", err)
	}
	if cfg.Capacity != rewind.DefaultCapacity {
		t.Error("missing file should yield defaults")
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, `capacity = 7`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Capacity != 7 {
		t.Errorf("capacity = %d, want 7", cfg.Capacity)
	}
	// Unspecified fields keep their defaults.
	if cfg.Mode != "compatible" {
		t.Errorf("mode = %q, want compatible default", cfg.Mode)
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := writeConfig(t, `capacity = [not toml`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "parse error") {
		t.Errorf("err = %v, want parse error", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"negative capacity", `capacity = -1`},
		{"unknown mode", `mode = "branching"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestStoreOptions(t *testing.T) {
	cfg := Config{Capacity: 3, Mode: "strict"}

	store := rewind.New("base", cfg.StoreOptions()...)

	if store.Capacity() != 3 {
		t.Errorf("capacity = %d, want 3", store.Capacity())
	}
	if store.Mode() != rewind.ModeStrict {
		t.Errorf("mode = %v, want strict", store.Mode())
	}
}
