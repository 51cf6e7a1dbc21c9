package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"lifegrid/internal/core"
)

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := []byte(`{"width": 80, "height": 40, "density": 0.3}`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	if err := cfg.Load(path); err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 80 || cfg.Height != 40 || cfg.Density != 0.3 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	// Keys absent from the file keep their defaults.
	if cfg.TPS != 10 || cfg.Scale != 3 || cfg.Seed != 42 {
		t.Fatalf("defaults clobbered: %+v", cfg)
	}
}

func TestLoadFailures(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := cfg.Load(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}

	cfg.Width = 0
	if err := cfg.Validate(); !errors.Is(err, core.ErrInvalidDimension) {
		t.Fatalf("expected ErrInvalidDimension, got %v", err)
	}

	cfg = NewConfig()
	cfg.Scale = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for zero scale")
	}

	cfg = NewConfig()
	cfg.Density = 1.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected an error for density above 1")
	}
}
