package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.MaxSignatureWidth != 200 {
		t.Errorf("MaxSignatureWidth = %v, want 200", cfg.MaxSignatureWidth)
	}
	if cfg.MinResizeWidth != 20 || cfg.MinResizeHeight != 20 {
		t.Errorf("min resize dims = %v x %v, want 20 x 20", cfg.MinResizeWidth, cfg.MinResizeHeight)
	}
	if cfg.RenderDebounce() != 120*time.Millisecond {
		t.Errorf("RenderDebounce = %v, want 120ms", cfg.RenderDebounce())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("max_signature_width: 150\nrender_debounce_ms: 60\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.MaxSignatureWidth != 150 {
		t.Errorf("MaxSignatureWidth = %v, want 150", cfg.MaxSignatureWidth)
	}
	if cfg.RenderDebounce() != 60*time.Millisecond {
		t.Errorf("RenderDebounce = %v, want 60ms", cfg.RenderDebounce())
	}
	// Keys the file does not name keep their defaults.
	if cfg.MinResizeWidth != 20 {
		t.Errorf("MinResizeWidth = %v, want default 20", cfg.MinResizeWidth)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want default info", cfg.LogLevel)
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse([]byte("max_signature_width: [not a number")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault("")
	if err != nil {
		t.Fatalf("LoadOrDefault(\"\"): %v", err)
	}
	if cfg != Default() {
		t.Error("empty path should yield defaults")
	}

	cfg, err = LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault(missing): %v", err)
	}
	if cfg != Default() {
		t.Error("missing file should yield defaults")
	}

	path := filepath.Join(t.TempDir(), "pdfsig.yaml")
	if err := os.WriteFile(path, []byte("log_level: debug\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault(existing): %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}

	if err := os.WriteFile(path, []byte("{ unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(path); err == nil {
		t.Fatal("malformed existing file should be an error")
	}
}
