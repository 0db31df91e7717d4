// Package config holds application metadata and the small set of
// tunables the UI honors. An optional YAML file can override the
// defaults; everything works with the zero configuration.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	AppName        = "PDF Sig"
	AppVersion     = "0.1.0"
	AppID          = "com.wudi.pdfsig"
	AppDescription = "An app for adding signatures to PDFs. " +
		"Open a PDF, drop in your signature, save, BOOM!"

	TipURL = "https://www.buymeacoffee.com/pdfsig"
)

// Config is the set of user-tunable values.
type Config struct {
	// MaxSignatureWidth is the default width, in PDF points, of a
	// freshly placed signature.
	MaxSignatureWidth float64 `yaml:"max_signature_width"`
	// MinResizeWidth and MinResizeHeight are the smallest dimensions,
	// in PDF points, a placement can be resized to.
	MinResizeWidth  float64 `yaml:"min_resize_width"`
	MinResizeHeight float64 `yaml:"min_resize_height"`
	// RenderDebounceMS coalesces redraws during window resizes.
	RenderDebounceMS int `yaml:"render_debounce_ms"`
	// CanvasBackground is the canvas fill behind the page, as #rrggbb.
	CanvasBackground string `yaml:"canvas_background"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxSignatureWidth: 200,
		MinResizeWidth:    20,
		MinResizeHeight:   20,
		RenderDebounceMS:  120,
		CanvasBackground:  "#111111",
		LogLevel:          "info",
	}
}

// RenderDebounce returns the debounce window as a duration.
func (c Config) RenderDebounce() time.Duration {
	return time.Duration(c.RenderDebounceMS) * time.Millisecond
}

// Parse parses YAML configuration data over the defaults, so a partial
// file only overrides the keys it names.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse: %w", err)
	}
	return cfg, nil
}

// Load reads and parses the configuration file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOrDefault loads path when it is set and exists, and falls back to
// the defaults otherwise. A malformed file is still an error.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}
