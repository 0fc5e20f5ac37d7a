package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration value is out of range
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the settings of a render run
type Config struct {
	Scene      string `yaml:"scene"`
	Width      int    `yaml:"width"`       // Image width in pixels
	Samples    int    `yaml:"samples"`     // Samples per pixel
	Depth      int    `yaml:"depth"`       // Maximum bounces per path
	Workers    int    `yaml:"workers"`     // Parallel render workers
	Seed       int64  `yaml:"seed"`        // Base random seed
	BandHeight int    `yaml:"band_height"` // Rows per scheduled band
	OutputDir  string `yaml:"output_dir"`
	TextureDir string `yaml:"texture_dir"` // Directory holding image textures such as earthmap.jpg
}

// Default returns the configuration used when no file or flag overrides a value
func Default() Config {
	return Config{
		Scene:      "random-spheres",
		Width:      400,
		Samples:    10,
		Depth:      10,
		Workers:    runtime.NumCPU(),
		Seed:       42,
		BandHeight: 8,
		OutputDir:  "renders",
		TextureDir: "assets",
	}
}

// Load reads a YAML file on top of the defaults and validates the result
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, leaving fields absent from data unchanged.
// Unknown keys are rejected.
func Parse(data []byte, cfg *Config) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	// An empty document decodes as io.EOF and keeps every default
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks that every value can drive a render
func (c Config) Validate() error {
	switch {
	case c.Scene == "":
		return fmt.Errorf("%w: scene must be set", ErrInvalidConfig)
	case c.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidConfig, c.Width)
	case c.Samples <= 0:
		return fmt.Errorf("%w: samples must be positive, got %d", ErrInvalidConfig, c.Samples)
	case c.Depth <= 0:
		return fmt.Errorf("%w: depth must be positive, got %d", ErrInvalidConfig, c.Depth)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidConfig, c.Workers)
	case c.BandHeight < 0:
		return fmt.Errorf("%w: band height must not be negative, got %d", ErrInvalidConfig, c.BandHeight)
	}
	return nil
}

// Marshal encodes the configuration as YAML
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
