package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config specifies the driver's run parameters, independent of the
// generator program graph itself.
type Config struct {
	// Seed is the master RNG seed. Use 0 to auto-generate from the
	// current time.
	Seed int64 `yaml:"seed" json:"seed"`

	// Size is the map's width and height in cells.
	Size SizeCfg `yaml:"size" json:"size"`

	// Render controls output formatting.
	Render RenderCfg `yaml:"render" json:"render"`

	// MetricsAddr, if non-empty, serves Prometheus metrics on this
	// address for the duration of generation.
	MetricsAddr string `yaml:"metricsAddr,omitempty" json:"metricsAddr,omitempty"`
}

// SizeCfg specifies the generated map's dimensions.
type SizeCfg struct {
	Width  int `yaml:"width" json:"width"`
	Height int `yaml:"height" json:"height"`
}

// RenderFormat names an output renderer.
type RenderFormat string

const (
	RenderASCII       RenderFormat = "ascii"
	RenderHTML        RenderFormat = "html"
	RenderSVG         RenderFormat = "svg"
	RenderTMJ         RenderFormat = "tmj"
	RenderInteractive RenderFormat = "interactive"
)

// ValidRenderFormats lists every accepted RenderCfg.Format value.
var ValidRenderFormats = []RenderFormat{RenderASCII, RenderHTML, RenderSVG, RenderTMJ, RenderInteractive}

// RenderCfg controls how the generated map is rendered.
type RenderCfg struct {
	// Format selects the renderer.
	Format RenderFormat `yaml:"format" json:"format"`

	// GlyphsPath points at a glyph table mapping tokens to display
	// characters/colors, in the priority order they appear in the file.
	// Empty uses the renderer's built-in default glyph table.
	GlyphsPath string `yaml:"glyphsPath,omitempty" json:"glyphsPath,omitempty"`

	// OutputPath is where rendered output is written. Empty means
	// stdout; ignored by RenderInteractive.
	OutputPath string `yaml:"outputPath,omitempty" json:"outputPath,omitempty"`
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses and validates YAML configuration from memory.
func LoadFromBytes(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	return &cfg, nil
}

// Validate checks all configuration constraints.
func (c *Config) Validate() error {
	if err := c.Size.Validate(); err != nil {
		return fmt.Errorf("size: %w", err)
	}
	if err := c.Render.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Validate checks SizeCfg constraints.
func (s *SizeCfg) Validate() error {
	if s.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", s.Width)
	}
	if s.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", s.Height)
	}
	return nil
}

// Validate checks RenderCfg constraints.
func (r *RenderCfg) Validate() error {
	if r.Format == "" {
		return errors.New("format must not be empty")
	}
	for _, f := range ValidRenderFormats {
		if r.Format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid render format %q, must be one of %v", r.Format, ValidRenderFormats)
}

// ToYAML serializes the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}
