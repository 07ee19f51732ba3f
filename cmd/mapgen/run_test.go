package main

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/dshills/mapgen/pkg/config"
)

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("config", "", "")
	fs.Int64("seed", 0, "")
	fs.Int("width", 0, "")
	fs.Int("height", 0, "")
	fs.String("format", "", "")
	fs.String("glyphs", "", "")
	fs.String("output", "", "")
	fs.String("metrics-addr", "", "")
	fs.Bool("verbose", false, "")
	return fs
}

func TestLoadConfigDefaultsWithoutConfigFlag(t *testing.T) {
	fs := testFlags()
	cfg, err := loadConfig(fs)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Size.Width != 80 || cfg.Size.Height != 40 {
		t.Fatalf("expected default 80x40 size, got %dx%d", cfg.Size.Width, cfg.Size.Height)
	}
	if cfg.Render.Format != config.RenderASCII {
		t.Fatalf("expected default ascii format, got %q", cfg.Render.Format)
	}
}

func TestApplyOverridesLayersFlagsOverConfig(t *testing.T) {
	fs := testFlags()
	fs.Set("seed", "42")
	fs.Set("width", "100")
	fs.Set("format", "svg")

	cfg := &config.Config{Size: config.SizeCfg{Width: 10, Height: 10}, Render: config.RenderCfg{Format: config.RenderASCII}}
	applyOverrides(cfg, fs)

	if cfg.Seed != 42 {
		t.Fatalf("expected seed override 42, got %d", cfg.Seed)
	}
	if cfg.Size.Width != 100 {
		t.Fatalf("expected width override 100, got %d", cfg.Size.Width)
	}
	if cfg.Size.Height != 10 {
		t.Fatalf("expected height to remain 10, got %d", cfg.Size.Height)
	}
	if cfg.Render.Format != config.RenderSVG {
		t.Fatalf("expected format override svg, got %q", cfg.Render.Format)
	}
}

func TestApplyOverridesAutoSeedsWhenUnset(t *testing.T) {
	fs := testFlags()
	cfg := &config.Config{Render: config.RenderCfg{Format: config.RenderASCII}}
	applyOverrides(cfg, fs)
	if cfg.Seed == 0 {
		t.Fatalf("expected auto-seeded non-zero seed")
	}
}
