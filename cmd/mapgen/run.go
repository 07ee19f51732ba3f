package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/mapgen/pkg/config"
	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/metrics"
	"github.com/dshills/mapgen/pkg/pathfind"
	"github.com/dshills/mapgen/pkg/program"
	"github.com/dshills/mapgen/pkg/render"
	"github.com/dshills/mapgen/pkg/rng"
	"github.com/dshills/mapgen/pkg/token"
	"github.com/dshills/mapgen/pkg/validate"
)

func runGenerate(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	verbose, _ := flags.GetBool("verbose")

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().Level(level)

	cfg, err := loadConfig(flags)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyOverrides(cfg, flags)

	logger.Info().Int64("seed", cfg.Seed).Int("width", cfg.Size.Width).Int("height", cfg.Size.Height).
		Str("format", string(cfg.Render.Format)).Msg("starting generation")

	var m *metrics.Metrics
	if cfg.MetricsAddr != "" {
		m = metrics.New(nil)
		go func() {
			logger.Info().Str("addr", cfg.MetricsAddr).Msg("serving metrics")
			if err := metrics.Serve(cfg.MetricsAddr); err != nil {
				logger.Error().Err(err).Msg("metrics server stopped")
			}
		}()
	}

	progPath := args[0]
	logger.Debug().Str("path", progPath).Msg("loading program")
	prog, err := program.Load(progPath)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}

	tokMap := token.NewMap(cfg.Size.Width, cfg.Size.Height)
	canvas := token.NewCanvas(tokMap)
	bounds := grid.NewRect(grid.Vec2{X: 0, Y: 0}, cfg.Size.Width, cfg.Size.Height)
	pctx := pathfind.NewContext(bounds)
	pctx.Metrics = m
	pctx.Logger = &logger
	r := rng.New(cfg.Seed)

	start := time.Now()
	ok := prog.Root.Eval(canvas, r, pctx)
	elapsed := time.Since(start)
	if !ok {
		return fmt.Errorf("generation failed after %s: the generator tree could not satisfy its constraints", elapsed)
	}
	logger.Info().Dur("elapsed", elapsed).Msg("generation complete")

	if err := runValidation(flags, tokMap, logger); err != nil {
		return err
	}

	return renderOutput(cfg, tokMap)
}

// runValidation runs pkg/validate's connectivity and coverage checks
// when the caller supplied at least one --validate-source flag; it is a
// no-op otherwise since there is no domain-independent way to know which
// tokens are "passable" for a given program.
func runValidation(flags *pflag.FlagSet, m *token.Map, logger zerolog.Logger) error {
	sourceFlags, _ := flags.GetStringArray("validate-source")
	if len(sourceFlags) == 0 {
		return nil
	}
	passableFlags, _ := flags.GetStringArray("validate-passable")
	passableSet := map[token.Token]bool{}
	for _, p := range passableFlags {
		passableSet[token.Token(p)] = true
	}

	sources := make([]grid.Vec2, 0, len(sourceFlags))
	for _, s := range sourceFlags {
		var x, y int
		if _, err := fmt.Sscanf(s, "%d,%d", &x, &y); err != nil {
			return fmt.Errorf("parsing --validate-source %q: %w", s, err)
		}
		sources = append(sources, grid.Vec2{X: x, Y: y})
	}

	report := validate.Validate(m, validate.Options{
		Passable: func(t token.Token) bool { return passableSet[t] },
		Sources:  sources,
	})
	for _, w := range report.Warnings {
		logger.Warn().Msg(w)
	}
	if !report.Passed {
		for _, e := range report.Errors {
			logger.Error().Msg(e)
		}
		return fmt.Errorf("map validation failed: %s", report.Errors[0])
	}
	logger.Info().Msg("map validation passed")
	return nil
}

// loadConfig reads the --config file if given, or starts from a minimal
// default config (ASCII to stdout, seed 0 meaning auto-seed), so a plain
// `mapgen program.yaml` works without a config file at all.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	path, _ := flags.GetString("config")
	if path == "" {
		return &config.Config{
			Size:   config.SizeCfg{Width: 80, Height: 40},
			Render: config.RenderCfg{Format: config.RenderASCII},
		}, nil
	}
	return config.Load(path)
}

// applyOverrides layers explicit CLI flags over a loaded config.
func applyOverrides(cfg *config.Config, flags *pflag.FlagSet) {
	if seed, _ := flags.GetInt64("seed"); seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if width, _ := flags.GetInt("width"); width != 0 {
		cfg.Size.Width = width
	}
	if height, _ := flags.GetInt("height"); height != 0 {
		cfg.Size.Height = height
	}
	if format, _ := flags.GetString("format"); format != "" {
		cfg.Render.Format = config.RenderFormat(format)
	}
	if glyphs, _ := flags.GetString("glyphs"); glyphs != "" {
		cfg.Render.GlyphsPath = glyphs
	}
	if output, _ := flags.GetString("output"); output != "" {
		cfg.Render.OutputPath = output
	}
	if addr, _ := flags.GetString("metrics-addr"); addr != "" {
		cfg.MetricsAddr = addr
	}
}

// nopCloser adapts an io.Writer that must not be closed (stdout) to the
// io.WriteCloser the render functions expect.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func outputWriter(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating output file: %w", err)
	}
	return f, nil
}

func renderOutput(cfg *config.Config, m *token.Map) error {
	glyphs := render.DefaultGlyphs
	if cfg.Render.GlyphsPath != "" {
		f, err := os.Open(cfg.Render.GlyphsPath)
		if err != nil {
			return fmt.Errorf("opening glyph table: %w", err)
		}
		defer f.Close()
		parsed, err := render.ParseGlyphTable(f)
		if err != nil {
			return fmt.Errorf("parsing glyph table: %w", err)
		}
		glyphs = parsed
	}

	switch cfg.Render.Format {
	case config.RenderASCII:
		out, err := outputWriter(cfg.Render.OutputPath)
		if err != nil {
			return err
		}
		defer out.Close()
		return render.ASCII(out, m, glyphs)

	case config.RenderHTML:
		out, err := outputWriter(cfg.Render.OutputPath)
		if err != nil {
			return err
		}
		defer out.Close()
		_, err = io.WriteString(out, render.HTML(m, glyphs))
		return err

	case config.RenderSVG:
		data, err := render.SVG(m, glyphs, render.DefaultSVGOptions())
		if err != nil {
			return err
		}
		if cfg.Render.OutputPath == "" {
			_, err := os.Stdout.Write(data)
			return err
		}
		return os.WriteFile(cfg.Render.OutputPath, data, 0o644)

	case config.RenderTMJ:
		data, err := render.TMJBytes(m, glyphs, render.DefaultTMJOptions())
		if err != nil {
			return err
		}
		if cfg.Render.OutputPath == "" {
			_, err := os.Stdout.Write(data)
			return err
		}
		return os.WriteFile(cfg.Render.OutputPath, data, 0o644)

	case config.RenderInteractive:
		return render.Interactive(m, glyphs)

	default:
		return fmt.Errorf("unsupported render format %q", cfg.Render.Format)
	}
}
