package render

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"
	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/token"
)

// SVGOptions configures SVG map export.
type SVGOptions struct {
	CellSize   int    // Pixel size of one map cell (default: 16)
	Background string // Background fill color (default: "#1a1a2e")
}

// DefaultSVGOptions returns sensible default SVG export options.
func DefaultSVGOptions() SVGOptions {
	return SVGOptions{CellSize: 16, Background: "#1a1a2e"}
}

var svgColors = map[string]string{
	"black":   "#000000",
	"red":     "#d64545",
	"green":   "#4caf50",
	"brown":   "#8d6e63",
	"yellow":  "#fdd835",
	"blue":    "#2979ff",
	"magenta": "#d81bdb",
	"cyan":    "#26c6da",
	"white":   "#e0e0e0",
	"gray":    "#9e9e9e",
}

func svgColor(color string) string {
	if hex, ok := svgColors[color]; ok {
		return hex
	}
	return "#e0e0e0"
}

// SVG renders m as an SVG document: one rect per cell carrying a glyph,
// colored by the glyph table, over a solid background.
func SVG(m *token.Map, glyphs *GlyphTable, opts SVGOptions) ([]byte, error) {
	if opts.CellSize <= 0 {
		opts.CellSize = 16
	}
	if opts.Background == "" {
		opts.Background = "#1a1a2e"
	}

	bounds := m.Bounds()
	width := bounds.Width() * opts.CellSize
	height := bounds.Height() * opts.CellSize
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: cannot export an empty map to SVG")
	}

	buf := new(bytes.Buffer)
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+opts.Background)

	for y := bounds.Py; y < bounds.Ky; y++ {
		for x := bounds.Px; x < bounds.Kx; x++ {
			v := grid.Vec2{X: x, Y: y}
			cell := m.Tokens(v)
			if len(cell) == 0 {
				continue
			}
			winner := glyphs.best(cell)
			if winner == "" {
				continue
			}
			g := glyphs.glyphs[winner]
			px := (x - bounds.Px) * opts.CellSize
			py := (y - bounds.Py) * opts.CellSize
			style := fmt.Sprintf("fill:%s", svgColor(g.Color))
			canvas.Rect(px, py, opts.CellSize, opts.CellSize, style)
		}
	}

	canvas.End()
	return buf.Bytes(), nil
}
