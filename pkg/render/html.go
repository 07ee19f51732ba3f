package render

import (
	"strings"

	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/token"
)

// HTML renders m as an HTML fragment: one row per line, each cell a
// font-colored span or a plain space, rows separated by <br/>.
func HTML(m *token.Map, glyphs *GlyphTable) string {
	var sb strings.Builder
	bounds := m.Bounds()
	for y := bounds.Py; y < bounds.Ky; y++ {
		for x := bounds.Px; x < bounds.Kx; x++ {
			v := grid.Vec2{X: x, Y: y}
			cell := m.Tokens(v)
			if len(cell) > 0 {
				if winner := glyphs.best(cell); winner != "" {
					g := glyphs.glyphs[winner]
					sb.WriteString(htmlColor(g.Char, g.Color))
					continue
				}
			}
			sb.WriteString(" ")
		}
		sb.WriteString("<br/>")
	}
	return sb.String()
}
