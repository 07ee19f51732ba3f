package render

import (
	"io"

	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/token"
)

// ASCII writes m to w as a terminal dump: one line per row, cells
// rendered in the glyph table's chosen color, blank where no token in
// the cell has a glyph.
func ASCII(w io.Writer, m *token.Map, glyphs *GlyphTable) error {
	bounds := m.Bounds()
	for y := bounds.Py; y < bounds.Ky; y++ {
		for x := bounds.Px; x < bounds.Kx; x++ {
			v := grid.Vec2{X: x, Y: y}
			cell := m.Tokens(v)
			if len(cell) > 0 {
				if winner := glyphs.best(cell); winner != "" {
					g := glyphs.glyphs[winner]
					if _, err := io.WriteString(w, ansiColor(g.Color)+g.Char+ansiReset); err != nil {
						return err
					}
					continue
				}
			}
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
