package render

import (
	"encoding/json"

	"github.com/dshills/mapgen/pkg/token"
)

// TMJBytes builds a TMJ document for m and serializes it with
// indentation, ready to write to a .tmj file for Tiled Map Editor.
func TMJBytes(m *token.Map, glyphs *GlyphTable, opts TMJOptions) ([]byte, error) {
	tmj, err := ExportTMJ(m, glyphs, opts)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(tmj, "", "  ")
}
