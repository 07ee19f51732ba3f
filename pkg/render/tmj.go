package render

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"

	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/token"
)

// TMJMap is the root of a Tiled Map Editor JSON document (TMJ 1.10),
// restricted to what a generated token map needs: a single tile layer
// plus one synthesized tileset, no object layers.
// https://doc.mapeditor.org/en/stable/reference/json-map-format/
type TMJMap struct {
	Type             string       `json:"type"`
	Version          string       `json:"version"`
	TiledVersion     string       `json:"tiledversion"`
	Width            int          `json:"width"`
	Height           int          `json:"height"`
	TileWidth        int          `json:"tilewidth"`
	TileHeight       int          `json:"tileheight"`
	Orientation      string       `json:"orientation"`
	RenderOrder      string       `json:"renderorder"`
	Infinite         bool         `json:"infinite"`
	NextLayerID      int          `json:"nextlayerid"`
	CompressionLevel int          `json:"compressionlevel"`
	Layers           []TMJLayer   `json:"layers"`
	Tilesets         []TMJTileset `json:"tilesets"`
}

// TMJLayer is a single tile layer: one CSV or gzip+base64-encoded GID
// per cell, row-major (Tiled's own "right-down" render order).
type TMJLayer struct {
	ID          int         `json:"id"`
	Name        string      `json:"name"`
	Type        string      `json:"type"`
	Visible     bool        `json:"visible"`
	Opacity     float64     `json:"opacity"`
	X           int         `json:"x"`
	Y           int         `json:"y"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Data        interface{} `json:"data"`
	Encoding    string      `json:"encoding"`
	Compression string      `json:"compression,omitempty"`
}

// TMJTileset is a synthesized tileset with one tile per distinct token
// that appeared in the map, named after the token rather than backed by
// a real tile image.
type TMJTileset struct {
	FirstGID  uint32          `json:"firstgid"`
	Name      string          `json:"name"`
	TileWidth int             `json:"tilewidth"`
	TileCount int             `json:"tilecount"`
	Columns   int             `json:"columns"`
	Tiles     []TMJTileRecord `json:"tiles"`
}

// TMJTileRecord documents which token and glyph a synthesized tile GID
// stands for, since there is no backing tile image to look it up in.
type TMJTileRecord struct {
	ID         int    `json:"id"`
	Token      string `json:"type"`
	Char       string `json:"-"`
	Properties []TMJProperty `json:"properties,omitempty"`
}

// TMJProperty is a single Tiled custom property.
type TMJProperty struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// TMJOptions configures ExportTMJ.
type TMJOptions struct {
	TileSize int  // pixel size Tiled should render each tile at (default 16)
	Compress bool // gzip+base64 the layer data instead of plain CSV
}

// DefaultTMJOptions returns sensible defaults for ExportTMJ.
func DefaultTMJOptions() TMJOptions {
	return TMJOptions{TileSize: 16}
}

// ExportTMJ renders m as a Tiled JSON document. Each cell becomes one
// GID in a single tile layer; the GID's meaning (which token, which
// glyph) is recorded in the synthesized tileset's per-tile properties,
// since there is no real tile image backing these GIDs.
func ExportTMJ(m *token.Map, glyphs *GlyphTable, opts TMJOptions) (*TMJMap, error) {
	if opts.TileSize <= 0 {
		opts.TileSize = 16
	}
	bounds := m.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("render: cannot export an empty map to TMJ")
	}

	gids := map[token.Token]uint32{}
	var tileset TMJTileset
	tileset.FirstGID = 1
	tileset.TileWidth = opts.TileSize
	tileset.Columns = 1

	data := make([]uint32, 0, bounds.Width()*bounds.Height())
	for y := bounds.Py; y < bounds.Ky; y++ {
		for x := bounds.Px; x < bounds.Kx; x++ {
			cell := m.Tokens(grid.Vec2{X: x, Y: y})
			var tok token.Token
			if len(cell) > 0 {
				tok = glyphs.best(cell)
			}
			if tok == "" {
				data = append(data, 0)
				continue
			}
			gid, ok := gids[tok]
			if !ok {
				localID := len(tileset.Tiles)
				gid = tileset.FirstGID + uint32(localID)
				gids[tok] = gid
				g := glyphs.glyphs[tok]
				tileset.Tiles = append(tileset.Tiles, TMJTileRecord{
					ID:    localID,
					Token: string(tok),
					Char:  g.Char,
					Properties: []TMJProperty{
						{Name: "char", Type: "string", Value: g.Char},
						{Name: "color", Type: "string", Value: g.Color},
					},
				})
			}
			data = append(data, gid)
		}
	}
	tileset.TileCount = len(tileset.Tiles)
	tileset.Columns = max(1, tileset.TileCount)
	tileset.Name = "tokens"

	tmj := &TMJMap{
		Type:             "map",
		Version:          "1.10",
		TiledVersion:     "1.10.2",
		Width:            bounds.Width(),
		Height:           bounds.Height(),
		TileWidth:        opts.TileSize,
		TileHeight:       opts.TileSize,
		Orientation:      "orthogonal",
		RenderOrder:      "right-down",
		NextLayerID:      2,
		CompressionLevel: -1,
		Tilesets:         []TMJTileset{tileset},
	}

	layer := TMJLayer{
		ID:       1,
		Name:     "tokens",
		Type:     "tilelayer",
		Visible:  true,
		Opacity:  1.0,
		Width:    bounds.Width(),
		Height:   bounds.Height(),
		Data:     data,
		Encoding: "csv",
	}
	if opts.Compress {
		encoded, err := compressLayerData(data)
		if err != nil {
			return nil, fmt.Errorf("render: compressing TMJ layer: %w", err)
		}
		layer.Data = encoded
		layer.Encoding = "base64"
		layer.Compression = "gzip"
	}
	tmj.Layers = []TMJLayer{layer}

	return tmj, nil
}


// compressLayerData gzip-compresses little-endian GIDs and base64-encodes
// the result, matching Tiled's own base64+gzip tile layer encoding.
func compressLayerData(gids []uint32) (string, error) {
	buf := new(bytes.Buffer)
	for _, gid := range gids {
		buf.WriteByte(byte(gid))
		buf.WriteByte(byte(gid >> 8))
		buf.WriteByte(byte(gid >> 16))
		buf.WriteByte(byte(gid >> 24))
	}

	var compressed bytes.Buffer
	gw := gzip.NewWriter(&compressed)
	if _, err := gw.Write(buf.Bytes()); err != nil {
		return "", err
	}
	if err := gw.Close(); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(compressed.Bytes()), nil
}
