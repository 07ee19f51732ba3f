package render

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dshills/mapgen/pkg/token"
)

// Glyph is one entry of a GlyphTable: how to display a single token.
type Glyph struct {
	Token token.Token
	Char  string
	Color string
}

// GlyphTable maps tokens to display glyphs. When a cell holds more than
// one token, DefaultGlyphs-style tables with later entries pick the
// later-declared token over an earlier one, matching the reference
// renderer's tie-break: priority is the entry's declaration index, and
// the glyph selection minimizes the negative of that index, so later
// entries outrank earlier ones when both match a cell.
type GlyphTable struct {
	glyphs   map[token.Token]Glyph
	priority map[token.Token]int
}

// DefaultGlyphs is a minimal built-in table covering the tokens the
// engine's own example programs reach for; anything else is rendered
// blank unless a glyph file overrides it.
var DefaultGlyphs = &GlyphTable{
	glyphs: map[token.Token]Glyph{
		"wall":  {Token: "wall", Char: "#", Color: "white"},
		"floor": {Token: "floor", Char: ".", Color: "gray"},
	},
	priority: map[token.Token]int{"wall": 0, "floor": 1},
}

// ParseGlyphTable reads a sequence of "token character color" triples,
// the token quoted so it may contain spaces, matching the reference
// renderer's input format. Declaration order becomes priority order.
func ParseGlyphTable(r io.Reader) (*GlyphTable, error) {
	t := &GlyphTable{glyphs: map[token.Token]Glyph{}, priority: map[token.Token]int{}}
	br := bufio.NewReader(r)
	cnt := 0
	for {
		tok, err := nextField(br)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("render: parsing glyph table: %w", err)
		}
		char, err := nextField(br)
		if err != nil {
			return nil, fmt.Errorf("render: glyph table entry %q missing character", tok)
		}
		color, err := nextField(br)
		if err != nil {
			return nil, fmt.Errorf("render: glyph table entry %q missing color", tok)
		}
		key := token.Token(tok)
		t.glyphs[key] = Glyph{Token: key, Char: char, Color: color}
		t.priority[key] = cnt
		cnt++
	}
	return t, nil
}

// nextField reads the next whitespace-delimited field, honoring a
// leading double quote as a delimited string.
func nextField(r *bufio.Reader) (string, error) {
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		if !isSpace(b) {
			if b == '"' {
				return readQuoted(r)
			}
			var sb strings.Builder
			sb.WriteByte(b)
			for {
				b, err := r.ReadByte()
				if err != nil || isSpace(b) {
					return sb.String(), nil
				}
				sb.WriteByte(b)
			}
		}
	}
}

func readQuoted(r *bufio.Reader) (string, error) {
	var sb strings.Builder
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", fmt.Errorf("unterminated quoted field")
		}
		if b == '\\' {
			nb, err := r.ReadByte()
			if err != nil {
				return "", fmt.Errorf("unterminated escape in quoted field")
			}
			sb.WriteByte(nb)
			continue
		}
		if b == '"' {
			return sb.String(), nil
		}
		sb.WriteByte(b)
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// best picks which token of cell wins display priority: the known token
// with the highest declaration index, or "" if none of cell's tokens
// appear in the table.
func (t *GlyphTable) best(cell []token.Token) token.Token {
	var winner token.Token
	bestScore := 10000
	found := false
	for _, tok := range cell {
		score := 10000
		if p, ok := t.priority[tok]; ok {
			score = -p
		}
		if !found || score < bestScore {
			bestScore = score
			winner = tok
			found = true
		}
	}
	if !found {
		return ""
	}
	if _, ok := t.glyphs[winner]; !ok {
		return ""
	}
	return winner
}
