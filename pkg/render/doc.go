// Package render turns a token map into displayable output: an ANSI
// terminal dump, an HTML fragment, an SVG image, or a live interactive
// terminal view. All four share a GlyphTable that maps tokens to a
// display character and color and, for cells holding more than one
// token, decides which one wins.
package render
