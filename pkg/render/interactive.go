package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/dshills/mapgen/pkg/grid"
	"github.com/dshills/mapgen/pkg/token"
)

// Interactive opens a terminal screen and displays m, scrollable with
// the arrow keys, until the user quits (q, Escape, or Ctrl-C).
func Interactive(m *token.Map, glyphs *GlyphTable) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("render: opening terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("render: initializing terminal screen: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	var offsetX, offsetY int
	draw := func() {
		screen.Clear()
		bounds := m.Bounds()
		_, screenH := screen.Size()
		for y := bounds.Py; y < bounds.Ky; y++ {
			screenY := y - bounds.Py - offsetY
			if screenY < 0 || screenY >= screenH {
				continue
			}
			screenX := 0
			for x := bounds.Px; x < bounds.Kx; x++ {
				cell := m.Tokens(grid.Vec2{X: x, Y: y})
				char, style := " ", tcell.StyleDefault
				if len(cell) > 0 {
					if winner := glyphs.best(cell); winner != "" {
						g := glyphs.glyphs[winner]
						char = g.Char
						style = tcellStyle(g.Color)
					}
				}
				col := screenX - offsetX
				if col >= 0 {
					screen.SetContent(col, screenY, firstRune(char), nil, style)
				}
				screenX += runewidth.StringWidth(char)
			}
		}
		screen.Show()
	}

	draw()
	for {
		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			switch {
			case e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC:
				return nil
			case e.Key() == tcell.KeyRune && e.Rune() == 'q':
				return nil
			case e.Key() == tcell.KeyUp:
				offsetY--
			case e.Key() == tcell.KeyDown:
				offsetY++
			case e.Key() == tcell.KeyLeft:
				offsetX--
			case e.Key() == tcell.KeyRight:
				offsetX++
			}
			draw()
		case *tcell.EventResize:
			screen.Sync()
			draw()
		}
	}
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

func tcellStyle(color string) tcell.Style {
	named := map[string]tcell.Color{
		"black":   tcell.ColorBlack,
		"red":     tcell.ColorRed,
		"green":   tcell.ColorGreen,
		"brown":   tcell.ColorBrown,
		"yellow":  tcell.ColorYellow,
		"blue":    tcell.ColorBlue,
		"magenta": tcell.ColorPurple,
		"cyan":    tcell.ColorTeal,
		"white":   tcell.ColorWhite,
		"gray":    tcell.ColorGray,
	}
	c, ok := named[color]
	if !ok {
		c = tcell.ColorWhite
	}
	return tcell.StyleDefault.Foreground(c)
}
