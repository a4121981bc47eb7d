// Package screen paints rendered columns onto a tcell screen.
package screen

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"voxel-roguelike/internal/cell"
)

// Painter draws columns with 256-colour palette styles.
type Painter struct {
	screen tcell.Screen
}

// New creates a Painter for s.
func New(s tcell.Screen) *Painter {
	return &Painter{screen: s}
}

// Style converts a palette pair to a tcell style.
func Style(fg, bg cell.Color) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.PaletteColor(int(fg))).
		Background(tcell.PaletteColor(int(bg)))
}

// Paint draws glyph at (x, y). A double-width glyph also blanks x+1 in the
// same style, so a stale neighbour cannot show through; the next column's own
// Paint overwrites it.
func (p *Painter) Paint(x, y int, glyph rune, fg, bg cell.Color) {
	style := Style(fg, bg)
	p.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) == 2 {
		p.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// DrawStatus writes text on row y, truncated to the screen width, and clears
// the rest of the row.
func DrawStatus(s tcell.Screen, y int, text string, style tcell.Style) {
	w, _ := s.Size()
	text = runewidth.Truncate(text, w, "…")
	col := 0
	for _, ch := range text {
		s.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
	for ; col < w; col++ {
		s.SetContent(col, y, ' ', nil, style)
	}
}
