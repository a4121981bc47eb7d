// Package ansi renders a frame as 256-colour escape sequences for terminals
// that are not driven through tcell, such as a one-shot dump to stdout.
package ansi

import (
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/term"

	"voxel-roguelike/internal/cell"
	"voxel-roguelike/internal/render"
)

// Default frame size when the output is not a terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

type glyph struct {
	ch     rune
	fg, bg cell.Color
}

// Frame buffers one width×height frame until it is written out.
type Frame struct {
	width, height int
	cells         []glyph
}

var _ render.Painter = (*Frame)(nil)

// NewFrame returns a frame pre-filled with fallback blanks.
func NewFrame(width, height int) *Frame {
	f := &Frame{width: width, height: height, cells: make([]glyph, width*height)}
	for i := range f.cells {
		f.cells[i] = glyph{render.FallbackGlyph, render.FallbackForeground, render.FallbackBackground}
	}
	return f
}

// Paint stores one column. Coordinates outside the frame are dropped.
func (f *Frame) Paint(x, y int, ch rune, fg, bg cell.Color) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.cells[y*f.width+x] = glyph{ch, fg, bg}
}

// WriteTo writes the frame row by row, each glyph wrapped in its own colour
// codes. Colour codes are omitted when gookit/color detects no colour support.
func (f *Frame) WriteTo(w io.Writer) (int64, error) {
	var sb strings.Builder
	for y := 0; y < f.height; y++ {
		row := f.cells[y*f.width : (y+1)*f.width]
		for _, g := range row {
			sb.WriteString(color.S256(uint8(g.fg), uint8(g.bg)).Sprint(string(g.ch)))
		}
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(w, sb.String())
	return int64(n), err
}

// Plain returns the frame's glyphs without any colour codes, one line per row.
func (f *Frame) Plain() string {
	var sb strings.Builder
	for y := 0; y < f.height; y++ {
		for _, g := range f.cells[y*f.width : (y+1)*f.width] {
			sb.WriteRune(g.ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TerminalSize returns the size of the terminal on out, falling back to
// DefaultWidth×DefaultHeight when out is not a terminal.
func TerminalSize(out *os.File) (width, height int) {
	width, height, err := term.GetSize(int(out.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}
