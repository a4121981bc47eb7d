// Package render projects a voxel grid onto a character display one column
// at a time.
package render

import (
	"voxel-roguelike/internal/cell"
	"voxel-roguelike/internal/voxel"
)

// Fallbacks used when a column has nothing to show.
const (
	FallbackGlyph      = cell.GlyphSpace
	FallbackForeground = cell.LightGreyFG
	FallbackBackground = cell.Black
)

// maxAxis is the largest x or y a voxel.Coord can address.
const maxAxis = 255

// Painter receives one glyph and colour pair per screen column.
type Painter interface {
	Paint(x, y int, glyph rune, fg, bg cell.Color)
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(x, y int, glyph rune, fg, bg cell.Color)

func (f PainterFunc) Paint(x, y int, glyph rune, fg, bg cell.Color) { f(x, y, glyph, fg, bg) }

// Display paints every column of a width×height viewport, x outer and y
// inner. Columns outside the range a Coord can address are drawn as if they
// held only the default cell.
func Display[C cell.Cell](p Painter, g voxel.Grid[C], def C, width, height int, topZ, bottomZ uint8) {
	var blank voxel.Grid[C]
	blankCh, blankFG, blankBG := ColumnRepr(blank, def, 0, 0, topZ, bottomZ)

	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			if x > maxAxis || y > maxAxis {
				p.Paint(x, y, blankCh, blankFG, blankBG)
				continue
			}
			ch, fg, back := ColumnRepr(g, def, uint8(x), uint8(y), topZ, bottomZ)
			p.Paint(x, y, ch, fg, back)
		}
	}
}

// ColumnRepr returns the glyph, foreground and background for one column.
func ColumnRepr[C cell.Cell](g voxel.Grid[C], def C, x, y, topZ, bottomZ uint8) (rune, cell.Color, cell.Color) {
	ch, fg := ColumnFore(g, def, x, y, topZ)
	return ch, fg, ColumnBack(g, def, x, y, topZ, bottomZ)
}

// ColumnFore picks the glyph for a column. The top cell's own glyph wins;
// failing that, the floor of the cell directly beneath it shows through.
// No deeper layer is ever consulted.
func ColumnFore[C cell.Cell](g voxel.Grid[C], def C, x, y, topZ uint8) (rune, cell.Color) {
	top := g.GetOrDefault(voxel.Coord{X: x, Y: y, Z: topZ}, def)
	if ch, ok := top.Foreground(); ok {
		return ch, top.ForegroundColor()
	}

	below := def
	if topZ < maxAxis {
		below = g.GetOrDefault(voxel.Coord{X: x, Y: y, Z: topZ + 1}, def)
	}
	if ch, ok := below.Floor(); ok {
		return ch, below.ForegroundColor()
	}
	return FallbackGlyph, FallbackForeground
}

// ColumnBack picks the background colour for a column. An occluding top cell
// decides alone. Otherwise the first layer in (topZ, bottomZ] with a
// background colour wins; deeper occluders do not stop the scan.
func ColumnBack[C cell.Cell](g voxel.Grid[C], def C, x, y, topZ, bottomZ uint8) cell.Color {
	top := g.GetOrDefault(voxel.Coord{X: x, Y: y, Z: topZ}, def)
	if top.OccludesBackground() {
		if c, ok := top.BackgroundColor(); ok {
			return c
		}
		return FallbackBackground
	}

	for z := int(topZ) + 1; z <= int(bottomZ); z++ {
		c := g.GetOrDefault(voxel.Coord{X: x, Y: y, Z: uint8(z)}, def)
		if color, ok := c.BackgroundColor(); ok {
			return color
		}
	}
	return FallbackBackground
}
