// Package cell defines what the column renderer needs to know about a voxel.
// Concrete cell families live in the stone, diamond and occupant subpackages;
// a game picks exactly one family and the renderer stays generic over Cell.
package cell

// Color is an index into the 256-colour terminal palette.
type Color uint8

// Palette indices used by the cell families.
const (
	Black        Color = 0
	LightGreyFG  Color = 7 // default terminal foreground
	White        Color = 15
	DarkCyan     Color = 23
	Cyan         Color = 51
	ReddishBrown Color = 130
	MediumGrey   Color = 243
	LightGrey    Color = 254
)

// Glyphs shared across families.
const (
	GlyphSpace   = ' '
	GlyphStone   = '#'
	GlyphFloor   = '.'
	GlyphDiamond = '♦'
)

// Cell is the capability set the renderer reads from every voxel.
type Cell interface {
	// Foreground returns the glyph drawn when this cell is the topmost layer
	// of a column. ok is false when there is nothing to draw.
	Foreground() (glyph rune, ok bool)

	// Floor returns the glyph drawn when this cell sits directly beneath a
	// foreground-less cell.
	Floor() (glyph rune, ok bool)

	// BackgroundColor returns the tint this cell lends a column when seen as
	// a background layer. ok is false when deeper layers should be consulted.
	BackgroundColor() (c Color, ok bool)

	// ForegroundColor pairs with the glyph returned by Foreground or Floor.
	// Its value is unspecified for cells with neither.
	ForegroundColor() Color

	// OccludesBackground reports whether this cell hides every layer below it
	// from the background colour lookup.
	OccludesBackground() bool
}
