// Package occupant is the cell family where open space can hold a mob.
// Mobs are immobile for now; they only change how their cell is drawn.
package occupant

import (
	"errors"
	"fmt"

	"voxel-roguelike/internal/cell"
)

// ErrUnknownCell is returned by Parse for names outside the family.
var ErrUnknownCell = errors.New("unknown occupant cell")

// Mob is a creature that can stand in open space.
type Mob uint8

const (
	NoMob Mob = iota
	Bat
	At
)

// Glyph returns the mob's symbol. ok is false for NoMob.
func (m Mob) Glyph() (rune, bool) {
	switch m {
	case Bat:
		return 'b', true
	case At:
		return '@', true
	}
	return 0, false
}

// Color returns the mob's foreground colour.
func (m Mob) Color() cell.Color {
	switch m {
	case Bat:
		return cell.ReddishBrown
	case At:
		return cell.White
	}
	return cell.Black
}

func (m Mob) String() string {
	switch m {
	case NoMob:
		return "none"
	case Bat:
		return "bat"
	case At:
		return "at"
	}
	return fmt.Sprintf("occupant.Mob(%d)", uint8(m))
}

// Cell is either solid Stone or Space, optionally occupied by a Mob.
// The zero value is unoccupied Space.
type Cell struct {
	solid bool
	mob   Mob
}

var (
	// Empty is unoccupied space.
	Empty = Cell{}
	// Stone is solid rock.
	Stone = Cell{solid: true}
)

// Space returns an open cell holding m. Space(NoMob) equals Empty.
func Space(m Mob) Cell { return Cell{mob: m} }

var _ cell.Cell = Empty

// IsStone reports whether c is solid rock.
func (c Cell) IsStone() bool { return c.solid }

// Mob returns the occupant of an open cell; Stone has none.
func (c Cell) Mob() Mob {
	if c.solid {
		return NoMob
	}
	return c.mob
}

func (c Cell) Foreground() (rune, bool) {
	if c.solid {
		return cell.GlyphStone, true
	}
	return c.mob.Glyph()
}

func (c Cell) Floor() (rune, bool) {
	if c.solid {
		return cell.GlyphFloor, true
	}
	return 0, false
}

func (c Cell) BackgroundColor() (cell.Color, bool) {
	if c.solid {
		return cell.MediumGrey, true
	}
	return 0, false
}

func (c Cell) ForegroundColor() cell.Color {
	if c.solid {
		return cell.LightGrey
	}
	return c.mob.Color()
}

func (c Cell) OccludesBackground() bool { return c.solid }

func (c Cell) String() string {
	if c.solid {
		return "stone"
	}
	if c.mob == NoMob {
		return "empty"
	}
	return c.mob.String()
}

// Parse maps a name as printed by String back to a Cell.
func Parse(name string) (Cell, error) {
	switch name {
	case "empty", "":
		return Empty, nil
	case "stone":
		return Stone, nil
	case "bat":
		return Space(Bat), nil
	case "at":
		return Space(At), nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownCell, name)
}
