// Package stone is the simplest cell family: every voxel is rock or air.
package stone

import (
	"errors"
	"fmt"

	"voxel-roguelike/internal/cell"
)

// ErrUnknownCell is returned by Parse for names outside the family.
var ErrUnknownCell = errors.New("unknown stone cell")

// Cell is either Empty or Stone.
type Cell uint8

const (
	Empty Cell = iota
	Stone
)

var _ cell.Cell = Empty

func (c Cell) Foreground() (rune, bool) {
	if c == Stone {
		return cell.GlyphStone, true
	}
	return 0, false
}

func (c Cell) Floor() (rune, bool) {
	if c == Stone {
		return cell.GlyphFloor, true
	}
	return 0, false
}

func (c Cell) BackgroundColor() (cell.Color, bool) {
	if c == Stone {
		return cell.MediumGrey, true
	}
	return 0, false
}

func (c Cell) ForegroundColor() cell.Color {
	if c == Stone {
		return cell.LightGrey
	}
	return cell.Black
}

func (c Cell) OccludesBackground() bool { return c == Stone }

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Stone:
		return "stone"
	}
	return fmt.Sprintf("stone.Cell(%d)", uint8(c))
}

// Parse maps a name as printed by String back to a Cell.
func Parse(name string) (Cell, error) {
	switch name {
	case "empty", "":
		return Empty, nil
	case "stone":
		return Stone, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownCell, name)
}
