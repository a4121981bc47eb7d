// Package diamond extends the stone family with a collectible that does not
// hide the layers beneath it.
package diamond

import (
	"errors"
	"fmt"

	"voxel-roguelike/internal/cell"
)

// ErrUnknownCell is returned by Parse for names outside the family.
var ErrUnknownCell = errors.New("unknown diamond cell")

// Cell is Empty, Stone or Diamond.
type Cell uint8

const (
	Empty Cell = iota
	Stone
	Diamond
)

var _ cell.Cell = Empty

func (c Cell) Foreground() (rune, bool) {
	switch c {
	case Stone:
		return cell.GlyphStone, true
	case Diamond:
		return cell.GlyphDiamond, true
	}
	return 0, false
}

// Floor is only defined for Stone; a diamond has nothing to stand on.
func (c Cell) Floor() (rune, bool) {
	if c == Stone {
		return cell.GlyphFloor, true
	}
	return 0, false
}

func (c Cell) BackgroundColor() (cell.Color, bool) {
	switch c {
	case Stone:
		return cell.MediumGrey, true
	case Diamond:
		return cell.DarkCyan, true
	}
	return 0, false
}

func (c Cell) ForegroundColor() cell.Color {
	switch c {
	case Stone:
		return cell.LightGrey
	case Diamond:
		return cell.Cyan
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
	case Diamond:
		return "diamond"
	}
	return fmt.Sprintf("diamond.Cell(%d)", uint8(c))
}

// Parse maps a name as printed by String back to a Cell.
func Parse(name string) (Cell, error) {
	switch name {
	case "empty", "":
		return Empty, nil
	case "stone":
		return Stone, nil
	case "diamond":
		return Diamond, nil
	}
	return Empty, fmt.Errorf("%w: %q", ErrUnknownCell, name)
}
