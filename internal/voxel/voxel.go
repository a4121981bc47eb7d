// Package voxel holds the sparse 3D grid the renderer projects.
package voxel

// Coord addresses one voxel. X and Y are screen axes; Z is depth, with
// smaller values closer to the viewer.
type Coord struct {
	X, Y, Z uint8
}

// Bounds is the extent of a generated map along each axis.
type Bounds struct {
	Width, Height, Depth int
}

// Contains reports whether c lies inside b.
func (b Bounds) Contains(c Coord) bool {
	return int(c.X) < b.Width && int(c.Y) < b.Height && int(c.Z) < b.Depth
}

// Empty reports whether any axis has no extent.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0 || b.Depth <= 0
}

// Grid maps coordinates to cells. A coordinate with no entry is the
// caller's default cell; the grid never stores one on its own.
type Grid[C any] map[Coord]C

// New creates an empty grid.
func New[C any]() Grid[C] {
	return make(Grid[C])
}

// GetOrDefault returns the cell at c, or def when c has no entry.
func (g Grid[C]) GetOrDefault(c Coord, def C) C {
	if v, ok := g[c]; ok {
		return v
	}
	return def
}

// At is GetOrDefault spelled with separate axes.
func (g Grid[C]) At(x, y, z uint8, def C) C {
	return g.GetOrDefault(Coord{x, y, z}, def)
}

// Set replaces the cell at c. Later writes win.
func (g Grid[C]) Set(c Coord, v C) {
	g[c] = v
}
