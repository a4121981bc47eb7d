// Package generate scatters cells at random coordinates to build a map.
package generate

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"voxel-roguelike/internal/cell/diamond"
	"voxel-roguelike/internal/cell/occupant"
	"voxel-roguelike/internal/cell/stone"
	"voxel-roguelike/internal/voxel"
)

// MaxExtent is the largest axis length a voxel.Coord can address.
const MaxExtent = 256

var (
	// ErrEmptyBounds is returned when an axis has no extent to place into.
	ErrEmptyBounds = errors.New("map bounds must be positive on every axis")
	// ErrBoundsTooLarge is returned when an axis exceeds MaxExtent.
	ErrBoundsTooLarge = errors.New("map bounds exceed addressable range")
)

// Config drives random population of one map.
type Config struct {
	Bounds voxel.Bounds
	Rand   *rand.Rand
}

// Validate reports whether cfg can be used to place cells.
func (cfg *Config) Validate() error {
	b := cfg.Bounds
	if b.Empty() {
		return fmt.Errorf("%w: %dx%dx%d", ErrEmptyBounds, b.Width, b.Height, b.Depth)
	}
	if b.Width > MaxExtent || b.Height > MaxExtent || b.Depth > MaxExtent {
		return fmt.Errorf("%w: %dx%dx%d (max %d)", ErrBoundsTooLarge, b.Width, b.Height, b.Depth, MaxExtent)
	}
	if cfg.Rand == nil {
		return errors.New("generate: nil Rand")
	}
	return nil
}

// Spawn asks for Count copies of Cell.
type Spawn[C any] struct {
	Cell  C
	Count int
}

// Stats summarises one population pass.
type Stats struct {
	Requested  int // total cells asked for
	Placed     int // distinct coordinates holding a cell afterwards
	Overwrites int // placements that landed on an already-claimed coordinate
}

// Populate scatters every spawn at independent uniformly random coordinates,
// in the order given. A later placement on a taken coordinate replaces the
// earlier one, so collisions silently reduce the placed count.
func Populate[C any](cfg *Config, spawns ...Spawn[C]) (voxel.Grid[C], Stats, error) {
	var st Stats
	if err := cfg.Validate(); err != nil {
		return nil, st, err
	}

	g := voxel.New[C]()
	claimed := mapset.New[voxel.Coord]()
	for _, sp := range spawns {
		for i := 0; i < sp.Count; i++ {
			c := randomCoord(cfg)
			if claimed.Has(c) {
				st.Overwrites++
			}
			claimed.Put(c)
			g.Set(c, sp.Cell)
			st.Requested++
		}
	}
	st.Placed = claimed.Size()
	return g, st, nil
}

func randomCoord(cfg *Config) voxel.Coord {
	b := cfg.Bounds
	return voxel.Coord{
		X: uint8(cfg.Rand.Intn(b.Width)),
		Y: uint8(cfg.Rand.Intn(b.Height)),
		Z: uint8(cfg.Rand.Intn(b.Depth)),
	}
}

// Stones fills a stone-family map with n stones.
func Stones(cfg *Config, n int) (voxel.Grid[stone.Cell], Stats, error) {
	return Populate(cfg, Spawn[stone.Cell]{stone.Stone, n})
}

// Diamonds places stones first, then diamonds, so a diamond replaces any
// stone it lands on.
func Diamonds(cfg *Config, stones, diamonds int) (voxel.Grid[diamond.Cell], Stats, error) {
	return Populate(cfg,
		Spawn[diamond.Cell]{diamond.Stone, stones},
		Spawn[diamond.Cell]{diamond.Diamond, diamonds},
	)
}

// Occupants places stones, then bats, then ats.
func Occupants(cfg *Config, stones, bats, ats int) (voxel.Grid[occupant.Cell], Stats, error) {
	return Populate(cfg,
		Spawn[occupant.Cell]{occupant.Stone, stones},
		Spawn[occupant.Cell]{occupant.Space(occupant.Bat), bats},
		Spawn[occupant.Cell]{occupant.Space(occupant.At), ats},
	)
}
