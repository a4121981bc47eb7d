// Package view drives the renderer interactively: it owns the generated map,
// the depth window looked through, and the tcell event loop.
package view

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/leonelquinteros/gotext"

	"voxel-roguelike/internal/cell"
	"voxel-roguelike/internal/cell/diamond"
	"voxel-roguelike/internal/cell/occupant"
	"voxel-roguelike/internal/cell/stone"
	"voxel-roguelike/internal/generate"
	"voxel-roguelike/internal/render"
	"voxel-roguelike/internal/voxel"
)

// ErrUnknownTier is returned for a tier name outside Tiers.
var ErrUnknownTier = errors.New("unknown tier")

// Tier names a cell family.
type Tier string

const (
	TierStone    Tier = "stone"
	TierDiamond  Tier = "diamond"
	TierOccupant Tier = "occupant"
)

// Tiers lists every supported family.
var Tiers = []Tier{TierStone, TierDiamond, TierOccupant}

// Options configures map generation and the initial view.
type Options struct {
	Tier    Tier
	Default string // default cell name, parsed by the tier's Parse
	Bounds  voxel.Bounds
	Seed    int64

	Stones, Diamonds, Bats, Ats int

	Top, Bottom uint8
	Sweep       time.Duration // advance Top this often; 0 disables
}

// Scene is a generated map seen through a depth window. Implementations are
// per cell family; callers only deal with this interface.
type Scene interface {
	Render(p render.Painter, width, height int)
	Apply(a Action) error
	Sweep()
	Depth() (top, bottom uint8)
	Status() string
}

// Generator builds a map for one cell family.
type Generator[C cell.Cell] func(cfg *generate.Config) (voxel.Grid[C], generate.Stats, error)

// MapScene is the Scene for cell family C.
type MapScene[C cell.Cell] struct {
	opts  Options
	def   C
	gen   Generator[C]
	grid  voxel.Grid[C]
	stats generate.Stats
	seed  int64
	top   uint8
	span  uint8
}

// NewMapScene generates the first map from opts.Seed.
func NewMapScene[C cell.Cell](def C, gen Generator[C], opts Options) (*MapScene[C], error) {
	s := &MapScene[C]{opts: opts, def: def, gen: gen, top: opts.Top}
	if opts.Bottom > opts.Top {
		s.span = opts.Bottom - opts.Top
	}
	if err := s.regenerate(opts.Seed); err != nil {
		return nil, err
	}
	return s, nil
}

// NewScene picks the cell family named by opts.Tier.
func NewScene(opts Options) (Scene, error) {
	switch opts.Tier {
	case TierStone:
		def, err := stone.Parse(opts.Default)
		if err != nil {
			return nil, err
		}
		return sceneOf(def, func(cfg *generate.Config) (voxel.Grid[stone.Cell], generate.Stats, error) {
			return generate.Stones(cfg, opts.Stones)
		}, opts)
	case TierDiamond:
		def, err := diamond.Parse(opts.Default)
		if err != nil {
			return nil, err
		}
		return sceneOf(def, func(cfg *generate.Config) (voxel.Grid[diamond.Cell], generate.Stats, error) {
			return generate.Diamonds(cfg, opts.Stones, opts.Diamonds)
		}, opts)
	case TierOccupant:
		def, err := occupant.Parse(opts.Default)
		if err != nil {
			return nil, err
		}
		return sceneOf(def, func(cfg *generate.Config) (voxel.Grid[occupant.Cell], generate.Stats, error) {
			return generate.Occupants(cfg, opts.Stones, opts.Bats, opts.Ats)
		}, opts)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownTier, opts.Tier)
}

func sceneOf[C cell.Cell](def C, gen Generator[C], opts Options) (Scene, error) {
	s, err := NewMapScene(def, gen, opts)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *MapScene[C]) regenerate(seed int64) error {
	cfg := &generate.Config{
		Bounds: s.opts.Bounds,
		Rand:   rand.New(rand.NewSource(seed)),
	}
	g, st, err := s.gen(cfg)
	if err != nil {
		return fmt.Errorf("generate %s map (seed %d): %w", s.opts.Tier, seed, err)
	}
	s.grid, s.stats, s.seed = g, st, seed
	return nil
}

// Grid exposes the current map for inspection.
func (s *MapScene[C]) Grid() voxel.Grid[C] { return s.grid }

// Depth returns the window the map is viewed through.
func (s *MapScene[C]) Depth() (top, bottom uint8) {
	b := int(s.top) + int(s.span)
	if b > 255 {
		b = 255
	}
	return s.top, uint8(b)
}

// Render projects the map onto a width×height viewport.
func (s *MapScene[C]) Render(p render.Painter, width, height int) {
	top, bottom := s.Depth()
	render.Display(p, s.grid, s.def, width, height, top, bottom)
}

// Apply handles one viewer action. ActionQuit and ActionNone are no-ops here.
func (s *MapScene[C]) Apply(a Action) error {
	switch a {
	case ActionDeeper:
		if int(s.top) < s.deepest() {
			s.top++
		}
	case ActionShallower:
		if s.top > 0 {
			s.top--
		}
	case ActionReseed:
		return s.regenerate(s.seed + 1)
	}
	return nil
}

// Sweep moves one layer deeper, wrapping back to the surface after the
// deepest layer of the map.
func (s *MapScene[C]) Sweep() {
	if int(s.top) >= s.deepest() {
		s.top = 0
		return
	}
	s.top++
}

func (s *MapScene[C]) deepest() int {
	d := s.opts.Bounds.Depth - 1
	if d > 255 {
		d = 255
	}
	if d < 0 {
		d = 0
	}
	return d
}

// Status is the one-line summary shown under the viewport.
func (s *MapScene[C]) Status() string {
	top, bottom := s.Depth()
	return gotext.Get("%s  depth %d-%d  seed %d  %d/%d placed  [<>] depth [r] reseed [q] quit",
		s.opts.Tier, top, bottom, s.seed, s.stats.Placed, s.stats.Requested)
}
