package render

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"voxel-roguelike/internal/cell"
)

// Call is one recorded Paint.
type Call struct {
	X, Y   int
	Glyph  rune
	FG, BG cell.Color
}

// Recorder keeps every Paint call in order.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Paint(x, y int, glyph rune, fg, bg cell.Color) {
	r.Calls = append(r.Calls, Call{X: x, Y: y, Glyph: glyph, FG: fg, BG: bg})
}

// Reset drops recorded calls but keeps the backing array.
func (r *Recorder) Reset() { r.Calls = r.Calls[:0] }

// Digest fingerprints the recorded sequence.
func (r *Recorder) Digest() uint64 {
	d := xxhash.New()
	for _, c := range r.Calls {
		writeCall(d, c)
	}
	return d.Sum64()
}

// Hasher forwards Paint calls to Next while fingerprinting them, so a caller
// can tell whether a frame changed without keeping a copy of it.
type Hasher struct {
	Next Painter
	d    *xxhash.Digest
}

// NewHasher wraps next. A nil next only hashes.
func NewHasher(next Painter) *Hasher {
	return &Hasher{Next: next, d: xxhash.New()}
}

func (h *Hasher) Paint(x, y int, glyph rune, fg, bg cell.Color) {
	writeCall(h.d, Call{X: x, Y: y, Glyph: glyph, FG: fg, BG: bg})
	if h.Next != nil {
		h.Next.Paint(x, y, glyph, fg, bg)
	}
}

// Sum returns the fingerprint of everything painted since the last Reset.
func (h *Hasher) Sum() uint64 { return h.d.Sum64() }

// Reset starts a new frame.
func (h *Hasher) Reset() { h.d.Reset() }

func writeCall(d *xxhash.Digest, c Call) {
	var b [14]byte
	binary.LittleEndian.PutUint32(b[0:], uint32(c.X))
	binary.LittleEndian.PutUint32(b[4:], uint32(c.Y))
	binary.LittleEndian.PutUint32(b[8:], uint32(c.Glyph))
	b[12] = byte(c.FG)
	b[13] = byte(c.BG)
	d.Write(b[:]) //nolint:errcheck // xxhash never fails
}
