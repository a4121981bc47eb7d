package voxel

import "testing"

func TestContains(t *testing.T) {
	b := Bounds{Width: 10, Height: 8, Depth: 4}
	cases := []struct {
		c    Coord
		want bool
	}{
		{Coord{0, 0, 0}, true},
		{Coord{9, 7, 3}, true},
		{Coord{10, 0, 0}, false},
		{Coord{0, 8, 0}, false},
		{Coord{0, 0, 4}, false},
		{Coord{255, 255, 255}, false},
	}
	for _, tc := range cases {
		if got := b.Contains(tc.c); got != tc.want {
			t.Errorf("Contains(%v)=%v, want %v", tc.c, got, tc.want)
		}
	}
}

func TestBoundsEmpty(t *testing.T) {
	cases := []struct {
		b    Bounds
		want bool
	}{
		{Bounds{1, 1, 1}, false},
		{Bounds{0, 1, 1}, true},
		{Bounds{1, 0, 1}, true},
		{Bounds{1, 1, 0}, true},
		{Bounds{-3, 5, 5}, true},
	}
	for _, tc := range cases {
		if got := tc.b.Empty(); got != tc.want {
			t.Errorf("%+v.Empty()=%v, want %v", tc.b, got, tc.want)
		}
	}
}

func TestGetOrDefault(t *testing.T) {
	g := New[string]()
	g.Set(Coord{1, 2, 3}, "rock")

	if got := g.GetOrDefault(Coord{1, 2, 3}, "air"); got != "rock" {
		t.Errorf("stored coord: got %q, want rock", got)
	}
	if got := g.GetOrDefault(Coord{3, 2, 1}, "air"); got != "air" {
		t.Errorf("missing coord: got %q, want air", got)
	}
	if got := g.At(1, 2, 3, "air"); got != "rock" {
		t.Errorf("At(1,2,3): got %q, want rock", got)
	}
}

func TestSetLastWriteWins(t *testing.T) {
	g := New[int]()
	g.Set(Coord{0, 0, 0}, 1)
	g.Set(Coord{0, 0, 0}, 2)
	if len(g) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(g))
	}
	if got := g.At(0, 0, 0, 0); got != 2 {
		t.Errorf("At(0,0,0)=%d, want 2", got)
	}
}
