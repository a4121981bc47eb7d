package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"voxel-roguelike/internal/generate"
	"voxel-roguelike/internal/render/ansi"
	"voxel-roguelike/internal/view"
	"voxel-roguelike/internal/voxel"
)

func TestParseFlagsDefaults(t *testing.T) {
	opts, dump, logPath, err := parseFlags([]string{"-seed", "7"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if dump || logPath != "" {
		t.Errorf("dump=%v log=%q, want false and empty", dump, logPath)
	}
	if opts.Tier != view.TierDiamond || opts.Seed != 7 || opts.Top != 0 || opts.Bottom != 10 {
		t.Errorf("unexpected defaults: %+v", opts)
	}
}

func TestParseFlagsOverrides(t *testing.T) {
	opts, dump, _, err := parseFlags([]string{
		"-tier", "occupant", "-default", "stone", "-width", "30", "-height", "10", "-depth", "5",
		"-bats", "4", "-top", "2", "-bottom", "4", "-sweep", "250ms", "-dump",
	})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if !dump {
		t.Error("-dump not set")
	}
	if opts.Tier != view.TierOccupant || opts.Default != "stone" || opts.Bats != 4 {
		t.Errorf("unexpected opts: %+v", opts)
	}
	if opts.Bounds.Width != 30 || opts.Bounds.Height != 10 || opts.Bounds.Depth != 5 {
		t.Errorf("bounds %+v", opts.Bounds)
	}
	if opts.Top != 2 || opts.Bottom != 4 || opts.Sweep != 250*time.Millisecond {
		t.Errorf("depth/sweep %d-%d %v", opts.Top, opts.Bottom, opts.Sweep)
	}
}

func TestParseFlagsZeroSizeUsesTerminal(t *testing.T) {
	opts, _, _, err := parseFlags([]string{"-width", "0", "-height", "0", "-seed", "1"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	w, h := ansi.TerminalSize(os.Stdout)
	wantW := min(w, generate.MaxExtent)
	wantH := min(max(h-1, 1), generate.MaxExtent)
	if opts.Bounds.Width != wantW || opts.Bounds.Height != wantH {
		t.Errorf("bounds %+v, want %dx%d", opts.Bounds, wantW, wantH)
	}
	if _, err := view.NewScene(opts); err != nil {
		t.Errorf("NewScene: %v", err)
	}
}

func TestFitTerminalKeepsExplicitSize(t *testing.T) {
	b := voxel.Bounds{Width: 30, Height: 10, Depth: 4}
	if got := fitTerminal(b, os.Stdout); got != b {
		t.Errorf("fitTerminal(%+v)=%+v", b, got)
	}
	got := fitTerminal(voxel.Bounds{Width: 30, Depth: 4}, os.Stdout)
	if got.Width != 30 || got.Height <= 0 || got.Depth != 4 {
		t.Errorf("zero height not filled: %+v", got)
	}
}

func TestParseFlagsRejectsDeepLayers(t *testing.T) {
	if _, _, _, err := parseFlags([]string{"-top", "256"}); err == nil {
		t.Error("expected error for -top 256")
	}
}

func TestOpenLogger(t *testing.T) {
	logger, closeLog, err := openLogger("")
	if err != nil || logger == nil {
		t.Fatalf("openLogger(\"\")=(%v,%v)", logger, err)
	}
	closeLog()

	path := filepath.Join(t.TempDir(), "viewer.log")
	logger, closeLog, err = openLogger(path)
	if err != nil {
		t.Fatalf("openLogger(%q): %v", path, err)
	}
	logger.Info("hello")
	closeLog()
}
