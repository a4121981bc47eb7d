// voxel-roguelike renders a random voxel map onto the terminal, looking down
// the z-axis. Build:
//
//	go build -o voxel-roguelike .
//
// Usage:
//
//	./voxel-roguelike [-tier stone|diamond|occupant] [-seed 42] [-sweep 500ms]
//	./voxel-roguelike -dump -width 60 -height 20
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/leonelquinteros/gotext"

	"voxel-roguelike/internal/generate"
	"voxel-roguelike/internal/render/ansi"
	"voxel-roguelike/internal/view"
	"voxel-roguelike/internal/voxel"
)

func main() {
	opts, dump, logPath, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	if err := run(opts, dump, logPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (view.Options, bool, string, error) {
	fs := flag.NewFlagSet("voxel-roguelike", flag.ContinueOnError)
	tier := fs.String("tier", string(view.TierDiamond), "cell family: stone, diamond or occupant")
	def := fs.String("default", "empty", "cell standing in for unset coordinates")
	width := fs.Int("width", 80, "map width; 0 uses the terminal width")
	height := fs.Int("height", 24, "map height; 0 uses the terminal height less the status row")
	depth := fs.Int("depth", 16, "map depth")
	seed := fs.Int64("seed", time.Now().UnixNano(), "random seed")
	stones := fs.Int("stones", 600, "stones to scatter")
	diamonds := fs.Int("diamonds", 40, "diamonds to scatter (diamond tier)")
	bats := fs.Int("bats", 12, "bats to scatter (occupant tier)")
	ats := fs.Int("ats", 1, "ats to scatter (occupant tier)")
	top := fs.Uint("top", 0, "topmost visible layer")
	bottom := fs.Uint("bottom", 10, "deepest layer consulted for background colour")
	sweep := fs.Duration("sweep", 0, "advance one layer this often, wrapping at the bottom")
	dump := fs.Bool("dump", false, "print one frame to stdout and exit")
	logPath := fs.String("log", "", "append logs to this file")
	locales := fs.String("locales", "", "directory holding gettext catalogues")
	lang := fs.String("lang", "en_US", "catalogue language")
	if err := fs.Parse(args); err != nil {
		return view.Options{}, false, "", err
	}
	if *top > 255 || *bottom > 255 {
		return view.Options{}, false, "", fmt.Errorf("-top and -bottom must be at most 255")
	}
	if *locales != "" {
		gotext.Configure(*locales, *lang, "default")
	}

	opts := view.Options{
		Tier:     view.Tier(*tier),
		Default:  *def,
		Bounds:   fitTerminal(voxel.Bounds{Width: *width, Height: *height, Depth: *depth}, os.Stdout),
		Seed:     *seed,
		Stones:   *stones,
		Diamonds: *diamonds,
		Bats:     *bats,
		Ats:      *ats,
		Top:      uint8(*top),
		Bottom:   uint8(*bottom),
		Sweep:    *sweep,
	}
	return opts, *dump, *logPath, nil
}

// fitTerminal replaces a zero width or height with the size of the terminal
// behind out, keeping the bottom row free for the status line. Terminal-derived
// sizes are capped at generate.MaxExtent.
func fitTerminal(b voxel.Bounds, out *os.File) voxel.Bounds {
	if b.Width != 0 && b.Height != 0 {
		return b
	}
	w, h := ansi.TerminalSize(out)
	if b.Width == 0 {
		b.Width = min(w, generate.MaxExtent)
	}
	if b.Height == 0 {
		b.Height = min(max(h-1, 1), generate.MaxExtent)
	}
	return b
}

func run(opts view.Options, dump bool, logPath string) error {
	if dump {
		w, h := ansi.TerminalSize(os.Stdout)
		return view.Dump(os.Stdout, opts, w, h-1)
	}

	logger, closeLog, err := openLogger(logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	logger.Info("viewer started", "tier", opts.Tier, "seed", opts.Seed)
	return view.Run(screen, opts, logger)
}

// openLogger returns a logger writing to path, or discarding everything when
// path is empty; the terminal itself belongs to tcell.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, nil)), func() { f.Close() }, nil
}
