package view

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gdamore/tcell/v2"

	"voxel-roguelike/internal/render"
	"voxel-roguelike/internal/render/ansi"
	termscreen "voxel-roguelike/internal/render/screen"
)

// statusRows is reserved at the bottom of the screen for the status line.
const statusRows = 1

var statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)

// Viewer shows a Scene on a tcell screen and reacts to key presses.
type Viewer struct {
	screen tcell.Screen
	scene  Scene
	hasher *render.Hasher
	sweep  time.Duration
	log    *slog.Logger
	last   uint64
}

// NewViewer wires sc to s. The caller keeps ownership of s.
func NewViewer(s tcell.Screen, sc Scene, sweep time.Duration, logger *slog.Logger) *Viewer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Viewer{
		screen: s,
		scene:  sc,
		hasher: render.NewHasher(termscreen.New(s)),
		sweep:  sweep,
		log:    logger,
	}
}

// Draw renders the scene and the status line. Unless force is set, the screen
// is only flushed when the frame differs from the last one shown.
func (v *Viewer) Draw(force bool) bool {
	w, h := v.screen.Size()
	viewH := h - statusRows
	if viewH < 0 {
		viewH = 0
	}

	v.hasher.Reset()
	v.scene.Render(v.hasher, w, viewH)
	status := v.scene.Status()
	sum := v.hasher.Sum() ^ xxhash.Sum64String(status)
	if !force && sum == v.last {
		return false
	}
	v.last = sum

	if h > 0 {
		termscreen.DrawStatus(v.screen, h-1, status, statusStyle)
	}
	v.screen.Show()
	return true
}

// Handle processes one event and reports whether the viewer should exit.
func (v *Viewer) Handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		v.screen.Sync()
		v.Draw(true)
	case *tcell.EventKey:
		a := keyToAction(ev)
		if a == ActionQuit {
			return true
		}
		if err := v.scene.Apply(a); err != nil {
			v.log.Warn("viewer action failed", "action", a, "error", err)
		}
		v.Draw(false)
	case *tcell.EventInterrupt:
		v.scene.Sweep()
		v.Draw(false)
	}
	return false
}

// Run draws the first frame and loops until quit or the screen is finalized.
func (v *Viewer) Run() {
	if v.sweep > 0 {
		done := make(chan struct{})
		defer close(done)
		go v.tick(done)
	}

	v.Draw(true)
	for {
		ev := v.screen.PollEvent()
		if ev == nil {
			return
		}
		if v.Handle(ev) {
			return
		}
	}
}

// tick posts an interrupt every sweep interval until done is closed.
func (v *Viewer) tick(done <-chan struct{}) {
	t := time.NewTicker(v.sweep)
	defer t.Stop()
	for {
		select {
		case <-done:
			return
		case <-t.C:
			_ = v.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
	}
}

// Run builds the scene described by opts and shows it on s until the user quits.
func Run(s tcell.Screen, opts Options, logger *slog.Logger) error {
	sc, err := NewScene(opts)
	if err != nil {
		return err
	}
	NewViewer(s, sc, opts.Sweep, logger).Run()
	return nil
}

// Dump renders a single width×height frame of the scene described by opts to w.
func Dump(w io.Writer, opts Options, width, height int) error {
	sc, err := NewScene(opts)
	if err != nil {
		return err
	}
	f := ansi.NewFrame(width, height)
	sc.Render(f, width, height)
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
