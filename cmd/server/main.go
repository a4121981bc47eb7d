// voxel-roguelike-server serves the voxel viewer over SSH; every connection
// gets its own freshly generated map. Build:
//
//	go build -o voxel-roguelike-server ./cmd/server
//
// Usage:
//
//	./voxel-roguelike-server [--port 2222] [--key server_host_key] [--tier diamond]
//
// Connect with:
//
//	ssh -t -p 2222 localhost
package main

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"

	internalssh "voxel-roguelike/internal/ssh"
	"voxel-roguelike/internal/view"
	"voxel-roguelike/internal/voxel"
)

// allowedTerms lists the TERM values a client may ask for. Anything else
// falls back to defaultTerm so clients cannot point terminfo lookups at
// arbitrary names.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"rxvt-unicode-256color": true,
}

const defaultTerm = "xterm-256color"

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	tier := flag.String("tier", string(view.TierOccupant), "cell family: stone, diamond or occupant")
	depth := flag.Int("depth", 16, "map depth")
	stones := flag.Int("stones", 600, "stones per map")
	diamonds := flag.Int("diamonds", 40, "diamonds per map")
	bats := flag.Int("bats", 12, "bats per map")
	ats := flag.Int("ats", 1, "ats per map")
	sweep := flag.Duration("sweep", 0, "advance one layer this often")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	signer, err := loadOrCreateHostKey(*keyFile, logger)
	if err != nil {
		logger.Error("host key", "error", err)
		os.Exit(1)
	}

	h := &handler{
		log:  logger,
		seed: time.Now().UnixNano(),
		opts: view.Options{
			Tier:     view.Tier(*tier),
			Default:  "empty",
			Bounds:   voxel.Bounds{Depth: *depth},
			Stones:   *stones,
			Diamonds: *diamonds,
			Bats:     *bats,
			Ats:      *ats,
			Bottom:   10,
			Sweep:    *sweep,
		},
	}

	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", *port),
		Handler: h.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		HostSigners: []gossh.Signer{signer},
	}

	logger.Info("voxel-roguelike SSH server listening", "port", *port, "tier", *tier)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// handler serves one viewer per SSH session.
type handler struct {
	log  *slog.Logger
	opts view.Options
	seed int64
	n    atomic.Int64
}

// handleSession blocks for the life of the connection.
func (h *handler) handleSession(s gossh.Session) {
	id := h.n.Add(1)
	logger := h.log.With("session", id, "user", s.User(), "remote", s.RemoteAddr().String())

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "The viewer needs a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	// TERM must be set in the process environment before NewTerminfoScreenFromTty.
	tty := internalssh.NewSessionTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", termFromEnv(s.Environ()))
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		logger.Warn("terminal setup failed", "error", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		logger.Warn("screen init failed", "error", err)
		return
	}
	defer screen.Fini()

	opts := h.sessionOptions(id, pty.Window)
	logger.Info("session started", "seed", opts.Seed, "width", opts.Bounds.Width, "height", opts.Bounds.Height)
	if err := view.Run(screen, opts, logger); err != nil {
		fmt.Fprintf(s, "error: %v\n", err)
		logger.Warn("viewer failed", "error", err)
		return
	}
	logger.Info("session ended")
}

// sessionOptions sizes the map to the client's window and gives each
// session its own seed.
func (h *handler) sessionOptions(id int64, win gossh.Window) view.Options {
	opts := h.opts
	opts.Seed = h.seed + id
	opts.Bounds.Width = clampExtent(win.Width)
	opts.Bounds.Height = clampExtent(win.Height - 1)
	return opts
}

func clampExtent(n int) int {
	switch {
	case n < 1:
		return 1
	case n > 256:
		return 256
	}
	return n
}

// termFromEnv picks TERM from the session environment, falling back to
// defaultTerm when it is missing or not allowed.
func termFromEnv(env []string) string {
	for _, kv := range env {
		if v, ok := strings.CutPrefix(kv, "TERM="); ok {
			if allowedTerms[v] {
				return v
			}
			break
		}
	}
	return defaultTerm
}

// termMu serialises os.Setenv("TERM") around screen creation.
var termMu sync.Mutex

// loadOrCreateHostKey returns the host key stored at path. When the file is
// missing or does not parse, a fresh ed25519 key is generated and written
// there; a failed write is logged and the key is still used.
func loadOrCreateHostKey(path string, logger *slog.Logger) (gossh.Signer, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		signer, perr := xssh.ParsePrivateKey(data)
		if perr == nil {
			logger.Info("host key loaded", "path", path)
			return signer, nil
		}
		logger.Warn("host key unreadable, replacing", "path", path, "error", perr)
	}

	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("host key signer: %w", err)
	}
	block, err := xssh.MarshalPrivateKey(key, "voxel-roguelike host")
	if err != nil {
		return nil, fmt.Errorf("encode host key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		logger.Warn("host key not persisted", "path", path, "error", err)
	} else {
		logger.Info("host key generated", "path", path)
	}
	return signer, nil
}
