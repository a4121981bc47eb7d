// Package ssh adapts SSH sessions so tcell can drive them as terminals.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

var _ tcell.Tty = (*SessionTty)(nil)

// SessionTty implements tcell.Tty on top of an SSH channel. Every connected
// client gets its own SessionTty and tcell.Screen.
type SessionTty struct {
	rw     io.ReadWriteCloser
	mu     sync.Mutex
	window gossh.Window
	winCh  <-chan gossh.Window
	cb     func()
	once   sync.Once
}

// NewSessionTty wraps an SSH session. pty carries the initial window size;
// winCh delivers later resizes.
func NewSessionTty(s gossh.Session, pty gossh.Pty, winCh <-chan gossh.Window) *SessionTty {
	return newTty(s, pty.Window, winCh)
}

func newTty(rw io.ReadWriteCloser, win gossh.Window, winCh <-chan gossh.Window) *SessionTty {
	return &SessionTty{rw: rw, window: win, winCh: winCh}
}

// Read returns keyboard input from the client.
func (t *SessionTty) Read(b []byte) (int, error) { return t.rw.Read(b) }

// Write sends rendered output to the client.
func (t *SessionTty) Write(b []byte) (int, error) { return t.rw.Write(b) }

// Close closes the SSH channel.
func (t *SessionTty) Close() error { return t.rw.Close() }

// Start is a no-op; the channel is already open.
func (t *SessionTty) Start() error { return nil }

// Stop is a no-op; the server handler owns the channel.
func (t *SessionTty) Stop() error { return nil }

// Drain is a no-op; SSH writes are not buffered here.
func (t *SessionTty) Drain() error { return nil }

// WindowSize returns the client's current terminal size.
func (t *SessionTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb for window changes. The first call starts the
// goroutine that drains winCh for the life of the session; later calls only
// replace the callback.
func (t *SessionTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.cb = cb
	t.mu.Unlock()

	t.once.Do(func() {
		go func() {
			for win := range t.winCh {
				t.mu.Lock()
				t.window = win
				fn := t.cb
				t.mu.Unlock()
				if fn != nil {
					fn()
				}
			}
		}()
	})
}
