package ssh

import (
	"bytes"
	"io"
	"testing"
	"time"

	gossh "github.com/gliderlabs/ssh"
)

type fakeChannel struct {
	bytes.Buffer
	closed bool
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

var _ io.ReadWriteCloser = (*fakeChannel)(nil)

func TestTtyPassesThroughIO(t *testing.T) {
	ch := &fakeChannel{}
	tty := newTty(ch, gossh.Window{Width: 80, Height: 24}, nil)

	if _, err := tty.Write([]byte("frame")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	buf := make([]byte, 5)
	if _, err := io.ReadFull(tty, buf); err != nil || string(buf) != "frame" {
		t.Errorf("Read=%q,%v, want frame", buf, err)
	}
	if err := tty.Close(); err != nil || !ch.closed {
		t.Errorf("Close err=%v closed=%v", err, ch.closed)
	}
}

func TestTtyWindowSizeFollowsResize(t *testing.T) {
	winCh := make(chan gossh.Window)
	tty := newTty(&fakeChannel{}, gossh.Window{Width: 80, Height: 24}, winCh)

	ws, _ := tty.WindowSize()
	if ws.Width != 80 || ws.Height != 24 {
		t.Fatalf("initial size %dx%d, want 80x24", ws.Width, ws.Height)
	}

	resized := make(chan struct{}, 4)
	tty.NotifyResize(func() { resized <- struct{}{} })
	tty.NotifyResize(func() { resized <- struct{}{} }) // replaces, does not start a second drain

	winCh <- gossh.Window{Width: 120, Height: 40}
	select {
	case <-resized:
	case <-time.After(time.Second):
		t.Fatal("resize callback not called")
	}
	ws, _ = tty.WindowSize()
	if ws.Width != 120 || ws.Height != 40 {
		t.Errorf("size after resize %dx%d, want 120x40", ws.Width, ws.Height)
	}
	close(winCh)
}
