package terminal

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Terminal owns stdin/stdout for the lifetime of the process.
type Terminal struct {
	Screen *Screen
	Keys   *Keys

	fd     int
	state  *term.State
	sigc   chan os.Signal
	closed bool
}

// IsTerminal reports whether f is attached to a terminal (Cygwin/MSYS included).
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Open puts stdin into raw mode when it is a terminal and starts reading keys.
// SIGINT is delivered as a KeyInterrupt event. Close must be called to restore the terminal.
func Open(noColor bool) (*Terminal, error) {
	t := &Terminal{fd: int(os.Stdin.Fd())}
	raw := IsTerminal(os.Stdin)
	if raw {
		st, err := term.MakeRaw(t.fd)
		if err != nil {
			return nil, fmt.Errorf("terminal: raw mode: %w", err)
		}
		t.state = st
	}

	t.Screen = NewScreen(colorable.NewColorableStdout(), ScreenOptions{
		Color: IsTerminal(os.Stdout) && !noColor,
		CRLF:  raw,
	})

	t.sigc = make(chan os.Signal, 1)
	signal.Notify(t.sigc, os.Interrupt)

	keys := make(chan Event, 64)
	out := make(chan Event, 64)
	go readLoop(os.Stdin, keys)
	go mergeLoop(keys, t.sigc, out)
	t.Keys = NewKeys(out)
	return t, nil
}

// Close shows the cursor again and restores the original terminal mode.
// Calls after the first do nothing.
func (t *Terminal) Close() error {
	if t.closed {
		return nil
	}
	t.closed = true
	if t.sigc != nil {
		signal.Stop(t.sigc)
	}
	_ = t.Screen.ShowCursor()
	if t.state != nil {
		return term.Restore(t.fd, t.state)
	}
	return nil
}

// CloseOnPanic restores the terminal when the calling goroutine is
// panicking, then panics again with the same value. Use it with defer.
func (t *Terminal) CloseOnPanic() {
	if p := recover(); p != nil {
		_ = t.Close()
		panic(p)
	}
}

// readLoop decodes r until it fails, then closes out.
func readLoop(r io.Reader, out chan<- Event) {
	defer close(out)
	var dec Decoder
	buf := make([]byte, 256)
	for {
		n, err := r.Read(buf)
		for _, ev := range dec.Feed(buf[:n]) {
			out <- ev
		}
		if err != nil {
			for _, ev := range dec.Flush() {
				out <- ev
			}
			return
		}
	}
}

// mergeLoop forwards keys and turns signals into interrupt events.
func mergeLoop(keys <-chan Event, sigc <-chan os.Signal, out chan<- Event) {
	defer close(out)
	for {
		select {
		case ev, ok := <-keys:
			if !ok {
				return
			}
			out <- ev
		case <-sigc:
			out <- Event{Key: KeyInterrupt}
		}
	}
}
