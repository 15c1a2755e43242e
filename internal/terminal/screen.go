package terminal

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Color is a foreground color. The zero value leaves text unstyled.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGrey
)

// SGR foreground codes, indexed by Color
var sgrFg = [...]int{
	ColorDefault: 39,
	ColorRed:     31,
	ColorGreen:   32,
	ColorYellow:  33,
	ColorBlue:    34,
	ColorMagenta: 35,
	ColorCyan:    36,
	ColorWhite:   37,
	ColorGrey:    90,
}

const (
	csiReset      = "\x1b[0m"
	csiSoftClear  = "\x1b[H\x1b[J"
	csiCursorHide = "\x1b[?25l"
	csiCursorShow = "\x1b[?25h"
)

// ScreenOptions controls output translation.
type ScreenOptions struct {
	Color bool // emit SGR color sequences
	CRLF  bool // translate "\n" to "\r\n" (raw mode disables output post-processing)
}

// Screen writes styled text to a terminal.
type Screen struct {
	w    io.Writer
	opts ScreenOptions
}

// NewScreen returns a Screen writing to w.
func NewScreen(w io.Writer, opts ScreenOptions) *Screen {
	return &Screen{w: w, opts: opts}
}

// Paint wraps text in the color's SGR sequence and a reset.
func (s *Screen) Paint(c Color, text string) string {
	if !s.opts.Color || c == ColorDefault || text == "" {
		return text
	}
	return "\x1b[" + strconv.Itoa(sgrFg[c]) + "m" + text + csiReset
}

// Write implements io.Writer, applying newline translation.
func (s *Screen) Write(p []byte) (int, error) {
	if !s.opts.CRLF || bytes.IndexByte(p, '\n') < 0 {
		return s.w.Write(p)
	}
	// keep any existing "\r\n" as is
	q := bytes.ReplaceAll(p, []byte("\r\n"), []byte("\n"))
	q = bytes.ReplaceAll(q, []byte("\n"), []byte("\r\n"))
	if _, err := s.w.Write(q); err != nil {
		return 0, err
	}
	return len(p), nil
}

// WriteString writes str.
func (s *Screen) WriteString(str string) error {
	_, err := io.WriteString(s, str)
	return err
}

// Clear moves the cursor home and erases the screen below it.
func (s *Screen) Clear() error { return s.WriteString(csiSoftClear) }

// HideCursor hides the terminal cursor.
func (s *Screen) HideCursor() error { return s.WriteString(csiCursorHide) }

// ShowCursor shows the terminal cursor.
func (s *Screen) ShowCursor() error { return s.WriteString(csiCursorShow) }

// StripANSI removes CSI escape sequences from s.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] == 0x1b {
			i += SequenceLen(s[i:])
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// SequenceLen returns the byte length of the escape sequence at the start of s,
// or 0 when s does not start with ESC.
func SequenceLen(s string) int {
	if s == "" || s[0] != 0x1b {
		return 0
	}
	n, _ := escapeLen([]byte(s))
	return n
}

// Width returns the number of terminal cells s occupies, ignoring escape sequences.
func Width(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}
