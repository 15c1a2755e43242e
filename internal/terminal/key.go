package terminal

import "unicode/utf8"

// Key distinguishes input event categories.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyInterrupt
)

func (k Key) String() string {
	switch k {
	case KeyRune:
		return "rune"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyEscape:
		return "escape"
	case KeyInterrupt:
		return "interrupt"
	default:
		return "none"
	}
}

// Event is one decoded keystroke. Rune is set for KeyRune only.
type Event struct {
	Key  Key
	Rune rune
}

// Rune returns a KeyRune event for r.
func Rune(r rune) Event { return Event{Key: KeyRune, Rune: r} }

// Decode turns raw terminal bytes into key events.
// CR, LF and CRLF are Enter; DEL and BS are Backspace; Ctrl-C is Interrupt.
// CSI/SS3 sequences (arrows, function keys) and other control bytes are dropped.
func Decode(data []byte) []Event {
	out, _ := decode(data, false)
	return out
}

// Decoder decodes a stream that arrives in chunks. An escape sequence cut
// off at the end of a chunk is held until the next one completes it.
type Decoder struct {
	pending []byte
}

// Feed decodes the next chunk.
func (d *Decoder) Feed(data []byte) []Event {
	var out []Event
	if len(d.pending) == 1 && len(data) > 0 && data[0] != '[' && data[0] != 'O' {
		// the held ESC was a key of its own
		out = append(out, Event{Key: KeyEscape})
		d.pending = d.pending[:0]
	}
	buf := append(d.pending, data...)
	evs, n := decode(buf, true)
	d.pending = append([]byte(nil), buf[n:]...)
	return append(out, evs...)
}

// Flush decodes whatever is still held, for use once the stream has ended.
func (d *Decoder) Flush() []Event {
	evs := Decode(d.pending)
	d.pending = nil
	return evs
}

// decode returns the events in data and the number of bytes consumed.
// With partial set it stops before an unfinished escape sequence at the end.
func decode(data []byte, partial bool) ([]Event, int) {
	var out []Event
	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b == '\r' || b == '\n':
			out = append(out, Event{Key: KeyEnter})
			i++
			if b == '\r' && i < len(data) && data[i] == '\n' {
				i++
			}
		case b == 0x7f || b == 0x08:
			out = append(out, Event{Key: KeyBackspace})
			i++
		case b == 0x03:
			out = append(out, Event{Key: KeyInterrupt})
			i++
		case b == 0x1b:
			n, complete := escapeLen(data[i:])
			if !complete && partial {
				return out, i
			}
			if n == 1 {
				out = append(out, Event{Key: KeyEscape})
			}
			i += n
		case b < 0x20:
			i++
		default:
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				out = append(out, Rune(r))
			}
			i += size
		}
	}
	return out, i
}

// escapeLen returns how many bytes the escape sequence at data[0] spans and
// whether data holds all of it. A lone ESC spans one byte.
func escapeLen(data []byte) (int, bool) {
	if len(data) < 2 {
		return 1, false
	}
	switch data[1] {
	case '[': // CSI: parameters up to a final byte in 0x40–0x7e
		for j := 2; j < len(data); j++ {
			if data[j] >= 0x40 && data[j] <= 0x7e {
				return j + 1, true
			}
		}
		return len(data), false
	case 'O': // SS3
		if len(data) >= 3 {
			return 3, true
		}
		return len(data), false
	case 0x1b:
		return 1, true
	default: // Alt+key
		return 2, true
	}
}
