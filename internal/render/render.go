// apps/go-term/internal/render/render.go
//
// Terminal renderer for the game board.
// Responsibilities:
//   - Full clear-and-redraw of guess history, the row being composed, and the keyboard.
//   - Transient notices: "NOT A WORD" in place of the row, blocked-letter tile + warning.
//   - Decorative effects: typewriter text, bounded blink, blink until a key is pressed.
//   - End-of-game summary line.
//
// The renderer holds no game state: every Draw receives a Frame built by the caller.

package render

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/terminal"
)

// Prompt precedes the row being composed.
const Prompt = "Enter your guess: "

// RejectedText replaces the row when a submitted word is not in the word list.
const RejectedText = "NOT A WORD"

// keyboardRows is the QWERTY layout drawn under the board.
var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

// NoticeKind selects a transient message.
type NoticeKind uint8

const (
	NoticeNone NoticeKind = iota
	NoticeRejected
	NoticeBlocked
)

// Notice is a transient message drawn with a frame.
type Notice struct {
	Kind   NoticeKind
	Letter rune // blocked letter
	Index  int  // slot the blocked letter was typed into
}

// Frame is everything one redraw shows.
type Frame struct {
	History  []game.Record
	Draft    *game.Draft // nil when no guess is being composed
	Keyboard *game.Keyboard
	Notice   Notice
}

// Pacing holds the delays of decorative effects.
type Pacing struct {
	TypeDelay     time.Duration
	BlinkInterval time.Duration
}

// Renderer draws frames and effects on a Screen.
type Renderer struct {
	scr    *terminal.Screen
	keys   *terminal.Keys
	pacing Pacing
}

// New returns a Renderer. keys is observed by blink effects and paced typing.
func New(scr *terminal.Screen, keys *terminal.Keys, pacing Pacing) *Renderer {
	return &Renderer{scr: scr, keys: keys, pacing: pacing}
}

// Paint colors text for inclusion in messages.
func (r *Renderer) Paint(c terminal.Color, text string) string {
	return r.scr.Paint(c, text)
}

// MarkColor maps a mark to its display color.
func MarkColor(m game.Mark) terminal.Color {
	switch m {
	case game.MarkCorrect:
		return terminal.ColorGreen
	case game.MarkPresent:
		return terminal.ColorYellow
	case game.MarkAbsent:
		return terminal.ColorGrey
	default:
		return terminal.ColorWhite
	}
}

// Draw clears the screen and redraws f.
func (r *Renderer) Draw(f Frame) error {
	if err := r.scr.Clear(); err != nil {
		return err
	}
	var b strings.Builder
	for _, rec := range f.History {
		r.writeRecord(&b, rec)
		b.WriteByte('\n')
	}
	if f.Draft != nil {
		r.writeRow(&b, f.Draft, f.Notice)
	}
	b.WriteByte('\n')
	r.writeKeyboard(&b, f.Keyboard)
	if f.Notice.Kind == NoticeBlocked {
		b.WriteString(r.Paint(terminal.ColorGrey, strings.Repeat("-", 26)))
		b.WriteByte('\n')
		b.WriteString(r.Paint(terminal.ColorRed, BlockedText(f.Notice.Letter)))
		b.WriteByte('\n')
	}
	return r.scr.WriteString(b.String())
}

// BlockedText is the warning shown when a restricted letter is typed.
func BlockedText(letter rune) string {
	return fmt.Sprintf("⚠️  %c is not allowed.", letter)
}

func (r *Renderer) writeRecord(b *strings.Builder, rec game.Record) {
	for _, t := range rec {
		b.WriteString(r.Paint(MarkColor(t.Mark), string(t.Letter)))
	}
}

func (r *Renderer) writeRow(b *strings.Builder, d *game.Draft, n Notice) {
	b.WriteString("\r" + Prompt)
	if n.Kind == NoticeRejected {
		b.WriteString(r.Paint(terminal.ColorRed, RejectedText))
		return
	}
	for i, slot := range d.Slots() {
		switch {
		case n.Kind == NoticeBlocked && n.Index == i:
			b.WriteString(r.Paint(terminal.ColorRed, "[X]"))
		case slot == 0:
			b.WriteString(r.Paint(terminal.ColorGrey, "_"))
		default:
			b.WriteString(r.Paint(terminal.ColorWhite, string(slot)))
		}
		b.WriteByte(' ')
	}
}

func (r *Renderer) writeKeyboard(b *strings.Builder, k *game.Keyboard) {
	widest := 0
	for _, row := range keyboardRows {
		widest = max(widest, len(row))
	}
	inner := widest*2 + 2

	b.WriteByte('\n')
	b.WriteString("┌" + strings.Repeat("─", inner) + "┐\n")
	for _, row := range keyboardRows {
		b.WriteString("│ ")
		for _, ch := range row {
			m := game.MarkUnseen
			if k != nil {
				m = k.Mark(ch)
			}
			b.WriteString(r.Paint(MarkColor(m), string(ch)))
			b.WriteByte(' ')
		}
		b.WriteString(strings.Repeat(" ", inner-1-len(row)*2))
		b.WriteString("│\n")
	}
	b.WriteString("└" + strings.Repeat("─", inner) + "┘\n")
}

// Type writes msg one character at a time. Escape sequences are written whole.
// An interrupt during the delays writes the rest at once.
func (r *Renderer) Type(ctx context.Context, msg string, newline bool) error {
	rush := false
	for i := 0; i < len(msg); {
		if n := terminal.SequenceLen(msg[i:]); n > 0 {
			if err := r.scr.WriteString(msg[i : i+n]); err != nil {
				return err
			}
			i += n
			continue
		}
		_, size := utf8.DecodeRuneInString(msg[i:])
		if err := r.scr.WriteString(msg[i : i+size]); err != nil {
			return err
		}
		i += size
		if rush {
			continue
		}
		interrupted, err := r.keys.Pause(ctx, r.pacing.TypeDelay)
		if err != nil {
			return err
		}
		rush = interrupted
	}
	if newline {
		return r.scr.WriteString("\n")
	}
	return nil
}

// BlinkUntilKey types msg, then alternates it with blank until a key is pressed.
// The key is consumed. An interrupt also ends the loop.
func (r *Renderer) BlinkUntilKey(ctx context.Context, msg string) error {
	stop, err := r.blinkStart(ctx, msg)
	for err == nil && !stop {
		stop, err = r.blinkCycle(ctx, msg)
		if err == nil && !stop {
			stop = r.keys.Pressed()
		}
	}
	return r.blinkEnd(msg, err)
}

func (r *Renderer) blinkStart(ctx context.Context, msg string) (bool, error) {
	if err := r.Type(ctx, msg, false); err != nil {
		return false, err
	}
	interrupted, err := r.keys.Pause(ctx, r.pacing.BlinkInterval)
	if err != nil {
		return false, err
	}
	return interrupted, r.scr.WriteString("\r")
}

// blinkCycle shows blank then msg, one interval each.
func (r *Renderer) blinkCycle(ctx context.Context, msg string) (bool, error) {
	if err := r.scr.WriteString(strings.Repeat(" ", terminal.Width(msg)) + "\r"); err != nil {
		return false, err
	}
	if interrupted, err := r.keys.Pause(ctx, r.pacing.BlinkInterval); err != nil || interrupted {
		return interrupted, err
	}
	if err := r.scr.WriteString(msg + "\r"); err != nil {
		return false, err
	}
	return r.keys.Pause(ctx, r.pacing.BlinkInterval)
}

func (r *Renderer) blinkEnd(msg string, err error) error {
	if err != nil {
		return err
	}
	return r.scr.WriteString("\r" + msg + "\n")
}

// Summary prints the end-of-game line.
func (r *Renderer) Summary(won bool, attempts int, answer string) error {
	if won {
		return r.scr.WriteString("\n" + r.Paint(terminal.ColorGreen, fmt.Sprintf("You guessed it in %d attempts!", attempts)) + "\n")
	}
	return r.scr.WriteString("\n" + r.Paint(terminal.ColorRed, "Out of guesses! The word was: "+answer) + "\n")
}

// Line prints text in color c followed by a newline.
func (r *Renderer) Line(c terminal.Color, text string) error {
	return r.scr.WriteString(r.Paint(c, text) + "\n")
}

// Clear erases the screen.
func (r *Renderer) Clear() error { return r.scr.Clear() }
