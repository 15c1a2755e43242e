// apps/go-term/internal/input/controller.go
//
// Input controller for composing one guess.
// Responsibilities:
//   - Consume key events into the Draft (letters, backspace, enter).
//   - Block restricted letters with a transient tile + warning.
//   - Reject words outside the word list with a transient "NOT A WORD" and a reset.
//   - Hand a valid word back to the caller; nothing else leaves the controller.
//
// States: composing → submitting → (valid: return) | rejected → composing;
//         composing → blocked → composing.

package input

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/render"
	"github.com/robalobadob/wordle/apps/go-term/internal/terminal"
)

// ErrCancelled is returned by ReadGuess when input ends.
var ErrCancelled = errors.New("guess cancelled")

// State is the controller's position in the compose cycle.
type State uint8

const (
	StateComposing State = iota
	StateSubmitting
	StateRejected
	StateBlocked
)

func (s State) String() string {
	switch s {
	case StateSubmitting:
		return "submitting"
	case StateRejected:
		return "rejected"
	case StateBlocked:
		return "blocked"
	default:
		return "composing"
	}
}

// Dictionary reports whether a word may be submitted.
type Dictionary interface {
	Contains(word string) bool
}

// Restrictions reports letters that may no longer be typed.
type Restrictions interface {
	Restricted(letter rune) bool
}

// Board redraws the screen around the draft being composed.
type Board interface {
	Draw(draft *game.Draft, notice render.Notice) error
}

// Controller turns key events into validated guesses.
type Controller struct {
	keys   *terminal.Keys
	dict   Dictionary
	rules  Restrictions
	board  Board
	notice time.Duration
	log    zerolog.Logger

	draft game.Draft
	state State
}

// New returns a controller for words of length letters.
// notice is how long rejection and blocked messages stay on screen.
func New(keys *terminal.Keys, dict Dictionary, rules Restrictions, board Board, length int, notice time.Duration, log zerolog.Logger) *Controller {
	return &Controller{
		keys:   keys,
		dict:   dict,
		rules:  rules,
		board:  board,
		notice: notice,
		log:    log.With().Str("component", "input").Logger(),
		draft:  game.NewDraft(length),
	}
}

// State reports the current state.
func (c *Controller) State() State { return c.state }

// Draft returns the guess being composed.
func (c *Controller) Draft() *game.Draft { return &c.draft }

// ReadGuess starts from an empty draft and blocks until a word in the
// dictionary is submitted. It returns ErrCancelled once input is closed.
func (c *Controller) ReadGuess(ctx context.Context) (string, error) {
	c.draft.Reset()
	c.state = StateComposing
	if err := c.redraw(render.Notice{}); err != nil {
		return "", err
	}
	for {
		ev, err := c.keys.Next(ctx)
		if errors.Is(err, io.EOF) {
			return "", ErrCancelled
		}
		if err != nil {
			return "", err
		}
		word, done, err := c.handle(ctx, ev)
		if err != nil || done {
			return word, err
		}
	}
}

// handle applies one key event. done is true once word is a valid submission.
func (c *Controller) handle(ctx context.Context, ev terminal.Event) (word string, done bool, err error) {
	switch ev.Key {
	case terminal.KeyEnter:
		if !c.draft.Full() {
			return "", false, nil
		}
		return c.submit(ctx)
	case terminal.KeyBackspace:
		if !c.draft.Backspace() {
			return "", false, nil
		}
		return "", false, c.redraw(render.Notice{})
	case terminal.KeyRune:
		letter, ok := upperLetter(ev.Rune)
		if !ok {
			return "", false, nil
		}
		if c.rules.Restricted(letter) {
			return "", false, c.block(ctx, letter)
		}
		if !c.draft.Put(letter) {
			return "", false, nil
		}
		return "", false, c.redraw(render.Notice{})
	}
	// escape, interrupts and anything else: no state change
	return "", false, nil
}

func (c *Controller) submit(ctx context.Context) (string, bool, error) {
	c.state = StateSubmitting
	word := c.draft.Word()
	if c.dict.Contains(word) {
		c.log.Debug().Str("word", word).Msg("guess submitted")
		return word, true, nil
	}

	c.state = StateRejected
	c.log.Info().Str("word", word).Msg("not in word list")
	if err := c.redraw(render.Notice{Kind: render.NoticeRejected}); err != nil {
		return "", false, err
	}
	if _, err := c.keys.Pause(ctx, c.notice); err != nil {
		return "", false, err
	}
	c.draft.Reset()
	c.state = StateComposing
	return "", false, c.redraw(render.Notice{})
}

func (c *Controller) block(ctx context.Context, letter rune) error {
	c.state = StateBlocked
	c.log.Info().Str("letter", string(letter)).Msg("restricted letter blocked")
	n := render.Notice{Kind: render.NoticeBlocked, Letter: letter, Index: c.draft.Cursor()}
	if err := c.redraw(n); err != nil {
		return err
	}
	if _, err := c.keys.Pause(ctx, c.notice); err != nil {
		return err
	}
	c.state = StateComposing
	return c.redraw(render.Notice{})
}

func (c *Controller) redraw(n render.Notice) error {
	if err := c.board.Draw(&c.draft, n); err != nil {
		return fmt.Errorf("input: redraw: %w", err)
	}
	return nil
}

// upperLetter maps a–z/A–Z to A–Z.
func upperLetter(r rune) (rune, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return r, true
	case r >= 'a' && r <= 'z':
		return r - 'a' + 'A', true
	}
	return 0, false
}
