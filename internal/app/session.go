// apps/go-term/internal/app/session.go
//
// One game from welcome screen to final message.
// Phases: intro → playing → won | lost → end.
//
// The session owns the game state (history, keyboard) and lends it read-only
// to the renderer on every redraw; the input controller owns the draft.

package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/input"
	"github.com/robalobadob/wordle/apps/go-term/internal/render"
	"github.com/robalobadob/wordle/apps/go-term/internal/terminal"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

// Phase is the session's position in its lifecycle.
type Phase uint8

const (
	PhaseIntro Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
	PhaseEnd
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	case PhaseEnd:
		return "end"
	default:
		return "intro"
	}
}

// Options configures a session.
type Options struct {
	MaxAttempts int
	Pacing      render.Pacing
	NoticeDelay time.Duration // rejection / blocked message duration
	EndHold     time.Duration // how long the final message stays up
	IntroPause  time.Duration // after each intro paragraph
	LegendPause time.Duration // after each colour legend line
}

// Result summarizes a finished session.
type Result struct {
	Won       bool
	Cancelled bool
	Attempts  int
	Answer    string
}

// Session drives a single game.
type Session struct {
	game     *game.Game
	keys     *terminal.Keys
	scr      *terminal.Screen
	renderer *render.Renderer
	input    *input.Controller
	opts     Options
	log      zerolog.Logger
	phase    Phase
}

// NewSession prepares a game for answer, which must be a member of set.
func NewSession(set *words.Set, answer string, scr *terminal.Screen, keys *terminal.Keys, opts Options, log zerolog.Logger) *Session {
	g := game.New(answer, opts.MaxAttempts)
	s := &Session{
		game:     g,
		keys:     keys,
		scr:      scr,
		renderer: render.New(scr, keys, opts.Pacing),
		opts:     opts,
		log:      log.With().Str("session", g.ID).Logger(),
	}
	s.input = input.New(keys, set, g.Keyboard, s, set.Length(), opts.NoticeDelay, s.log)
	return s
}

// Phase reports the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Game exposes the game state read-only.
func (s *Session) Game() *game.Game { return s.game }

// Draw implements input.Board.
func (s *Session) Draw(draft *game.Draft, notice render.Notice) error {
	return s.renderer.Draw(render.Frame{
		History:  s.game.History,
		Draft:    draft,
		Keyboard: s.game.Keyboard,
		Notice:   notice,
	})
}

// Run plays the intro, the guesses and the end screen.
func (s *Session) Run(ctx context.Context) (Result, error) {
	res := Result{Answer: s.game.Answer}
	s.log.Debug().Str("answer", s.game.Answer).Int("rows", s.game.Rows).Msg("session started")

	if err := s.scr.HideCursor(); err != nil {
		return res, err
	}

	s.phase = PhaseIntro
	if err := s.intro(ctx); err != nil {
		return res, fmt.Errorf("intro: %w", err)
	}

	s.phase = PhasePlaying
	for !s.game.Finished() {
		word, err := s.input.ReadGuess(ctx)
		if errors.Is(err, input.ErrCancelled) {
			res.Cancelled = true
			break
		}
		if err != nil {
			return res, err
		}
		rec, err := s.game.ApplyGuess(word)
		if err != nil {
			return res, err
		}
		s.log.Info().
			Str("guess", rec.Word()).
			Stringer("marks", marks(rec.Marks())).
			Int("attempt", s.game.Attempts()).
			Msg("guess scored")
		if err := s.Draw(nil, render.Notice{}); err != nil {
			return res, err
		}
	}
	res.Attempts = s.game.Attempts()

	if res.Cancelled {
		s.phase = PhaseEnd
		s.log.Info().Int("attempts", res.Attempts).Msg("session cancelled")
		err := s.renderer.Line(terminal.ColorRed, "\nGame abandoned. The word was: "+s.game.Answer)
		return res, err
	}

	res.Won = s.game.Status() == game.StatusWon
	if res.Won {
		s.phase = PhaseWon
	} else {
		s.phase = PhaseLost
	}
	s.log.Info().Str("status", s.game.Status().String()).Int("attempts", res.Attempts).Msg("game finished")

	if err := s.renderer.Summary(res.Won, res.Attempts, s.game.Answer); err != nil {
		return res, err
	}
	if _, err := s.keys.Pause(ctx, s.opts.EndHold); err != nil {
		return res, err
	}
	s.phase = PhaseEnd
	return res, nil
}

func (s *Session) intro(ctx context.Context) error {
	long, short := s.opts.IntroPause, s.opts.LegendPause
	paint := s.renderer.Paint

	rainbow := paint(terminal.ColorRed, "W") + paint(terminal.ColorGreen, "o") +
		paint(terminal.ColorYellow, "r") + paint(terminal.ColorBlue, "d") +
		paint(terminal.ColorMagenta, "l") + paint(terminal.ColorCyan, "e")

	lines := []struct {
		text  string
		pause time.Duration
	}{
		{"Welcome to " + rainbow + "!", long},
		{fmt.Sprintf("Your job is to guess %d letter words. I will provide feedback after each guess.", s.game.Cols), long},
		{"Each letter in your guess will be colored either:", short},
		{paint(terminal.ColorGrey, "grey") + " (if the letter is not in the word)...", short},
		{paint(terminal.ColorYellow, "yellow") + " (if the letter is in the word, but not in the right location), or...", short},
		{paint(terminal.ColorGreen, "green") + " (if the letter is in the word AND is in the right location)...", short},
	}
	for _, l := range lines {
		if err := s.renderer.Type(ctx, l.text, true); err != nil {
			return err
		}
		if _, err := s.keys.Pause(ctx, l.pause); err != nil {
			return err
		}
	}
	if err := s.renderer.BlinkUntilKey(ctx, "Press any button to play!"); err != nil {
		return err
	}
	return s.renderer.Clear()
}

// marks renders a mark slice compactly for logs, e.g. "PPCPA".
type marks []game.Mark

func (m marks) String() string {
	b := make([]byte, len(m))
	for i, x := range m {
		switch x {
		case game.MarkCorrect:
			b[i] = 'C'
		case game.MarkPresent:
			b[i] = 'P'
		default:
			b[i] = 'A'
		}
	}
	return string(b)
}
