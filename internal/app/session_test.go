package app

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/robalobadob/wordle/apps/go-term/internal/game"
	"github.com/robalobadob/wordle/apps/go-term/internal/terminal"
	"github.com/robalobadob/wordle/apps/go-term/internal/words"
)

func newSession(t *testing.T, answer, typed string, attempts int) (*Session, *bytes.Buffer) {
	t.Helper()
	return newSessionWith(t, answer, typed, Options{MaxAttempts: attempts})
}

func newSessionWith(t *testing.T, answer, typed string, opts Options) (*Session, *bytes.Buffer) {
	t.Helper()
	set, err := words.Load(strings.NewReader("crane\nbrace\nreact\nslate\nfloor\n"), 5)
	if err != nil {
		t.Fatal(err)
	}
	evs := terminal.Decode([]byte(typed))
	ch := make(chan terminal.Event, len(evs))
	for _, ev := range evs {
		ch <- ev
	}
	close(ch)

	var buf bytes.Buffer
	scr := terminal.NewScreen(&buf, terminal.ScreenOptions{})
	return NewSession(set, answer, scr, terminal.NewKeys(ch), opts, zerolog.Nop()), &buf
}

func TestSessionWin(t *testing.T) {
	// x dismisses the intro; zzzzz is rejected and does not count
	s, buf := newSession(t, "CRANE", "xreact\rzzzzz\rcrane\r", 6)
	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	want := Result{Won: true, Attempts: 2, Answer: "CRANE"}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
	if s.Phase() != PhaseEnd {
		t.Errorf("phase = %v, want end", s.Phase())
	}
	out := buf.String()
	for _, w := range []string{"Welcome to Wordle!", "guess 5 letter words", "Press any button to play!", "NOT A WORD", "You guessed it in 2 attempts!"} {
		if !strings.Contains(out, w) {
			t.Errorf("output missing %q", w)
		}
	}
	if !strings.HasPrefix(out, "\x1b[?25l") {
		t.Error("cursor not hidden at start")
	}
}

func TestSessionLoss(t *testing.T) {
	s, buf := newSession(t, "CRANE", "xreact\rbrace\r", 2)
	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Won || res.Attempts != 2 || res.Cancelled {
		t.Errorf("result = %+v, want loss after 2", res)
	}
	if !strings.Contains(buf.String(), "Out of guesses! The word was: CRANE") {
		t.Errorf("target not revealed:\n%s", buf.String())
	}

	g := s.Game()
	if g.Status() != game.StatusLost {
		t.Errorf("status = %v, want lost", g.Status())
	}
	if diff := cmp.Diff([]string{"REACT", "BRACE"}, []string{g.History[0].Word(), g.History[1].Word()}); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
	if !g.Keyboard.Restricted('T') || !g.Keyboard.Restricted('B') {
		t.Errorf("restricted = %q, want T and B", string(g.Keyboard.RestrictedLetters()))
	}
}

func TestSessionNoInputAfterWin(t *testing.T) {
	s, _ := newSession(t, "CRANE", "xcrane\rreact\r", 6)
	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Won || res.Attempts != 1 {
		t.Errorf("result = %+v, want win in 1", res)
	}
	if len(s.Game().History) != 1 {
		t.Errorf("guesses after the win were scored: %d", len(s.Game().History))
	}
}

func TestSessionCancel(t *testing.T) {
	// escape is ignored; input ending mid-guess abandons the game
	s, buf := newSession(t, "CRANE", "xcr\x1b", 6)
	res, err := s.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Cancelled || res.Won || res.Attempts != 0 {
		t.Errorf("result = %+v, want cancelled", res)
	}
	if !strings.Contains(buf.String(), "Game abandoned. The word was: CRANE") {
		t.Errorf("target not revealed on cancel:\n%s", buf.String())
	}
}

func TestSessionIntroPacing(t *testing.T) {
	s, _ := newSessionWith(t, "CRANE", "xcrane\r", Options{
		MaxAttempts: 6,
		IntroPause:  20 * time.Millisecond,
		LegendPause: 10 * time.Millisecond,
	})
	start := time.Now()
	if _, err := s.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	// two paragraphs and four legend lines, with no blink interval configured
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Errorf("intro took %v, want at least 80ms of pauses", elapsed)
	}
}

func TestSessionContextCancelled(t *testing.T) {
	s, _ := newSession(t, "CRANE", "x", 6)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Run(ctx); err == nil {
		t.Fatal("expected an error from a cancelled context")
	}
}

func TestMarksString(t *testing.T) {
	rec, err := game.Evaluate("CRANE", "REACT")
	if err != nil {
		t.Fatal(err)
	}
	if got := marks(rec.Marks()).String(); got != "PPCPA" {
		t.Errorf("marks = %q, want PPCPA", got)
	}
}
