// apps/go-term/internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Create new games with the configured dimensions (default 6x5).
//   - Score guesses using the classic two‑pass Wordle algorithm.
//   - Apply validated guesses: append history, update the keyboard.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Word-list membership is checked by the input controller before a guess
//     reaches ApplyGuess; the engine only checks shape.
//   - Everything here is uppercase A–Z.

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DefaultRows is the number of guesses when none is configured.
const DefaultRows = 6

var (
	// ErrFinished is returned by ApplyGuess once the game is won or lost.
	ErrFinished = errors.New("game finished")
	// ErrInvalidGuess is returned for guesses of the wrong length or with non-letters.
	ErrInvalidGuess = errors.New("invalid guess")
)

// New constructs a new game for answer with at most rows guesses.
// The answer length fixes the number of columns.
func New(answer string, rows int) *Game {
	if rows <= 0 {
		rows = DefaultRows
	}
	answer = strings.ToUpper(answer)
	return &Game{
		ID:       uuid.NewString(),
		Answer:   answer,
		Rows:     rows,
		Cols:     len(answer),
		Keyboard: NewKeyboard(),
	}
}

// ApplyGuess scores a guess and mutates the game state.
// Returns the scored record or an error.
//
// State transitions:
//   - If all tiles are Correct → won.
//   - Else if the number of guesses reaches g.Rows → lost.
func (g *Game) ApplyGuess(guess string) (Record, error) {
	if g.Finished() {
		return nil, ErrFinished
	}
	guess = strings.ToUpper(strings.TrimSpace(guess))
	if len(guess) != g.Cols || !isAlpha(guess) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}

	rec, err := Evaluate(g.Answer, guess)
	if err != nil {
		return nil, err
	}
	g.History = append(g.History, rec)
	g.Keyboard.Update(rec)

	if rec.Solved() {
		g.status = StatusWon
	} else if len(g.History) >= g.Rows {
		g.status = StatusLost
	}
	return rec, nil
}

// Attempts reports how many validated guesses have been applied.
func (g *Game) Attempts() int { return len(g.History) }

// Status reports the current game state.
func (g *Game) Status() Status { return g.status }

// Finished reports whether the game is won or lost.
func (g *Game) Finished() bool { return g.status != StatusPlaying }

// Evaluate scores guess against target and pairs each letter with its mark.
func Evaluate(target, guess string) (Record, error) {
	if len(target) != len(guess) {
		return nil, fmt.Errorf("%w: length %d, want %d", ErrInvalidGuess, len(guess), len(target))
	}
	marks := Score(target, guess)
	rec := make(Record, len(guess))
	for i := 0; i < len(guess); i++ {
		rec[i] = Tile{Letter: rune(guess[i]), Mark: marks[i]}
	}
	return rec, nil
}

// Score implements the standard Wordle two‑pass scoring algorithm.
// target and guess must be uppercase A–Z of equal length.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count remaining (non‑correct) target letters by letter index.
//
// Pass 2:
//   - Left to right, for each non‑correct guess letter: if there is remaining
//     count for that letter, mark Present and decrement the count; otherwise Absent.
//
// This ensures correct behavior with repeated letters in both target and guess.
func Score(target, guess string) []Mark {
	n := len(guess)
	res := make([]Mark, n)

	// Letter frequency for the non‑correct positions (A–Z).
	var counts [26]int

	for i := 0; i < n; i++ {
		if guess[i] == target[i] {
			res[i] = MarkCorrect
		} else if j := idx(target[i]); j >= 0 {
			counts[j]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkCorrect {
			continue
		}
		j := idx(guess[i])
		if j >= 0 && counts[j] > 0 {
			res[i] = MarkPresent
			counts[j]--
		} else {
			res[i] = MarkAbsent
		}
	}
	return res
}

// idx maps an uppercase ASCII letter to 0..25, or -1.
func idx(b byte) int {
	if b < 'A' || b > 'Z' {
		return -1
	}
	return int(b - 'A')
}

// isAlpha checks that a string consists only of uppercase A–Z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
