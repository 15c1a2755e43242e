// apps/go-term/internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (correct/present/absent), plus Unseen for the keyboard.
//   - Tile/Record: one scored guess.
//   - Status: playing → won/lost.
//   - Game: state for a single in-progress or finished game.

package game

import "strings"

// Mark represents the evaluation result for a single letter.
// Values are ordered by rank so a higher Mark is better information:
//   - Unseen:  letter not guessed yet (keyboard only).
//   - Absent:  letter does not exist in the target, or all its occurrences are used up.
//   - Present: letter exists in the target but in a different position.
//   - Correct: letter is in the correct position.
type Mark uint8

const (
	MarkUnseen Mark = iota
	MarkAbsent
	MarkPresent
	MarkCorrect
)

func (m Mark) String() string {
	switch m {
	case MarkAbsent:
		return "absent"
	case MarkPresent:
		return "present"
	case MarkCorrect:
		return "correct"
	default:
		return "unseen"
	}
}

// Tile is one letter of a scored guess.
type Tile struct {
	Letter rune
	Mark   Mark
}

// Record is a scored guess, in letter order. Records are never mutated after scoring.
type Record []Tile

// Word returns the guessed word.
func (r Record) Word() string {
	var b strings.Builder
	for _, t := range r {
		b.WriteRune(t.Letter)
	}
	return b.String()
}

// Solved reports whether every tile is Correct.
func (r Record) Solved() bool {
	if len(r) == 0 {
		return false
	}
	for _, t := range r {
		if t.Mark != MarkCorrect {
			return false
		}
	}
	return true
}

// Marks returns the marks of r, in letter order.
func (r Record) Marks() []Mark {
	out := make([]Mark, len(r))
	for i, t := range r {
		out[i] = t.Mark
	}
	return out
}

// Status is the coarse state of a game.
type Status uint8

const (
	StatusPlaying Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "playing"
	}
}

// Game holds the state of a single Wordle game session.
type Game struct {
	ID       string    // Session identifier (UUID), used in logs.
	Answer   string    // The target word (always uppercase).
	Rows     int       // Maximum number of guesses allowed (typically 6).
	Cols     int       // Number of letters per word (typically 5).
	History  []Record  // Scored guesses, in attempt order.
	Keyboard *Keyboard // Best mark per letter and restricted letters.
	status   Status
}
