// apps/go-term/internal/words/words.go
//
// Provides word list management for the game engine.
//
// Responsibilities:
//   - Load the valid-word set from a file or fall back to the embedded default list.
//   - Normalize to uppercase, keep only A–Z words of the configured length, deduplicate.
//   - Supply Contains (validity check), Pick (uniform random target) and At (daily target).
//
// Source resolution (Open):
//   1. If the configured file exists, it is the only source used.
//   2. If it does not exist and embedded fallback is allowed,
//      the built-in assets/words.txt list is used.
//   3. Otherwise startup fails with a config.ConfigError.
//
// Constraints:
//   • The set is immutable once loaded.
//   • An empty filtered set is a startup error, never an empty game.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math/big"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/robalobadob/wordle/apps/go-term/assets"
	"github.com/robalobadob/wordle/apps/go-term/internal/config"
)

// EmbeddedSource names the built-in list in log lines and errors.
const EmbeddedSource = "embedded:" + assets.WordList

// ErrNoWords is returned when no word of the configured length survives filtering.
var ErrNoWords = errors.New("no words of the configured length")

// Set is the valid-word set for a session.
type Set struct {
	length int
	source string
	words  []string            // sorted, unique, uppercase
	index  map[string]struct{} // lookup for Contains
}

// Load reads one candidate word per line from r and keeps the trimmed,
// uppercased lines that are exactly length letters A–Z.
func Load(r io.Reader, length int) (*Set, error) {
	if length <= 0 {
		return nil, fmt.Errorf("words: invalid length %d", length)
	}
	s := &Set{length: length, index: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.ToUpper(strings.TrimSpace(sc.Text()))
		if utf8.RuneCountInString(w) != length || !isAlpha(w) {
			continue
		}
		if _, dup := s.index[w]; dup {
			continue
		}
		s.index[w] = struct{}{}
		s.words = append(s.words, w)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(s.words) == 0 {
		return nil, ErrNoWords
	}
	sort.Strings(s.words)
	return s, nil
}

// Open loads the set from path, or from the embedded list when path does not
// exist and allowEmbedded is set. Every failure is a *config.ConfigError.
func Open(path string, length int, allowEmbedded bool) (*Set, error) {
	f, err := os.Open(path)
	switch {
	case err == nil:
		defer f.Close()
		return loadFrom(f, path, length)
	case errors.Is(err, fs.ErrNotExist) && allowEmbedded:
		ef, eerr := assets.OpenWordList()
		if eerr != nil {
			return nil, &config.ConfigError{Key: "WORDLE_WORDS_FILE", Err: eerr}
		}
		defer ef.Close()
		return loadFrom(ef, EmbeddedSource, length)
	default:
		return nil, &config.ConfigError{Key: "WORDLE_WORDS_FILE", Err: err}
	}
}

func loadFrom(r io.Reader, source string, length int) (*Set, error) {
	s, err := Load(r, length)
	if err != nil {
		return nil, &config.ConfigError{Key: "WORDLE_WORDS_FILE", Err: fmt.Errorf("%s: %w", source, err)}
	}
	s.source = source
	return s, nil
}

// isAlpha reports whether s is all uppercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is a valid word. Case-insensitive.
func (s *Set) Contains(w string) bool {
	_, ok := s.index[strings.ToUpper(w)]
	return ok
}

// Pick returns a uniformly random word from the set.
func (s *Set) Pick() string {
	nBig, _ := rand.Int(rand.Reader, big.NewInt(int64(len(s.words))))
	return s.words[nBig.Int64()]
}

// At returns the i-th word in sorted order; i is reduced modulo Len.
func (s *Set) At(i int) string {
	n := len(s.words)
	return s.words[((i%n)+n)%n]
}

// Len returns the number of distinct words.
func (s *Set) Len() int { return len(s.words) }

// Length returns the word length the set was filtered to.
func (s *Set) Length() int { return s.length }

// Source names where the set was loaded from ("" when built with Load).
func (s *Set) Source() string { return s.source }
