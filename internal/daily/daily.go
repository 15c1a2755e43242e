// Package daily numbers calendar days and maps each one to a word, so every
// player gets the same target on the same UTC day.
package daily

import (
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Epoch is the UTC day of puzzle #0.
var Epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// Puzzle is the daily game for one UTC day.
type Puzzle struct {
	Number int       // whole days since Epoch, negative before it
	Day    time.Time // midnight UTC
	Index  int       // position of the target in a sorted word set
}

func (p Puzzle) String() string {
	return fmt.Sprintf("#%d (%s)", p.Number, p.Day.Format("2006-01-02"))
}

// Number returns the puzzle number of the UTC day containing t.
func Number(t time.Time) int {
	y, m, d := t.UTC().Date()
	return int(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Sub(Epoch) / (24 * time.Hour))
}

// Today returns the puzzle for the UTC day containing t over a word set of
// size n. The index is BLAKE2b-256(salt || number) reduced mod n; with n <= 0
// it is 0.
func Today(t time.Time, salt string, n int) Puzzle {
	num := Number(t)
	p := Puzzle{Number: num, Day: Epoch.AddDate(0, 0, num)}
	if n <= 0 {
		return p
	}
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], uint64(int64(num)))
	sum := blake2b.Sum256(append([]byte(salt), key[:]...))
	p.Index = int(binary.BigEndian.Uint64(sum[:8]) % uint64(n))
	return p
}
