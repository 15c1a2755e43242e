package game

// Keyboard tracks, per letter A–Z, the best mark seen across all guesses,
// and which letters are eliminated for the rest of the session.
type Keyboard struct {
	marks      [26]Mark
	restricted [26]bool
	order      []rune // restricted letters, in the order they were added
}

// NewKeyboard returns a keyboard with every letter Unseen.
func NewKeyboard() *Keyboard {
	return &Keyboard{}
}

// Update folds a scored guess into the keyboard. Marks only ever improve.
//
// A letter becomes restricted the first time it is Absent in a guess that
// gives it no Correct or Present tile anywhere else. Restriction is permanent.
func (k *Keyboard) Update(rec Record) {
	var found [26]bool
	for _, t := range rec {
		i := letterIndex(t.Letter)
		if i < 0 {
			continue
		}
		if t.Mark > k.marks[i] {
			k.marks[i] = t.Mark
		}
		if t.Mark == MarkCorrect || t.Mark == MarkPresent {
			found[i] = true
		}
	}
	for _, t := range rec {
		i := letterIndex(t.Letter)
		if i < 0 || t.Mark != MarkAbsent || found[i] || k.restricted[i] || k.marks[i] > MarkAbsent {
			continue
		}
		k.restricted[i] = true
		k.order = append(k.order, t.Letter)
	}
}

// Mark returns the best mark seen for letter (case-insensitive), or MarkUnseen.
func (k *Keyboard) Mark(letter rune) Mark {
	i := letterIndex(letter)
	if i < 0 {
		return MarkUnseen
	}
	return k.marks[i]
}

// Restricted reports whether letter (case-insensitive) may no longer be typed.
func (k *Keyboard) Restricted(letter rune) bool {
	i := letterIndex(letter)
	return i >= 0 && k.restricted[i]
}

// RestrictedLetters returns the restricted letters in the order they were added.
func (k *Keyboard) RestrictedLetters() []rune {
	return append([]rune(nil), k.order...)
}

func letterIndex(r rune) int {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A')
	case r >= 'a' && r <= 'z':
		return int(r - 'a')
	}
	return -1
}
