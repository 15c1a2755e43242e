package game

// Draft is the guess being composed: a fixed number of slots and a cursor.
// An empty slot holds 0.
type Draft struct {
	slots  []rune
	cursor int
}

// NewDraft returns an empty draft of length slots.
func NewDraft(length int) Draft {
	return Draft{slots: make([]rune, length)}
}

// Put writes letter at the cursor and advances it. It reports false when the draft is full.
func (d *Draft) Put(letter rune) bool {
	if d.cursor >= len(d.slots) {
		return false
	}
	d.slots[d.cursor] = letter
	d.cursor++
	return true
}

// Backspace clears the slot before the cursor. It reports false when the draft is empty.
func (d *Draft) Backspace() bool {
	if d.cursor == 0 {
		return false
	}
	d.cursor--
	d.slots[d.cursor] = 0
	return true
}

// Reset empties every slot and moves the cursor home.
func (d *Draft) Reset() {
	for i := range d.slots {
		d.slots[i] = 0
	}
	d.cursor = 0
}

// Full reports whether every slot is filled.
func (d Draft) Full() bool { return d.cursor == len(d.slots) }

// Cursor returns the index of the next slot to fill (0..Len).
func (d Draft) Cursor() int { return d.cursor }

// Len returns the number of slots.
func (d Draft) Len() int { return len(d.slots) }

// Slots returns a copy of the slots.
func (d Draft) Slots() []rune {
	return append([]rune(nil), d.slots...)
}

// Word returns the filled letters as a string.
func (d Draft) Word() string {
	return string(d.slots[:d.cursor])
}
