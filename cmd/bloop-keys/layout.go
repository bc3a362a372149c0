package main

// The two rows of the keyboard are laid out like a piano: the letter rows
// are the white keys and the row above them the black keys. The upper row
// starts an octave above the lower one and both run past the octave.
var (
	lowerRow = []rune{'z', 's', 'x', 'd', 'c', 'v', 'g', 'b', 'h', 'n', 'j', 'm', ',', 'l', '.', ';', '/'}
	upperRow = []rune{'q', '2', 'w', '3', 'e', 'r', '5', 't', '6', 'y', '7', 'u', 'i', '9', 'o', '0', 'p'}
)

// numKeys is the number of semitones covered by the layout.
var numKeys = 12 + len(upperRow)

// layout returns the semitone offset of each key from the lowest note.
func layout() map[rune]int {
	m := make(map[rune]int, len(lowerRow)+len(upperRow))
	for i, r := range lowerRow {
		m[r] = i
	}
	for i, r := range upperRow {
		m[r] = 12 + i
	}
	return m
}
