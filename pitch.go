package bloop

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"golang.org/x/text/cases"
)

// PitchClass is one of the twelve semitones of an octave.
type PitchClass int

const (
	C PitchClass = iota
	Cs
	D
	Ds
	E
	F
	Fs
	G
	Gs
	A
	As
	B
)

// DefaultOctave is used by ParsePitch when the name has no octave.
const DefaultOctave = 4

var pitchNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var letterClasses = map[string]PitchClass{"c": C, "d": D, "e": E, "f": F, "g": G, "a": A, "b": B}

var errPitchSyntax = errors.New("pitch must look like C, C#4, Db3 or a-1")

func (p PitchClass) String() string {
	return pitchNames[((int(p)%12)+12)%12]
}

// Key returns the MIDI key number of p in the given octave; C4 is 60.
func (p PitchClass) Key(octave int) int {
	return (octave+1)*12 + int(p)
}

// Freq returns the equal-tempered frequency of p in the given octave,
// tuned to A4 = 440 Hz.
func (p PitchClass) Freq(octave int) float64 {
	return KeyFreq(p.Key(octave))
}

// KeyFreq returns the frequency of a MIDI key number.
func KeyFreq(key int) float64 {
	return 440 * math.Pow(2, float64(key-69)/12)
}

// KeyName names a MIDI key number, e.g. 61 is "C#4".
func KeyName(key int) string {
	octave := key/12 - 1
	if key < 0 && key%12 != 0 {
		octave--
	}
	return PitchClass(key).String() + strconv.Itoa(octave)
}

// ParsePitch parses pitch names such as "A", "c#5", "Bb3" or "G-1" into a
// pitch class and an octave. Letters are matched case-insensitively; the
// octave defaults to DefaultOctave. "b" right after the letter is a flat.
func ParsePitch(s string) (PitchClass, int, error) {
	folded := cases.Fold().String(s)
	if folded == "" {
		return 0, 0, fmt.Errorf("%w: empty", errPitchSyntax)
	}
	class, ok := letterClasses[folded[:1]]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", errPitchSyntax, s)
	}
	key := int(class)
	rest := folded[1:]
	if len(rest) > 0 {
		switch rest[0] {
		case '#':
			key++
			rest = rest[1:]
		case 'b':
			key--
			rest = rest[1:]
		}
	}
	octave := DefaultOctave
	if rest != "" {
		o, err := strconv.Atoi(rest)
		if err != nil {
			return 0, 0, fmt.Errorf("%w: %q", errPitchSyntax, s)
		}
		octave = o
	}
	// Cb and B# cross the octave boundary
	switch {
	case key < 0:
		key += 12
		octave--
	case key > 11:
		key -= 12
		octave++
	}
	return PitchClass(key), octave, nil
}
