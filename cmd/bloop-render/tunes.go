package main

import (
	"sort"

	"github.com/vsariola/bloop"
	"github.com/vsariola/bloop/instrument"
)

// tunes are the demo pieces the command can render, built from a volume.
var tunes = map[string]func(volume float64) (bloop.Music, error){
	"beep":  beep,
	"scale": scale,
	"chord": chord,
	"canon": canon,
}

func tuneNames() []string {
	names := make([]string, 0, len(tunes))
	for name := range tunes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var beat = bloop.FromSeconds(0.25)

func tone(p bloop.PitchClass, octave int, length bloop.Flick, volume float64) bloop.Music {
	return bloop.Prim(bloop.Note(length, instrument.Sine{Pitch: p.Freq(octave), Volume: volume}))
}

func beep(volume float64) (bloop.Music, error) {
	return tone(bloop.A, 4, bloop.FromSeconds(1), volume), nil
}

var majorScale = []bloop.PitchClass{bloop.C, bloop.D, bloop.E, bloop.F, bloop.G, bloop.A, bloop.B}

func scale(volume float64) (bloop.Music, error) {
	notes := make([]bloop.Music, 0, len(majorScale)+1)
	for _, p := range majorScale {
		notes = append(notes, tone(p, 4, beat, volume))
	}
	notes = append(notes, tone(bloop.C, 5, 2*beat, volume))
	return bloop.Line(notes...), nil
}

// chord plays C, F and G major triads. Every voice gets a third of the
// volume so the sum does not clip.
func chord(volume float64) (bloop.Music, error) {
	triad := func(root bloop.PitchClass, third bloop.PitchClass, fifth bloop.PitchClass) bloop.Music {
		return bloop.Chord(
			tone(root, 4, 4*beat, volume/3),
			tone(third, 4, 4*beat, volume/3),
			tone(fifth, 4, 4*beat, volume/3),
		)
	}
	return bloop.Line(
		triad(bloop.C, bloop.E, bloop.G),
		triad(bloop.F, bloop.A, bloop.C),
		triad(bloop.G, bloop.B, bloop.D),
		triad(bloop.C, bloop.E, bloop.G),
	), nil
}

// canon plays the scale against itself: the second voice enters two beats
// late and the third plays it at double speed an octave below. Every voice
// is built separately so no subtree appears twice.
func canon(volume float64) (bloop.Music, error) {
	first, err := scale(volume / 3)
	if err != nil {
		return nil, err
	}
	second, err := scale(volume / 3)
	if err != nil {
		return nil, err
	}
	fast := func() (bloop.Music, error) {
		low := make([]bloop.Music, 0, len(majorScale))
		for _, p := range majorScale {
			low = append(low, tone(p, 3, beat, volume/3))
		}
		return bloop.Modify(bloop.Tempo(2), bloop.Line(low...))
	}
	fast1, err := fast()
	if err != nil {
		return nil, err
	}
	fast2, err := fast()
	if err != nil {
		return nil, err
	}
	return bloop.Chord(
		first,
		bloop.Seq(bloop.Prim(bloop.Rest(2*beat)), second),
		bloop.Seq(fast1, fast2),
	), nil
}
