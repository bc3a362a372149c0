package bloop_test

import (
	"math"
	"testing"

	"github.com/vsariola/bloop"
)

func TestPitchFreq(t *testing.T) {
	cases := []struct {
		class  bloop.PitchClass
		octave int
		key    int
		freq   float64
	}{
		{bloop.A, 4, 69, 440},
		{bloop.C, 4, 60, 261.6256},
		{bloop.A, 5, 81, 880},
		{bloop.Ds, 2, 39, 77.7817},
	}
	for _, c := range cases {
		if got := c.class.Key(c.octave); got != c.key {
			t.Errorf("%v%d.Key() = %d, want %d", c.class, c.octave, got, c.key)
		}
		if got := c.class.Freq(c.octave); math.Abs(got-c.freq) > 1e-3 {
			t.Errorf("%v%d.Freq() = %v, want %v", c.class, c.octave, got, c.freq)
		}
	}
}

func TestParsePitch(t *testing.T) {
	cases := []struct {
		in     string
		class  bloop.PitchClass
		octave int
	}{
		{"A", bloop.A, 4},
		{"a4", bloop.A, 4},
		{"C#5", bloop.Cs, 5},
		{"db3", bloop.Cs, 3},
		{"Bb", bloop.As, 4},
		{"b", bloop.B, 4},
		{"G-1", bloop.G, -1},
		{"Cb4", bloop.B, 3},
		{"B#4", bloop.C, 5},
	}
	for _, c := range cases {
		class, octave, err := bloop.ParsePitch(c.in)
		if err != nil {
			t.Errorf("ParsePitch(%q) failed: %v", c.in, err)
			continue
		}
		if class != c.class || octave != c.octave {
			t.Errorf("ParsePitch(%q) = %v%d, want %v%d", c.in, class, octave, c.class, c.octave)
		}
	}
	for _, in := range []string{"", "H", "C#x", "ü"} {
		if _, _, err := bloop.ParsePitch(in); err == nil {
			t.Errorf("ParsePitch(%q) succeeded, want error", in)
		}
	}
}

func TestKeyName(t *testing.T) {
	for key, want := range map[int]string{60: "C4", 61: "C#4", 69: "A4", 0: "C-1", -1: "B-2", 127: "G9"} {
		if got := bloop.KeyName(key); got != want {
			t.Errorf("KeyName(%d) = %q, want %q", key, got, want)
		}
	}
}
