package main

import (
	"strings"
	"testing"

	"github.com/vsariola/bloop"
)

func TestTuneDurations(t *testing.T) {
	cases := map[string]bloop.Flick{
		"beep":  bloop.FromSeconds(1),
		"scale": 9 * beat,
		"chord": 16 * beat,
		"canon": 11 * beat,
	}
	if len(cases) != len(tunes) {
		t.Fatalf("have %d tunes, test covers %d", len(tunes), len(cases))
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := tunes[name](0.5)
			if err != nil {
				t.Fatalf("building %v failed: %v", name, err)
			}
			if got := m.Duration(); got != want {
				t.Errorf("Duration() = %v, want %v", got, want)
			}
		})
	}
}

func TestChordDoesNotClip(t *testing.T) {
	m, err := chord(1)
	if err != nil {
		t.Fatal(err)
	}
	step := m.Duration() / 1000
	for t0 := bloop.Flick(0); t0 < m.Duration(); t0 += step {
		if s := m.Sample(t0); s == bloop.MaxSample || s == bloop.MinSample {
			t.Fatalf("sample at %v clipped: %d", t0, s)
		}
	}
}

func TestCanonVoices(t *testing.T) {
	m, err := canon(0.5)
	if err != nil {
		t.Fatal(err)
	}
	got := m.String()
	if n := strings.Count(got, "Modify(Tempo(2)"); n != 2 {
		t.Errorf("canon has %d fast voices, want 2:\n%v", n, got)
	}
	if n := strings.Count(got, "Rest("); n != 1 {
		t.Errorf("canon has %d rests, want 1 for the delayed entry:\n%v", n, got)
	}
}
