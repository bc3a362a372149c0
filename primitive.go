package bloop

import "fmt"

type (
	// Primitive is an atomic musical event with a fixed duration: either a
	// Note sounding an instrument or a Rest.
	Primitive interface {
		Sampler
		Duration() Flick
		fmt.Stringer
		primitive()
	}

	note struct {
		duration   Flick
		instrument Sampler
	}

	rest struct {
		duration Flick
	}
)

// Note returns a primitive that plays instrument for duration d. Sampling a
// note past its duration gives silence rather than an error, so a parent
// Seq can probe offsets slightly outside the note.
func Note(d Flick, instrument Sampler) Primitive {
	return note{duration: d, instrument: instrument}
}

// Rest returns a primitive that is silent for duration d.
func Rest(d Flick) Primitive {
	return rest{duration: d}
}

func (n note) Duration() Flick { return n.duration }

func (n note) Sample(t Flick) Sample {
	if t <= n.duration {
		return n.instrument.Sample(t)
	}
	return Silence
}

func (n note) String() string { return fmt.Sprintf("Note(%v)", n.duration) }

func (note) primitive() {}

func (r rest) Duration() Flick { return r.duration }

func (rest) Sample(Flick) Sample { return Silence }

func (r rest) String() string { return fmt.Sprintf("Rest(%v)", r.duration) }

func (rest) primitive() {}
