package bloop

import (
	"fmt"
	"math"
)

type (
	// Music is a tree of primitives composed sequentially (Seq), in parallel
	// (Para) or under a control (Modify). Trees are immutable once built:
	// Duration and Sample are pure queries that can be called in any order,
	// from any number of goroutines. Mutable state, like which keys are held
	// down, belongs to the instruments at the leaves.
	//
	// Durations are computed once when a node is built, so sampling a tree
	// costs one step per level and never allocates.
	Music interface {
		Sampler
		Duration() Flick
		fmt.Stringer
		music()
	}

	prim struct {
		p Primitive
	}

	para struct {
		left, right Music
		duration    Flick
	}

	seq struct {
		left, right Music
		split       Flick // duration of left
		duration    Flick
	}

	tempo struct {
		factor   float64
		sub      Music
		duration Flick
	}
)

// Prim lifts a primitive into a Music leaf.
func Prim(p Primitive) Music {
	return prim{p: p}
}

// Para plays a and b simultaneously. It lasts as long as the longer of the
// two; the shorter contributes silence for the remainder.
func Para(a, b Music) Music {
	return para{left: a, right: b, duration: Max(a.Duration(), b.Duration())}
}

// Seq plays a and then b, with no gap or overlap. It panics with an error
// wrapping ErrOverflow if the total duration does not fit in a Flick.
func Seq(a, b Music) Music {
	split := a.Duration()
	return seq{left: a, right: b, split: split, duration: split.Add(b.Duration())}
}

// Modify applies the control c to m. Tempo factors must be positive and
// finite; Transpose is not supported. Unsupported controls are rejected
// here, so a Music tree never contains a node it cannot evaluate.
func Modify(c Control, m Music) (Music, error) {
	switch c := c.(type) {
	case Tempo:
		f := float64(c)
		if !(f > 0) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidTempo, c)
		}
		return tempo{factor: f, sub: m, duration: scaleFlick(m.Duration(), 1/f)}, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedControl, c)
	}
}

// Line composes the pieces one after another. An empty line is a zero
// length rest.
func Line(pieces ...Music) Music {
	return fold(Seq, pieces)
}

// Chord composes the pieces to play simultaneously. An empty chord is a
// zero length rest.
func Chord(pieces ...Music) Music {
	return fold(Para, pieces)
}

func fold(op func(a, b Music) Music, pieces []Music) Music {
	if len(pieces) == 0 {
		return Prim(Rest(0))
	}
	ret := pieces[len(pieces)-1]
	for i := len(pieces) - 2; i >= 0; i-- {
		ret = op(pieces[i], ret)
	}
	return ret
}

func (m prim) Duration() Flick       { return m.p.Duration() }
func (m prim) Sample(t Flick) Sample { return m.p.Sample(t) }
func (m prim) String() string        { return m.p.String() }

func (m para) Duration() Flick { return m.duration }

func (m para) Sample(t Flick) Sample {
	return m.left.Sample(t).Add(m.right.Sample(t))
}

func (m para) String() string { return fmt.Sprintf("Para(%v, %v)", m.left, m.right) }

func (m seq) Duration() Flick { return m.duration }

// Sample gives the instant where left ends to left; right starts its own
// clock from zero just after.
func (m seq) Sample(t Flick) Sample {
	if t <= m.split {
		return m.left.Sample(t)
	}
	return m.right.Sample(t - m.split)
}

func (m seq) String() string { return fmt.Sprintf("Seq(%v, %v)", m.left, m.right) }

func (m tempo) Duration() Flick { return m.duration }

func (m tempo) Sample(t Flick) Sample {
	return m.sub.Sample(scaleFlick(t, m.factor))
}

func (m tempo) String() string {
	return fmt.Sprintf("Modify(%v, %v)", Tempo(m.factor), m.sub)
}

func (prim) music()  {}
func (para) music()  {}
func (seq) music()   {}
func (tempo) music() {}

// scaleFlick returns t*k truncated, saturating at the largest Flick.
func scaleFlick(t Flick, k float64) Flick {
	v := float64(t) * k
	if v >= math.MaxUint64 {
		return math.MaxUint64
	}
	return Flick(v)
}
