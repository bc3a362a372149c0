// Package instrument contains simple samplers to be placed at the leaves of
// bloop.Music trees or played live through a bloop.Shared handle.
package instrument

import (
	"math"

	"github.com/vsariola/bloop"
)

// Constant is a sampler with a fixed amplitude, mostly useful in tests.
type Constant bloop.Sample

func (c Constant) Sample(bloop.Flick) bloop.Sample { return bloop.Sample(c) }

// Sine is a sine wave with a frequency in Hz and a volume in [0, 1].
type Sine struct {
	Pitch  float64
	Volume float64
}

func (s Sine) Sample(t bloop.Flick) bloop.Sample {
	return quantize(s.Volume * oscillate(s.Pitch, t))
}

func oscillate(pitch float64, t bloop.Flick) float64 {
	return math.Sin(float64(t) * pitch / bloop.FlicksPerSecond * 2 * math.Pi)
}

// quantize maps [-1, 1] to a sample, truncating toward zero.
func quantize(v float64) bloop.Sample {
	v *= 127
	if v > 127 {
		v = 127
	} else if v < -128 {
		v = -128
	}
	return bloop.Sample(v)
}
