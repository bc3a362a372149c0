package instrument

import "github.com/vsariola/bloop"

// ADSR is an attack-decay-sustain-release envelope.
type ADSR struct {
	Attack  bloop.Flick
	Decay   bloop.Flick
	Sustain float64
	Release bloop.Flick
}

// DefaultEnvelope is a soft piano-like envelope.
func DefaultEnvelope() ADSR {
	return ADSR{
		Attack:  bloop.FromSeconds(1.0 / 8.0),
		Decay:   bloop.FromSeconds(1.0 / 6.0),
		Sustain: 0.6,
		Release: bloop.FromSeconds(1.0 / 4.0),
	}
}

// Level returns the envelope coefficient in [0, 1] at time t after the key
// was pressed. If released is true, end is the time of the release, also
// relative to the press. A release during attack or decay takes effect only
// once the decay has finished.
func (e ADSR) Level(t, end bloop.Flick, released bool) float64 {
	if t < e.Attack {
		return float64(t) / float64(e.Attack)
	}
	if t-e.Attack < e.Decay {
		return lerp(1, e.Sustain, float64(t-e.Attack)/float64(e.Decay))
	}
	if released && t > end {
		if e.Release == 0 {
			return 0
		}
		level := lerp(e.Sustain, 0, float64(t-end)/float64(e.Release))
		if level < 0 {
			level = 0
		}
		return level
	}
	return e.Sustain
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
