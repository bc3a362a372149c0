package bloop

import "math"

// Sample is a quantized mono amplitude. Mixing saturates to [MinSample,
// MaxSample] instead of wrapping.
type Sample int8

const (
	MinSample Sample = math.MinInt8
	MaxSample Sample = math.MaxInt8
	Silence   Sample = 0
)

// Sampler is anything that can produce a sample at a given time offset. The
// offset is in flicks from the start of the sound. Callers may sample in any
// order; implementations used for playback must not block or allocate, as
// they are called from the audio goroutine.
type Sampler interface {
	Sample(t Flick) Sample
}

// SamplerFunc adapts an ordinary function to a Sampler.
type SamplerFunc func(t Flick) Sample

func (f SamplerFunc) Sample(t Flick) Sample { return f(t) }

// Add returns the saturating sum of s and o.
func (s Sample) Add(o Sample) Sample {
	return clampSample(int(s) + int(o))
}

// Mix returns the saturating sum of all the samples.
func Mix(samples ...Sample) Sample {
	sum := 0
	for _, s := range samples {
		sum += int(s)
	}
	return clampSample(sum)
}

// Float32 rescales s to [-1.0, 1.0).
func (s Sample) Float32() float32 {
	return float32(s) / 128
}

// Int16 rescales s to the signed 16-bit range.
func (s Sample) Int16() int16 {
	return int16(s.Float32() * math.MaxInt16)
}

// Uint16 rescales s to the unsigned 16-bit range, silence being the
// midpoint.
func (s Sample) Uint16() uint16 {
	return uint16((s.Float32()*0.5 + 0.5) * math.MaxUint16)
}

func clampSample(v int) Sample {
	if v < int(MinSample) {
		return MinSample
	}
	if v > int(MaxSample) {
		return MaxSample
	}
	return Sample(v)
}

// Voices is a collection of samplers playing simultaneously, e.g. the
// channels of a polyphonic instrument. Its sample is the saturating sum of
// all the voices. The element type is kept so that control code can reach
// the state of a single voice.
type Voices[S Sampler] []S

func (v Voices[S]) Sample(t Flick) Sample {
	sum := 0
	for _, s := range v {
		sum += int(s.Sample(t))
	}
	return clampSample(sum)
}
