package bloop

import (
	"fmt"
	"math"
	"math/bits"
	"time"
)

// FlicksPerSecond is the conversion factor between flicks and seconds. It is
// evenly divisible by all the common audio sample rates (8000, 11025, 16000,
// 22050, 24000, 32000, 44100, 48000, 88200, 96000, 192000) and video frame
// rates.
//
// See https://github.com/OculusVR/Flicks
const FlicksPerSecond = 705_600_000

// Flick is a point in time or a duration, measured in flicks. It is the time
// unit of the whole library: integer ticks do not drift like accumulated
// floating point seconds do, and uint64 flicks cover roughly 830 years.
type Flick uint64

// FromSeconds converts seconds to flicks, truncating toward zero. Negative
// and NaN inputs give zero and inputs beyond the range saturate to the
// largest Flick.
func FromSeconds(seconds float64) Flick {
	f := seconds * FlicksPerSecond
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= math.MaxUint64:
		return math.MaxUint64
	}
	return Flick(f)
}

// FromNanoseconds converts nanoseconds to flicks, truncating toward zero.
func FromNanoseconds(nanos uint64) Flick {
	hi, lo := bits.Mul64(nanos, 7056)
	if hi >= 10_000 {
		panic(fmt.Errorf("%w: %v ns does not fit in flicks", ErrOverflow, nanos))
	}
	q, _ := bits.Div64(hi, lo, 10_000)
	return Flick(q)
}

// FromDuration converts a wall clock duration to flicks, truncating toward
// zero. A negative duration is an underflow and panics.
func FromDuration(d time.Duration) Flick {
	if d < 0 {
		panic(fmt.Errorf("%w: negative duration %v", ErrUnderflow, d))
	}
	secs := uint64(d / time.Second)
	subsec := uint64(d % time.Second)
	return FromNanoseconds(secs*uint64(time.Second) + subsec)
}

// CheckedAdd returns f + o, or an error wrapping ErrOverflow if the sum does
// not fit in a Flick.
func (f Flick) CheckedAdd(o Flick) (Flick, error) {
	sum, carry := bits.Add64(uint64(f), uint64(o), 0)
	if carry != 0 {
		return 0, fmt.Errorf("%w when adding flicks %d + %d", ErrOverflow, f, o)
	}
	return Flick(sum), nil
}

// CheckedSub returns f - o, or an error wrapping ErrUnderflow if o > f.
func (f Flick) CheckedSub(o Flick) (Flick, error) {
	diff, borrow := bits.Sub64(uint64(f), uint64(o), 0)
	if borrow != 0 {
		return 0, fmt.Errorf("%w when subtracting flicks %d - %d", ErrUnderflow, f, o)
	}
	return Flick(diff), nil
}

// Add returns f + o. Valid musical durations never come near the range of a
// Flick, so an overflow is a programming error and Add panics with an error
// wrapping ErrOverflow.
func (f Flick) Add(o Flick) Flick {
	sum, err := f.CheckedAdd(o)
	if err != nil {
		panic(err)
	}
	return sum
}

// Sub returns f - o. It panics with an error wrapping ErrUnderflow if o > f.
func (f Flick) Sub(o Flick) Flick {
	diff, err := f.CheckedSub(o)
	if err != nil {
		panic(err)
	}
	return diff
}

// AddDuration returns f advanced by the wall clock duration d.
func (f Flick) AddDuration(d time.Duration) Flick { return f.Add(FromDuration(d)) }

// SubDuration returns f moved back by the wall clock duration d.
func (f Flick) SubDuration(d time.Duration) Flick { return f.Sub(FromDuration(d)) }

// Seconds returns f as a floating point number of seconds.
func (f Flick) Seconds() float64 {
	return float64(f) / FlicksPerSecond
}

// Duration converts f back to a wall clock duration, truncating to whole
// nanoseconds. Flicks beyond the range of time.Duration saturate.
func (f Flick) Duration() time.Duration {
	hi, lo := bits.Mul64(uint64(f), 10_000)
	if hi >= 7056 {
		return math.MaxInt64
	}
	q, _ := bits.Div64(hi, lo, 7056)
	if q > math.MaxInt64 {
		return math.MaxInt64
	}
	return time.Duration(q)
}

func (f Flick) String() string {
	return fmt.Sprintf("%.3f s", f.Seconds())
}

// Max returns the later of a and b.
func Max(a, b Flick) Flick {
	if a > b {
		return a
	}
	return b
}

// Min returns the earlier of a and b.
func Min(a, b Flick) Flick {
	if a < b {
		return a
	}
	return b
}
