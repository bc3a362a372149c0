package bloop_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/vsariola/bloop"
)

func TestFromSecondsRoundTrip(t *testing.T) {
	resolution := 1.0 / bloop.FlicksPerSecond
	for _, secs := range []float64{0, 1e-9, 0.25, 1.0 / 3.0, 1, 2.5, 60, 3600.123, 86400 * 365} {
		got := bloop.FromSeconds(secs).Seconds()
		if math.Abs(got-secs) > resolution*(1+secs*1e-6) {
			t.Errorf("FromSeconds(%v).Seconds() = %v, want within one flick", secs, got)
		}
	}
}

func TestFromSecondsSaturates(t *testing.T) {
	if got := bloop.FromSeconds(-1); got != 0 {
		t.Errorf("FromSeconds(-1) = %d, want 0", got)
	}
	if got := bloop.FromSeconds(math.NaN()); got != 0 {
		t.Errorf("FromSeconds(NaN) = %d, want 0", got)
	}
	if got := bloop.FromSeconds(math.Inf(1)); got != math.MaxUint64 {
		t.Errorf("FromSeconds(+Inf) = %d, want MaxUint64", got)
	}
}

func TestFromDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want bloop.Flick
	}{
		{0, 0},
		{time.Second, bloop.FlicksPerSecond},
		{time.Millisecond, 705_600},
		{1500 * time.Millisecond, 1_058_400_000},
		{time.Nanosecond, 0}, // 0.7056 flicks truncates
		{2 * time.Nanosecond, 1},
		{10 * time.Nanosecond, 7},
		// sub-second part must survive the conversion
		{3*time.Second + 250*time.Millisecond, 3*bloop.FlicksPerSecond + bloop.FlicksPerSecond/4},
		// more than the 30 days where nanos*7056 would wrap in 64 bits
		{100 * 24 * time.Hour, 100 * 24 * 3600 * bloop.FlicksPerSecond},
	}
	for _, c := range cases {
		if got := bloop.FromDuration(c.d); got != c.want {
			t.Errorf("FromDuration(%v) = %d, want %d", c.d, got, c.want)
		}
	}
}

func TestFromDurationNegativePanics(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, bloop.ErrUnderflow) {
			t.Fatalf("expected panic with ErrUnderflow, got %v", err)
		}
	}()
	bloop.FromDuration(-time.Second)
}

func TestFlickDuration(t *testing.T) {
	for _, d := range []time.Duration{0, time.Millisecond, time.Second, 90 * time.Minute} {
		if got := bloop.FromDuration(d).Duration(); got != d {
			t.Errorf("FromDuration(%v).Duration() = %v", d, got)
		}
	}
}

func TestSubAddInverse(t *testing.T) {
	values := []bloop.Flick{0, 1, 7, bloop.FlicksPerSecond, 3 * bloop.FlicksPerSecond / 2, math.MaxUint64 / 3, math.MaxUint64}
	for _, a := range values {
		for _, b := range values {
			if a < b {
				continue
			}
			if got := a.Sub(b).Add(b); got != a {
				t.Errorf("(%d - %d) + %d = %d, want %d", a, b, b, got, a)
			}
		}
	}
}

func TestCheckedArithmetic(t *testing.T) {
	if _, err := bloop.Flick(math.MaxUint64).CheckedAdd(1); !errors.Is(err, bloop.ErrOverflow) {
		t.Errorf("MaxUint64 + 1: expected ErrOverflow, got %v", err)
	}
	if _, err := bloop.Flick(1).CheckedSub(2); !errors.Is(err, bloop.ErrUnderflow) {
		t.Errorf("1 - 2: expected ErrUnderflow, got %v", err)
	}
	if got, err := bloop.Flick(5).CheckedAdd(6); err != nil || got != 11 {
		t.Errorf("5 + 6 = %d, %v", got, err)
	}
}

func TestAddOverflowPanics(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, bloop.ErrOverflow) {
			t.Fatalf("expected panic with ErrOverflow, got %v", err)
		}
	}()
	bloop.Flick(math.MaxUint64 - 1).Add(2)
}

func TestSubUnderflowPanics(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, bloop.ErrUnderflow) {
			t.Fatalf("expected panic with ErrUnderflow, got %v", err)
		}
	}()
	bloop.Flick(0).SubDuration(time.Second)
}

func TestFlickString(t *testing.T) {
	if got := bloop.FromSeconds(1.5).String(); got != "1.500 s" {
		t.Errorf("String() = %q", got)
	}
}
