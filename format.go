package bloop

import (
	"fmt"
	"strings"
)

// Encoding is the numeric representation of one sample in a device buffer.
type Encoding int

const (
	EncodingUint16 Encoding = iota + 1
	EncodingInt16
	EncodingFloat32
)

// Format describes the output of a device: number of interleaved channels,
// frames per second and sample encoding.
type Format struct {
	Channels   int
	SampleRate int
	Encoding   Encoding
}

var encodingNames = map[Encoding]string{
	EncodingUint16:  "u16",
	EncodingInt16:   "s16",
	EncodingFloat32: "f32",
}

// ParseEncoding parses the short names "u16", "s16" and "f32".
func ParseEncoding(s string) (Encoding, error) {
	for e, name := range encodingNames {
		if strings.EqualFold(s, name) {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
}

func (e Encoding) String() string {
	if name, ok := encodingNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Encoding(%d)", int(e))
}

// BytesPerSample returns the size of one encoded sample, or 0 for an
// unknown encoding.
func (e Encoding) BytesPerSample() int {
	switch e {
	case EncodingUint16, EncodingInt16:
		return 2
	case EncodingFloat32:
		return 4
	}
	return 0
}

func (f Format) Validate() error {
	if f.Channels < 1 {
		return fmt.Errorf("%w: %d channels", ErrInvalidFormat, f.Channels)
	}
	if f.SampleRate <= 0 || f.SampleRate > FlicksPerSecond {
		return fmt.Errorf("%w: sample rate %d Hz", ErrInvalidFormat, f.SampleRate)
	}
	if f.Encoding.BytesPerSample() == 0 {
		return fmt.Errorf("%w: %v", ErrUnsupportedEncoding, f.Encoding)
	}
	return nil
}

// RateMultiplier is the number of flicks per frame. Sample rates that do not
// divide FlicksPerSecond evenly are truncated and will drift slowly.
func (f Format) RateMultiplier() uint64 {
	return FlicksPerSecond / uint64(f.SampleRate)
}

// FrameSize is the number of bytes in one interleaved frame.
func (f Format) FrameSize() int {
	return f.Channels * f.Encoding.BytesPerSample()
}

// Frames returns the number of frames needed to cover length, i.e. the
// number of frame times in (0, length].
func (f Format) Frames(length Flick) int {
	return int(uint64(length) / f.RateMultiplier())
}

func (f Format) String() string {
	return fmt.Sprintf("%d Hz %d ch %v", f.SampleRate, f.Channels, f.Encoding)
}
