package bloop

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync/atomic"
)

// Renderer turns a Sampler into interleaved device frames. Each frame
// advances an internal tick counter by one; the frame is sampled at
// tick*RateMultiplier flicks and the mono value is copied to every channel.
// The first frame is at tick 1.
//
// Render and Read must be called from one goroutine (the audio callback).
// Now can be called from anywhere.
type Renderer struct {
	sampler Sampler
	format  Format
	rate    uint64
	tick    atomic.Uint64

	frame []byte // scratch for Read, one encoded frame
	rest  []byte // part of frame not yet returned by Read
}

// NewRenderer validates the format and returns a renderer pulling from s.
// Passing a Shared sampler makes every frame take the lock exactly once.
func NewRenderer(s Sampler, f Format) (*Renderer, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("cannot render %v: %w", f, err)
	}
	return &Renderer{
		sampler: s,
		format:  f,
		rate:    f.RateMultiplier(),
		frame:   make([]byte, f.FrameSize()),
	}, nil
}

func (r *Renderer) Format() Format { return r.format }

// Now returns the time of the most recently rendered frame.
func (r *Renderer) Now() Flick {
	return Flick(r.tick.Load() * r.rate)
}

func (r *Renderer) next() Sample {
	t := r.tick.Add(1)
	return r.sampler.Sample(Flick(t * r.rate))
}

// RenderFloat32 fills buffer with whole frames and returns the number of
// frames written. A trailing partial frame is left untouched.
func (r *Renderer) RenderFloat32(buffer []float32) int {
	ch := r.format.Channels
	frames := len(buffer) / ch
	for i := 0; i < frames; i++ {
		v := r.next().Float32()
		for c := i * ch; c < (i+1)*ch; c++ {
			buffer[c] = v
		}
	}
	return frames
}

func (r *Renderer) RenderInt16(buffer []int16) int {
	ch := r.format.Channels
	frames := len(buffer) / ch
	for i := 0; i < frames; i++ {
		v := r.next().Int16()
		for c := i * ch; c < (i+1)*ch; c++ {
			buffer[c] = v
		}
	}
	return frames
}

func (r *Renderer) RenderUint16(buffer []uint16) int {
	ch := r.format.Channels
	frames := len(buffer) / ch
	for i := 0; i < frames; i++ {
		v := r.next().Uint16()
		for c := i * ch; c < (i+1)*ch; c++ {
			buffer[c] = v
		}
	}
	return frames
}

// Read implements io.Reader, producing little-endian frames in the format's
// encoding. It always fills p completely; a frame split across two reads is
// continued in the next call. Read never returns an error.
func (r *Renderer) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		if len(r.rest) == 0 {
			r.encodeFrame(r.next())
			r.rest = r.frame
		}
		c := copy(p[n:], r.rest)
		r.rest = r.rest[c:]
		n += c
	}
	return n, nil
}

func (r *Renderer) encodeFrame(s Sample) {
	size := r.format.Encoding.BytesPerSample()
	switch r.format.Encoding {
	case EncodingUint16:
		binary.LittleEndian.PutUint16(r.frame, s.Uint16())
	case EncodingInt16:
		binary.LittleEndian.PutUint16(r.frame, uint16(s.Int16()))
	case EncodingFloat32:
		binary.LittleEndian.PutUint32(r.frame, math.Float32bits(s.Float32()))
	}
	for c := size; c < len(r.frame); c += size {
		copy(r.frame[c:c+size], r.frame[:size])
	}
}
