// Package export renders bloop samplers offline into buffers, raw device
// data and .wav files.
package export

import (
	"fmt"
	"io"
	"math"

	"github.com/faiface/beep"
	"github.com/faiface/beep/wav"
	"github.com/viterin/vek/vek32"
	"github.com/vsariola/bloop"
)

// Levels summarizes the loudness of a rendered buffer.
type Levels struct {
	Peak float32 // largest absolute sample
	RMS  float32
}

// Render renders s from the first frame up to length into interleaved
// float32 frames, exactly as a device with format f would receive them.
func Render(s bloop.Sampler, length bloop.Flick, f bloop.Format) ([]float32, error) {
	f.Encoding = bloop.EncodingFloat32
	r, err := bloop.NewRenderer(s, f)
	if err != nil {
		return nil, fmt.Errorf("export.Render failed: %w", err)
	}
	buffer := make([]float32, f.Frames(length)*f.Channels)
	r.RenderFloat32(buffer)
	return buffer, nil
}

// Raw writes the frames up to length in the encoding of f, little-endian,
// with no header.
func Raw(w io.Writer, s bloop.Sampler, length bloop.Flick, f bloop.Format) error {
	r, err := bloop.NewRenderer(s, f)
	if err != nil {
		return fmt.Errorf("export.Raw failed: %w", err)
	}
	n := int64(f.Frames(length)) * int64(f.FrameSize())
	if _, err := io.CopyN(w, r, n); err != nil {
		return fmt.Errorf("export.Raw could not write: %w", err)
	}
	return nil
}

// Wav writes a 16-bit PCM .wav file of s up to length. channels must be 1
// or 2.
func Wav(w io.WriteSeeker, s bloop.Sampler, length bloop.Flick, sampleRate, channels int) error {
	if channels != 1 && channels != 2 {
		return fmt.Errorf("export.Wav failed: %w: %d channels", bloop.ErrInvalidFormat, channels)
	}
	streamer, err := Streamer(s, sampleRate, length)
	if err != nil {
		return fmt.Errorf("export.Wav failed: %w", err)
	}
	format := beep.Format{SampleRate: beep.SampleRate(sampleRate), NumChannels: channels, Precision: 2}
	if err := wav.Encode(w, streamer, format); err != nil {
		return fmt.Errorf("export.Wav could not encode: %w", err)
	}
	return nil
}

// Measure returns the peak and RMS level of buffer.
func Measure(buffer []float32) Levels {
	if len(buffer) == 0 {
		return Levels{}
	}
	abs := vek32.Abs(buffer)
	return Levels{
		Peak: vek32.Max(abs),
		RMS:  float32(math.Sqrt(float64(vek32.Dot(buffer, buffer)) / float64(len(buffer)))),
	}
}
