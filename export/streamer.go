package export

import (
	"github.com/faiface/beep"
	"github.com/vsariola/bloop"
)

// stream adapts a bloop.Renderer to beep's pull model. beep works in stereo
// float64 frames; the mono sample is copied to both sides.
type stream struct {
	renderer *bloop.Renderer
	left     int // frames still to stream
	frame    [1]float32
}

// Streamer returns a beep.Streamer playing s at sampleRate until length.
// It can be fed to any beep pipeline (mixers, resamplers, encoders).
func Streamer(s bloop.Sampler, sampleRate int, length bloop.Flick) (beep.Streamer, error) {
	f := bloop.Format{Channels: 1, SampleRate: sampleRate, Encoding: bloop.EncodingFloat32}
	r, err := bloop.NewRenderer(s, f)
	if err != nil {
		return nil, err
	}
	return &stream{renderer: r, left: f.Frames(length)}, nil
}

func (s *stream) Stream(samples [][2]float64) (n int, ok bool) {
	if s.left == 0 {
		return 0, false
	}
	for n < len(samples) && s.left > 0 {
		s.renderer.RenderFloat32(s.frame[:])
		v := float64(s.frame[0])
		samples[n] = [2]float64{v, v}
		n++
		s.left--
	}
	return n, true
}

func (s *stream) Err() error { return nil }
