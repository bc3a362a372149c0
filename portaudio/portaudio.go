//go:build portaudio

package portaudio

import (
	"context"
	"errors"
	"fmt"

	"github.com/gordonklaus/portaudio"
	"github.com/vsariola/bloop"
	"github.com/vsariola/bloop/internal/players"
)

// Context is the default PortAudio output device, opened in the device's
// preferred sample rate.
type Context struct {
	device  *portaudio.DeviceInfo
	format  bloop.Format
	players *players.Set
}

var errNoOutput = errors.New("default device has no output channels")

// NewContext initializes PortAudio and acquires the default output device.
// The sample rate is the device's default rate; channels are capped to what
// the device offers. Only float32 and signed 16-bit encodings are supported.
func NewContext(channels int, encoding bloop.Encoding) (*Context, error) {
	if encoding != bloop.EncodingFloat32 && encoding != bloop.EncodingInt16 {
		return nil, fmt.Errorf("cannot open portaudio: %w: %v", bloop.ErrUnsupportedEncoding, encoding)
	}
	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("cannot initialize portaudio: %w", err)
	}
	device, err := portaudio.DefaultOutputDevice()
	if err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("cannot get default output device: %w", err)
	}
	if device.MaxOutputChannels < 1 {
		portaudio.Terminate()
		return nil, fmt.Errorf("%v: %w", device.Name, errNoOutput)
	}
	if channels < 1 || channels > device.MaxOutputChannels {
		channels = min(2, device.MaxOutputChannels)
	}
	f := bloop.Format{Channels: channels, SampleRate: int(device.DefaultSampleRate), Encoding: encoding}
	if err := f.Validate(); err != nil {
		portaudio.Terminate()
		return nil, fmt.Errorf("device %v: %w", device.Name, err)
	}
	return &Context{device: device, format: f, players: players.New()}, nil
}

func (c *Context) Format() bloop.Format { return c.format }

// Play opens a callback stream on the device. PortAudio calls the renderer
// from its audio thread for every buffer; the stream is stopped and closed
// when ctx is done or when the context is closed.
func (c *Context) Play(ctx context.Context, s bloop.Sampler) (bloop.Clock, error) {
	renderer, err := bloop.NewRenderer(s, c.format)
	if err != nil {
		return nil, fmt.Errorf("cannot play: %w", err)
	}
	params := portaudio.HighLatencyParameters(nil, c.device)
	params.Output.Channels = c.format.Channels
	params.SampleRate = float64(c.format.SampleRate)
	var callback any
	switch c.format.Encoding {
	case bloop.EncodingInt16:
		callback = func(out []int16) { renderer.RenderInt16(out) }
	default:
		callback = func(out []float32) { renderer.RenderFloat32(out) }
	}
	stream, err := portaudio.OpenStream(params, callback)
	if err != nil {
		return nil, fmt.Errorf("cannot open portaudio stream: %w", err)
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		return nil, fmt.Errorf("cannot start portaudio stream: %w", err)
	}
	c.players.Add(ctx, func() error {
		stream.Stop()
		return stream.Close()
	})
	return renderer, nil
}

// Close stops the streams that are still running and terminates PortAudio.
func (c *Context) Close() error {
	if err := c.players.CloseAll(); err != nil {
		return err
	}
	if err := portaudio.Terminate(); err != nil {
		return fmt.Errorf("cannot terminate portaudio: %w", err)
	}
	return nil
}

// Spawn acquires the default device and starts playing s in the background
// until ctx is done.
func Spawn(ctx context.Context, s bloop.Sampler, channels int, encoding bloop.Encoding) (bloop.Clock, error) {
	c, err := NewContext(channels, encoding)
	if err != nil {
		return nil, err
	}
	return c.Play(ctx, s)
}
