package oto

import (
	"context"
	"fmt"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/vsariola/bloop"
	"github.com/vsariola/bloop/internal/players"
)

// Context is an opened oto device. oto allows only one context per process.
type Context struct {
	ctx     *oto.Context
	format  bloop.Format
	players *players.Set
}

// Player is a running oto player. It reports the playback position of the
// samples handed to the device.
type Player struct {
	player   *oto.Player
	renderer *bloop.Renderer
}

const defaultBufferSize = 40 * time.Millisecond

// NewContext opens the default output device with the given format. oto can
// output signed 16-bit and 32-bit float samples; unsigned 16-bit is
// rejected with bloop.ErrUnsupportedEncoding.
func NewContext(f bloop.Format, bufferSize time.Duration) (*Context, error) {
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	otoFormat, err := otoFormat(f.Encoding)
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	if bufferSize <= 0 {
		bufferSize = defaultBufferSize
	}
	c, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   f.SampleRate,
		ChannelCount: f.Channels,
		Format:       otoFormat,
		BufferSize:   bufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &Context{ctx: c, format: f, players: players.New()}, nil
}

func otoFormat(e bloop.Encoding) (oto.Format, error) {
	switch e {
	case bloop.EncodingInt16:
		return oto.FormatSignedInt16LE, nil
	case bloop.EncodingFloat32:
		return oto.FormatFloat32LE, nil
	}
	return 0, fmt.Errorf("%w: oto has no %v output", bloop.ErrUnsupportedEncoding, e)
}

func (c *Context) Format() bloop.Format { return c.format }

// Play starts a player pulling frames from s and returns immediately. oto
// calls the renderer from its own goroutine whenever the device needs more
// data. The player is closed when ctx is done or when the context is
// closed.
func (c *Context) Play(ctx context.Context, s bloop.Sampler) (bloop.Clock, error) {
	renderer, err := bloop.NewRenderer(s, c.format)
	if err != nil {
		return nil, fmt.Errorf("cannot play: %w", err)
	}
	if err := c.ctx.Err(); err != nil {
		return nil, fmt.Errorf("oto context failed: %w", err)
	}
	p := &Player{player: c.ctx.NewPlayer(renderer), renderer: renderer}
	p.player.Play()
	c.players.Add(ctx, p.Close)
	return p, nil
}

// Close stops the players that are still running and suspends the device.
func (c *Context) Close() error {
	if err := c.players.CloseAll(); err != nil {
		return err
	}
	if err := c.ctx.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}

// Now returns the time of the last frame handed to the device.
func (p *Player) Now() bloop.Flick {
	return p.renderer.Now()
}

func (p *Player) Close() error {
	if err := p.player.Close(); err != nil {
		return fmt.Errorf("cannot close oto player: %w", err)
	}
	return nil
}

// Spawn opens the default device and starts playing s in the background.
// Device errors are returned before playback starts; afterwards playback
// runs until ctx is done.
func Spawn(ctx context.Context, s bloop.Sampler, f bloop.Format) (bloop.Clock, error) {
	c, err := NewContext(f, 0)
	if err != nil {
		return nil, err
	}
	return c.Play(ctx, s)
}
