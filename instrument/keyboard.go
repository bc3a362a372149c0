package instrument

import "github.com/vsariola/bloop"

// Channel is one key of a keyboard: a sine voice shaped by an envelope,
// sounding from the time it was pressed. A channel that was never pressed is
// silent.
//
// Press and Release write several fields, so a channel that is sampled by
// the audio goroutine must only be changed through bloop.Shared.Update.
type Channel struct {
	Pitch    float64
	Volume   float64
	Envelope ADSR

	start    bloop.Flick
	end      bloop.Flick
	pressed  bool
	released bool
}

func NewChannel(pitch, volume float64, env ADSR) *Channel {
	return &Channel{Pitch: pitch, Volume: volume, Envelope: env}
}

// Press starts the note at time t, cancelling any pending release.
func (c *Channel) Press(t bloop.Flick) {
	c.start = t
	c.end = 0
	c.pressed = true
	c.released = false
}

// Release starts the release phase of the envelope at time t.
func (c *Channel) Release(t bloop.Flick) {
	if !c.pressed {
		return
	}
	c.end = t
	c.released = true
}

// Held reports whether the key is down.
func (c *Channel) Held() bool {
	return c.pressed && !c.released
}

func (c *Channel) Sample(t bloop.Flick) bloop.Sample {
	if !c.pressed || t < c.start {
		return bloop.Silence
	}
	var end bloop.Flick
	if c.end > c.start {
		end = c.end - c.start
	}
	level := c.Envelope.Level(t-c.start, end, c.released)
	return quantize(c.Volume * level * oscillate(c.Pitch, t))
}

type (
	// Keyboard is a bank of channels mixed into one sampler.
	Keyboard struct {
		Channels bloop.Voices[*Channel]
		LowKey   int // MIDI key of channel 0, used by HandleNote
	}

	// NoteEvent is a key press or release coming from a MIDI device or any
	// other control source.
	NoteEvent struct {
		On       bool
		Channel  uint8
		Key      uint8
		Velocity uint8
	}
)

// NewKeyboard creates one channel per pitch, all sharing volume and envelope.
func NewKeyboard(pitches []float64, volume float64, env ADSR) *Keyboard {
	k := &Keyboard{Channels: make(bloop.Voices[*Channel], len(pitches))}
	for i, p := range pitches {
		k.Channels[i] = NewChannel(p, volume, env)
	}
	return k
}

// Chromatic creates a keyboard of n semitones starting from MIDI key
// lowKey. Channel i plays key lowKey+i.
func Chromatic(lowKey, n int, volume float64, env ADSR) *Keyboard {
	pitches := make([]float64, n)
	for i := range pitches {
		pitches[i] = bloop.KeyFreq(lowKey + i)
	}
	k := NewKeyboard(pitches, volume, env)
	k.LowKey = lowKey
	return k
}

func (k *Keyboard) Len() int { return len(k.Channels) }

// Press presses channel i at time t. Out of range indices are ignored.
func (k *Keyboard) Press(i int, t bloop.Flick) {
	if i >= 0 && i < len(k.Channels) {
		k.Channels[i].Press(t)
	}
}

// Release releases channel i at time t. Out of range indices are ignored.
func (k *Keyboard) Release(i int, t bloop.Flick) {
	if i >= 0 && i < len(k.Channels) {
		k.Channels[i].Release(t)
	}
}

// HandleNote presses or releases the channel playing ev.Key at time t.
// Keys outside the keyboard are ignored.
func (k *Keyboard) HandleNote(ev NoteEvent, t bloop.Flick) {
	i := int(ev.Key) - k.LowKey
	if ev.On {
		k.Press(i, t)
	} else {
		k.Release(i, t)
	}
}

// Held appends the indices of the channels currently held down to dst.
func (k *Keyboard) Held(dst []int) []int {
	for i, c := range k.Channels {
		if c.Held() {
			dst = append(dst, i)
		}
	}
	return dst
}

func (k *Keyboard) Sample(t bloop.Flick) bloop.Sample {
	return k.Channels.Sample(t)
}
