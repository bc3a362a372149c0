//go:build cgo

package gomidi

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vsariola/bloop/instrument"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// RTMIDIContext owns the rtmidi driver and at most one open input.
type RTMIDIContext struct {
	driver    *rtmididrv.Driver
	currentIn drivers.In
	stop      func()
}

var (
	errNoDriver = errors.New("no MIDI driver available")
	errNoInput  = errors.New("no matching MIDI input")
)

// NewContext opens the driver. There is not much to do if this fails, so a
// nil driver just means that every Listen fails.
func NewContext() *RTMIDIContext {
	m := RTMIDIContext{}
	m.driver, _ = rtmididrv.New()
	return &m
}

// InputNames lists the names of the available input ports.
func (c *RTMIDIContext) InputNames() []string {
	if c.driver == nil {
		return nil
	}
	ins, err := c.driver.Ins()
	if err != nil {
		return nil
	}
	names := make([]string, len(ins))
	for i, in := range ins {
		names[i] = in.String()
	}
	return names
}

// Listen opens the first input whose name starts with namePrefix (or the
// very first input when takeFirst is set) and calls fn for every note event
// it receives. fn runs on the driver's goroutine. A previously opened input
// is closed first.
func (c *RTMIDIContext) Listen(namePrefix string, takeFirst bool, fn func(instrument.NoteEvent)) (string, error) {
	if c.driver == nil {
		return "", errNoDriver
	}
	ins, err := c.driver.Ins()
	if err != nil {
		return "", fmt.Errorf("cannot list MIDI inputs: %w", err)
	}
	for _, in := range ins {
		if !takeFirst && !strings.HasPrefix(in.String(), namePrefix) {
			continue
		}
		c.closeInput()
		if err := in.Open(); err != nil {
			return "", fmt.Errorf("opening MIDI input %v failed: %w", in, err)
		}
		stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
			if ev, ok := Decode(msg); ok {
				fn(ev)
			}
		})
		if err != nil {
			in.Close()
			return "", fmt.Errorf("listening to MIDI input %v failed: %w", in, err)
		}
		c.currentIn, c.stop = in, stop
		return in.String(), nil
	}
	if takeFirst {
		return "", errNoInput
	}
	return "", fmt.Errorf("%w: prefix %q", errNoInput, namePrefix)
}

func (c *RTMIDIContext) closeInput() {
	if c.stop != nil {
		c.stop()
		c.stop = nil
	}
	if c.currentIn != nil && c.currentIn.IsOpen() {
		c.currentIn.Close()
	}
	c.currentIn = nil
}

func (c *RTMIDIContext) Close() {
	if c.driver == nil {
		return
	}
	c.closeInput()
	c.driver.Close()
}
