package cmd

import (
	"errors"

	"github.com/vsariola/bloop/instrument"
)

// MIDIContext delivers note events from a MIDI input device.
type MIDIContext interface {
	InputNames() []string
	// Listen opens the first input whose name starts with namePrefix, or the
	// first input at all if takeFirst is set, and returns its name.
	Listen(namePrefix string, takeFirst bool, fn func(instrument.NoteEvent)) (string, error)
	Close()
}

// NullMIDIContext has no inputs.
type NullMIDIContext struct{}

var errNoMIDI = errors.New("MIDI is not available in this build")

func (NullMIDIContext) InputNames() []string { return nil }

func (NullMIDIContext) Listen(string, bool, func(instrument.NoteEvent)) (string, error) {
	return "", errNoMIDI
}

func (NullMIDIContext) Close() {}
