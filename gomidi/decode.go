// Package gomidi feeds note events from MIDI input devices to bloop
// instruments. The device part uses rtmidi and needs cgo.
package gomidi

import (
	"github.com/vsariola/bloop/instrument"
	"gitlab.com/gomidi/midi/v2"
)

// Decode converts a MIDI message to a note event. Messages other than note
// on/off are reported as not ok. A note on with zero velocity is a release,
// as many keyboards send those instead of note offs.
func Decode(msg midi.Message) (ev instrument.NoteEvent, ok bool) {
	var channel, key, velocity uint8
	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		return instrument.NoteEvent{On: velocity > 0, Channel: channel, Key: key, Velocity: velocity}, true
	case msg.GetNoteOff(&channel, &key, &velocity):
		return instrument.NoteEvent{On: false, Channel: channel, Key: key, Velocity: velocity}, true
	}
	return instrument.NoteEvent{}, false
}
