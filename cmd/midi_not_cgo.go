//go:build !cgo

package cmd

func NewMIDIContext() MIDIContext {
	// with no cgo, we cannot use rtmidi, so return a null context
	return NullMIDIContext{}
}
