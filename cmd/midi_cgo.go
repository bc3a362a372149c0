//go:build cgo

package cmd

import "github.com/vsariola/bloop/gomidi"

func NewMIDIContext() MIDIContext {
	return gomidi.NewContext()
}
