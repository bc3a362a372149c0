package oto

import (
	"errors"
	"testing"

	"github.com/ebitengine/oto/v3"
	"github.com/vsariola/bloop"
)

func TestOtoFormat(t *testing.T) {
	cases := []struct {
		encoding bloop.Encoding
		want     oto.Format
	}{
		{bloop.EncodingInt16, oto.FormatSignedInt16LE},
		{bloop.EncodingFloat32, oto.FormatFloat32LE},
	}
	for _, c := range cases {
		got, err := otoFormat(c.encoding)
		if err != nil || got != c.want {
			t.Errorf("otoFormat(%v) = %v, %v; want %v", c.encoding, got, err, c.want)
		}
	}
}

// Formats oto cannot play must be rejected before a device is opened.
func TestNewContextRejectsFormats(t *testing.T) {
	cases := []struct {
		format bloop.Format
		want   error
	}{
		{bloop.Format{Channels: 2, SampleRate: 44100, Encoding: bloop.EncodingUint16}, bloop.ErrUnsupportedEncoding},
		{bloop.Format{Channels: 0, SampleRate: 44100, Encoding: bloop.EncodingFloat32}, bloop.ErrInvalidFormat},
	}
	for _, c := range cases {
		if _, err := NewContext(c.format, 0); !errors.Is(err, c.want) {
			t.Errorf("NewContext(%v): expected %v, got %v", c.format, c.want, err)
		}
	}
}
