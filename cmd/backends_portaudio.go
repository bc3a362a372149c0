//go:build portaudio

package cmd

import (
	"github.com/vsariola/bloop"
	"github.com/vsariola/bloop/config"
	"github.com/vsariola/bloop/portaudio"
)

func init() {
	Backends["portaudio"] = func(cfg config.Config) (bloop.AudioContext, error) {
		f, err := cfg.Format()
		if err != nil {
			return nil, err
		}
		c, err := portaudio.NewContext(f.Channels, f.Encoding)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
}
