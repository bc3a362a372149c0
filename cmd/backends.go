package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vsariola/bloop"
	"github.com/vsariola/bloop/config"
	"github.com/vsariola/bloop/oto"
)

// Backends maps a backend name to a function opening an audio context for
// the given configuration. Build tags can add more backends.
var Backends = map[string]func(cfg config.Config) (bloop.AudioContext, error){
	"oto": func(cfg config.Config) (bloop.AudioContext, error) {
		f, err := cfg.Format()
		if err != nil {
			return nil, err
		}
		c, err := oto.NewContext(f, cfg.BufferSize)
		if err != nil {
			return nil, err
		}
		return c, nil
	},
}

// NewAudioContext opens the backend named in cfg.
func NewAudioContext(cfg config.Config) (bloop.AudioContext, error) {
	open, ok := Backends[cfg.Backend]
	if !ok {
		return nil, fmt.Errorf("unknown backend %q, available: %v", cfg.Backend, BackendNames())
	}
	return open(cfg)
}

func BackendNames() string {
	names := make([]string, 0, len(Backends))
	for name := range Backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
