package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/vsariola/bloop"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime configuration of the bloop binaries. Values come
// from the defaults, then an optional YAML file, then BLOOP_* environment
// variables; command line flags are applied last by each binary.
type Config struct {
	// Audio output
	Backend    string        `yaml:"backend"`    // oto or portaudio
	SampleRate int           `yaml:"sampleRate"` // must divide bloop.FlicksPerSecond to avoid drift
	Channels   int           `yaml:"channels"`
	Encoding   string        `yaml:"encoding"`   // f32, s16 or u16
	BufferSize time.Duration `yaml:"bufferSize"` // device buffer length

	// Live play
	MIDIInput string        `yaml:"midiInput,omitempty"` // MIDI input name prefix; "*" takes the first
	Volume    float64       `yaml:"volume"`
	Hold      time.Duration `yaml:"hold"` // how long a terminal key press sounds

	Debug bool `yaml:"debug,omitempty"`
}

func Default() Config {
	return Config{
		Backend:    "oto",
		SampleRate: 44100,
		Channels:   2,
		Encoding:   "f32",
		BufferSize: 40 * time.Millisecond,
		Volume:     0.5,
		Hold:       300 * time.Millisecond,
	}
}

// Load returns the defaults overridden by the YAML file at path (skipped if
// path is empty) and the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("could not read config %v: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("could not parse config %v: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	c.Backend = envStr("BLOOP_BACKEND", c.Backend)
	c.SampleRate = envInt("BLOOP_SAMPLE_RATE", c.SampleRate)
	c.Channels = envInt("BLOOP_CHANNELS", c.Channels)
	c.Encoding = envStr("BLOOP_ENCODING", c.Encoding)
	c.BufferSize = envDuration("BLOOP_BUFFER_SIZE", c.BufferSize)
	c.MIDIInput = envStr("BLOOP_MIDI_INPUT", c.MIDIInput)
	c.Volume = envFloat("BLOOP_VOLUME", c.Volume)
	c.Hold = envDuration("BLOOP_HOLD", c.Hold)
	c.Debug = envBool("BLOOP_DEBUG", c.Debug)
}

// Validate checks the audio format and the live play settings.
func (c Config) Validate() error {
	if _, err := c.Format(); err != nil {
		return err
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %v is outside [0, 1]", c.Volume)
	}
	if c.Hold <= 0 {
		return errors.New("hold must be positive")
	}
	return nil
}

// Format returns the audio format described by the config.
func (c Config) Format() (bloop.Format, error) {
	e, err := bloop.ParseEncoding(c.Encoding)
	if err != nil {
		return bloop.Format{}, err
	}
	f := bloop.Format{Channels: c.Channels, SampleRate: c.SampleRate, Encoding: e}
	if err := f.Validate(); err != nil {
		return bloop.Format{}, err
	}
	return f, nil
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
