package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/vsariola/bloop"
	"github.com/vsariola/bloop/cmd"
	"github.com/vsariola/bloop/config"
	"github.com/vsariola/bloop/instrument"
	"github.com/vsariola/bloop/version"
)

func main() {
	configFile := flag.String("config", "", "YAML configuration file. BLOOP_* environment variables override it.")
	backend := flag.String("backend", "oto", "Audio backend, one of: "+cmd.BackendNames()+".")
	pitch := flag.String("pitch", "A4", "Pitch of the note, e.g. A4, C#5 or Bb3.")
	volume := flag.Float64("volume", 0.5, "Volume between 0 and 1.")
	duration := flag.Duration("duration", 5*time.Second, "Length of the note.")
	debug := flag.Bool("debug", false, "Log debug messages.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if cmd.IsFlagPassed("backend") {
		cfg.Backend = *backend
	}
	if cmd.IsFlagPassed("volume") {
		cfg.Volume = *volume
	}
	if cmd.IsFlagPassed("debug") {
		cfg.Debug = *debug
	}
	cmd.InitLogger(cfg.Debug)
	class, octave, err := bloop.ParsePitch(*pitch)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if *duration <= 0 {
		fmt.Fprintf(os.Stderr, "duration must be positive\n")
		os.Exit(1)
	}
	length := bloop.FromDuration(*duration)
	music := bloop.Prim(bloop.Note(length, instrument.Sine{Pitch: class.Freq(octave), Volume: cfg.Volume}))

	audioContext, err := cmd.NewAudioContext(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not acquire %v audio context: %v\n", cfg.Backend, err)
		os.Exit(1)
	}
	defer audioContext.Close()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	slog.Debug("playing", "music", music, "format", audioContext.Format())
	clock, err := audioContext.Play(ctx, music)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not play: %v\n", err)
		os.Exit(1)
	}
	// the device buffer still holds some audio when the clock reaches the
	// end, so let it drain
	if err := cmd.WaitUntil(ctx, clock, music.Duration(), cfg.BufferSize); err != nil {
		slog.Debug("interrupted", "err", err)
		return
	}
	slog.Debug("done", "position", clock.Now())
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "bloop-beep plays a single sine note.\nUsage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}
