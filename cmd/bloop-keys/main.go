package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/eiannone/keyboard"
	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/vsariola/bloop"
	"github.com/vsariola/bloop/cmd"
	"github.com/vsariola/bloop/config"
	"github.com/vsariola/bloop/instrument"
	"github.com/vsariola/bloop/version"
)

func main() {
	configFile := flag.String("config", "", "YAML configuration file. BLOOP_* environment variables override it.")
	backend := flag.String("backend", "oto", "Audio backend, one of: "+cmd.BackendNames()+".")
	octave := flag.Int("octave", 3, "Octave of the lowest key.")
	volume := flag.Float64("volume", 0.5, "Volume of each key between 0 and 1.")
	hold := flag.Duration("hold", 300*time.Millisecond, "How long a key sounds after it was last pressed. Terminals report no key releases.")
	midiInput := flag.String("midi", "", "Listen to the MIDI input whose name starts with this; * takes the first input.")
	listMidi := flag.Bool("l", false, "List MIDI inputs and exit.")
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
	if cmd.IsFlagPassed("hold") {
		cfg.Hold = *hold
	}
	if cmd.IsFlagPassed("midi") {
		cfg.MIDIInput = *midiInput
	}
	if cmd.IsFlagPassed("debug") {
		cfg.Debug = *debug
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	cmd.InitLogger(cfg.Debug)

	midiContext := cmd.NewMIDIContext()
	defer midiContext.Close()
	if *listMidi {
		for _, name := range midiContext.InputNames() {
			fmt.Println(name)
		}
		return
	}

	lowKey := bloop.C.Key(*octave)
	piano := bloop.Share(instrument.Chromatic(lowKey, numKeys, cfg.Volume, instrument.DefaultEnvelope()))
	audioContext, err := cmd.NewAudioContext(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not acquire %v audio context: %v\n", cfg.Backend, err)
		os.Exit(1)
	}
	defer audioContext.Close()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock, err := audioContext.Play(ctx, piano)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not play: %v\n", err)
		os.Exit(1)
	}
	slog.Debug("playing", "format", audioContext.Format(), "lowKey", bloop.KeyName(lowKey))

	if cfg.MIDIInput != "" {
		name, err := midiContext.Listen(cfg.MIDIInput, cfg.MIDIInput == "*", func(ev instrument.NoteEvent) {
			slog.Debug("midi", "on", ev.On, "key", bloop.KeyName(int(ev.Key)), "velocity", ev.Velocity)
			piano.Update(func(k *instrument.Keyboard) { k.HandleNote(ev, clock.Now()) })
		})
		if err != nil {
			slog.Warn("no MIDI input", "err", err)
		} else {
			slog.Info("listening to MIDI input", "name", name)
		}
	}

	keys, err := keyboard.GetKeys(16)
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not read the terminal: %v\n", err)
		os.Exit(1)
	}
	defer keyboard.Close()

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		go showHeld(ctx, piano, lowKey)
	}

	l := layout()
	releases := make([]*time.Timer, numKeys)
	for ev := range keys {
		if ev.Err != nil {
			slog.Error("terminal", "err", ev.Err)
			break
		}
		if ev.Key == keyboard.KeyEsc || ev.Key == keyboard.KeyCtrlC {
			break
		}
		i, ok := l[ev.Rune]
		if !ok {
			continue
		}
		// keyboard autorepeat keeps a held key sounding
		if releases[i] != nil && releases[i].Stop() {
			releases[i].Reset(cfg.Hold)
			continue
		}
		now := clock.Now()
		piano.Update(func(k *instrument.Keyboard) { k.Press(i, now) })
		releases[i] = time.AfterFunc(cfg.Hold, func() {
			piano.Update(func(k *instrument.Keyboard) { k.Release(i, clock.Now()) })
		})
	}
	for _, t := range releases {
		if t != nil {
			t.Stop()
		}
	}
}

// showHeld keeps a status line of the held keys until ctx is done.
func showHeld(ctx context.Context, piano *bloop.Shared[*instrument.Keyboard], lowKey int) {
	w := uilive.New()
	w.Start()
	defer w.Stop()
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	var held []int
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		piano.Update(func(k *instrument.Keyboard) { held = k.Held(held[:0]) })
		writeHeld(w, held, lowKey, width())
	}
}

func writeHeld(w io.Writer, held []int, lowKey, width int) {
	names := make([]string, len(held))
	for i, h := range held {
		names[i] = bloop.KeyName(lowKey + h)
	}
	line := "held: " + strings.Join(names, " ")
	if width > 0 && len(line) > width {
		line = line[:width]
	}
	fmt.Fprintln(w, line)
}

func width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "bloop-keys plays the terminal keyboard like a piano:\n\n")
	fmt.Fprintf(os.Stderr, "   %s\n   %s\n\n", string(upperRow), string(lowerRow))
	fmt.Fprintf(os.Stderr, "Esc or Ctrl-C quits.\nUsage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
}
