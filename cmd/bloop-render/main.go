package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"

	"github.com/vsariola/bloop"
	"github.com/vsariola/bloop/cmd"
	"github.com/vsariola/bloop/config"
	"github.com/vsariola/bloop/export"
	"github.com/vsariola/bloop/version"
)

const reportTemplate = `{{ .Name | upper }}
  music:    {{ .Music | toString | trunc 72 }}
  duration: {{ .Duration }}
  format:   {{ .Format }}
  peak:     {{ .Levels.Peak | printf "%.3f" }}
  rms:      {{ .Levels.RMS | printf "%.3f" }}
  wrote:    {{ join ", " .Files | default "nothing" }}
`

type report struct {
	Name     string
	Music    bloop.Music
	Duration bloop.Flick
	Format   bloop.Format
	Levels   export.Levels
	Files    []string
}

func newReportTemplate() *template.Template {
	return template.Must(template.New("report").Funcs(sprig.TxtFuncMap()).Parse(reportTemplate))
}

func main() {
	configFile := flag.String("config", "", "YAML configuration file. BLOOP_* environment variables override it.")
	stdout := flag.Bool("s", false, "Do not write files; write the .raw output to standard output instead.")
	help := flag.Bool("h", false, "Show help.")
	directory := flag.String("o", "", "Directory where to output all files. The directory and its parents are created if needed. By default, everything is placed in the working directory.")
	play := flag.Bool("p", false, "Play the tunes (default behaviour when no other output is defined).")
	rawOut := flag.Bool("r", false, "Output the rendered tune as .raw file, in the encoding given by -e.")
	wavOut := flag.Bool("w", false, "Output the rendered tune as 16-bit .wav file.")
	encoding := flag.String("e", "", "Encoding of .raw files: f32, s16 or u16. Defaults to the configured encoding.")
	volume := flag.Float64("volume", 0.5, "Volume between 0 and 1.")
	info := flag.Bool("i", false, "Print a report of every tune.")
	debug := flag.Bool("debug", false, "Log debug messages.")
	versionFlag := flag.Bool("v", false, "Print version.")
	flag.Usage = printUsage
	flag.Parse()
	if *versionFlag {
		fmt.Println(version.VersionOrHash)
		os.Exit(0)
	}
	if flag.NArg() == 0 || *help {
		flag.Usage()
		os.Exit(0)
	}
	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if cmd.IsFlagPassed("e") {
		cfg.Encoding = *encoding
	}
	if cmd.IsFlagPassed("volume") {
		cfg.Volume = *volume
	}
	if cmd.IsFlagPassed("debug") {
		cfg.Debug = *debug
	}
	format, err := cfg.Format()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	cmd.InitLogger(cfg.Debug)
	if *stdout && *wavOut {
		fmt.Fprintf(os.Stderr, ".wav output needs a seekable file and cannot go to standard output\n")
		os.Exit(1)
	}
	if !*rawOut && !*wavOut {
		*play = true // if the user gives nothing to output, then the default behaviour is just to play the tune
	}
	tmpl := newReportTemplate()
	var audioContext bloop.AudioContext
	if *play {
		audioContext, err = cmd.NewAudioContext(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "could not acquire %v audio context: %v\n", cfg.Backend, err)
			os.Exit(1)
		}
		defer audioContext.Close()
	}
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	process := func(name string) error {
		var files []string
		create := func(extension string) (*os.File, error) {
			dir := *directory
			if dir == "" {
				var err error
				dir, err = os.Getwd()
				if err != nil {
					return nil, fmt.Errorf("could not get working directory, specify the output directory explicitly: %v", err)
				}
			}
			if err := os.MkdirAll(dir, os.ModePerm); err != nil {
				return nil, fmt.Errorf("could not create output directory %v: %v", dir, err)
			}
			path := filepath.Join(dir, name+extension)
			f, err := os.Create(path)
			if err != nil {
				return nil, fmt.Errorf("could not create file %v: %v", path, err)
			}
			files = append(files, path)
			return f, nil
		}
		build, ok := tunes[name]
		if !ok {
			return fmt.Errorf("no such tune, available: %v", strings.Join(tuneNames(), ", "))
		}
		music, err := build(cfg.Volume)
		if err != nil {
			return fmt.Errorf("could not build the tune: %v", err)
		}
		length := music.Duration()
		slog.Debug("built", "tune", name, "music", music, "duration", length)
		if *rawOut {
			var raw bytes.Buffer
			if err := export.Raw(&raw, music, length, format); err != nil {
				return fmt.Errorf("could not generate .raw file: %v", err)
			}
			if *stdout {
				if _, err := os.Stdout.Write(raw.Bytes()); err != nil {
					return fmt.Errorf("could not write to standard output: %v", err)
				}
			} else {
				f, err := create(".raw")
				if err != nil {
					return err
				}
				_, err = f.Write(raw.Bytes())
				if cerr := f.Close(); err == nil {
					err = cerr
				}
				if err != nil {
					return fmt.Errorf("error outputting .raw file: %v", err)
				}
			}
		}
		if *wavOut {
			f, err := create(".wav")
			if err != nil {
				return err
			}
			err = export.Wav(f, music, length, format.SampleRate, format.Channels)
			if cerr := f.Close(); err == nil {
				err = cerr
			}
			if err != nil {
				return fmt.Errorf("error outputting .wav file: %v", err)
			}
		}
		if *info {
			buffer, err := export.Render(music, length, format)
			if err != nil {
				return fmt.Errorf("could not render the tune: %v", err)
			}
			r := report{Name: name, Music: music, Duration: length, Format: format, Levels: export.Measure(buffer), Files: files}
			if err := tmpl.Execute(os.Stderr, r); err != nil {
				return fmt.Errorf("could not print report: %v", err)
			}
		}
		if *play {
			playCtx, stop := context.WithCancel(ctx)
			defer stop()
			clock, err := audioContext.Play(playCtx, music)
			if err != nil {
				return fmt.Errorf("could not play: %v", err)
			}
			if err := cmd.WaitUntil(ctx, clock, length, cfg.BufferSize); err != nil {
				return err
			}
		}
		return nil
	}
	retval := 0
	for _, name := range flag.Args() {
		if err := process(name); err != nil {
			fmt.Fprintf(os.Stderr, "could not process tune %v: %v\n", name, err)
			retval = 1
		}
	}
	os.Exit(retval)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "bloop-render plays and renders the demo tunes (%v).\nUsage: %s [flags] [tune ...]\n", strings.Join(tuneNames(), ", "), os.Args[0])
	flag.PrintDefaults()
}
