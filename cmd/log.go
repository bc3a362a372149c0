package cmd

import (
	"flag"
	"log/slog"
	"os"
)

// InitLogger routes slog to stderr, at debug level and with source
// locations when debug is set.
func InitLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	slog.SetDefault(slog.New(h))
}

// IsFlagPassed reports whether the flag was given on the command line, so
// that only explicit flags override the config file.
func IsFlagPassed(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
