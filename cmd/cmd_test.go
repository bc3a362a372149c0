package cmd_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vsariola/bloop"
	"github.com/vsariola/bloop/cmd"
	"github.com/vsariola/bloop/config"
)

func TestUnknownBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Backend = "jack"
	_, err := cmd.NewAudioContext(cfg)
	if err == nil {
		t.Fatal("expected an error for an unknown backend")
	}
	if !strings.Contains(err.Error(), "oto") {
		t.Errorf("error %q does not list the available backends", err)
	}
}

func TestNullMIDIContext(t *testing.T) {
	var c cmd.MIDIContext = cmd.NullMIDIContext{}
	if names := c.InputNames(); len(names) != 0 {
		t.Errorf("InputNames() = %v, want none", names)
	}
	if _, err := c.Listen("", true, nil); err == nil {
		t.Error("Listen on a null context succeeded")
	}
	c.Close()
}

type fakeClock struct{ now atomic.Uint64 }

func (c *fakeClock) Now() bloop.Flick { return bloop.Flick(c.now.Load()) }

func TestWaitUntil(t *testing.T) {
	clock := &fakeClock{}
	done := make(chan error, 1)
	go func() { done <- cmd.WaitUntil(context.Background(), clock, 1000, 0) }()
	select {
	case <-done:
		t.Fatal("WaitUntil returned before the clock reached the end")
	case <-time.After(30 * time.Millisecond):
	}
	clock.now.Store(1000)
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("WaitUntil failed: %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("WaitUntil did not return after the clock reached the end")
	}
}

func TestWaitUntilCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := cmd.WaitUntil(ctx, &fakeClock{}, 1000, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
