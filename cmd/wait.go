package cmd

import (
	"context"
	"time"

	"github.com/vsariola/bloop"
)

// WaitUntil polls clock until it reaches t, then waits drain more for the
// device buffer to play out. It returns early with ctx.Err() if ctx is done.
func WaitUntil(ctx context.Context, clock bloop.Clock, t bloop.Flick, drain time.Duration) error {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for clock.Now() < t {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(drain):
	}
	return nil
}
