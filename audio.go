package bloop

import "context"

type (
	// AudioContext is an output device ready to play a Sampler.
	AudioContext interface {
		// Format is the format the device was opened with.
		Format() Format

		// Play starts pulling samples from s on a background goroutine and
		// returns right away. Playback runs until ctx is done. Errors in
		// acquiring or starting the device are returned before any audio
		// goroutine is started.
		Play(ctx context.Context, s Sampler) (Clock, error)

		Close() error
	}

	// Clock reports the playback position of a running player, so that
	// control code can timestamp events in the same time base the audio
	// goroutine samples with.
	Clock interface {
		Now() Flick
	}
)
