package bloop

import "sync"

// Shared guards a sampler with a mutex so that control goroutines (key
// handlers, MIDI input) can mutate instrument state while the audio
// goroutine samples it. The lock is held for one Sample call or one Update,
// never for a whole buffer, so every sample sees a consistent snapshot of
// the state.
type Shared[S Sampler] struct {
	mu      sync.Mutex
	sampler S
}

// Share wraps s for playback; s must not be touched directly afterwards.
func Share[S Sampler](s S) *Shared[S] {
	return &Shared[S]{sampler: s}
}

func (s *Shared[S]) Sample(t Flick) Sample {
	s.mu.Lock()
	ret := s.sampler.Sample(t)
	s.mu.Unlock()
	return ret
}

// Update calls f with the guarded sampler while holding the lock. f must not
// block.
func (s *Shared[S]) Update(f func(S)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.sampler)
}
