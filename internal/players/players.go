// Package players stops the players of an audio context when their play
// context is done or the audio context is closed.
package players

import (
	"context"
	"errors"
	"sync"
)

// Set tracks the running players of an audio context. A player stops when
// its play context is done or when the audio context is closed, whichever
// comes first, so a player started with a context that is never cancelled
// does not outlive the device.
type Set struct {
	mu     sync.Mutex
	stops  map[int]func() error
	next   int
	closed chan struct{}
	done   bool
}

func New() *Set {
	return &Set{stops: map[int]func() error{}, closed: make(chan struct{})}
}

// Add registers stop and calls it once, when ctx is done or on CloseAll.
// After CloseAll, stop is only called when ctx is done.
func (s *Set) Add(ctx context.Context, stop func() error) {
	s.mu.Lock()
	id := s.next
	s.next++
	s.stops[id] = stop
	closed := s.closed
	if s.done {
		closed = nil
	}
	s.mu.Unlock()
	if ctx.Done() == nil {
		return
	}
	go func() {
		select {
		case <-ctx.Done():
			if stop := s.remove(id); stop != nil {
				stop()
			}
		case <-closed:
		}
	}()
}

func (s *Set) remove(id int) func() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stop := s.stops[id]
	delete(s.stops, id)
	return stop
}

// CloseAll stops every registered player and returns their errors joined.
func (s *Set) CloseAll() error {
	s.mu.Lock()
	stops := s.stops
	s.stops = map[int]func() error{}
	if !s.done {
		s.done = true
		close(s.closed)
	}
	s.mu.Unlock()
	var errs []error
	for _, stop := range stops {
		errs = append(errs, stop())
	}
	return errors.Join(errs...)
}

// Len returns the number of players still registered.
func (s *Set) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.stops)
}
