package view

import (
	"sync"
	"time"

	"github.com/romdo/go-debounce"
)

// DefaultSearchDebounce is the quiet period after the last search keystroke
// before the view is recomputed.
const DefaultSearchDebounce = 200 * time.Millisecond

// Scheduler runs a function once a quiet window has passed. Each Schedule
// call replaces the pending function and restarts the window, so at most
// one call is ever pending and only the latest one runs.
type Scheduler interface {
	Schedule(fn func())
	Cancel()
	Stop()
}

// debounceScheduler implements Scheduler on top of go-debounce.
type debounceScheduler struct {
	mu      sync.Mutex
	pending func()
	trigger func()
	stop    func()
}

// NewDebounceScheduler returns a Scheduler with the given quiet window.
func NewDebounceScheduler(wait time.Duration) Scheduler {
	s := &debounceScheduler{}
	s.trigger, s.stop = debounce.New(wait, s.fire)
	return s
}

func (s *debounceScheduler) Schedule(fn func()) {
	s.mu.Lock()
	s.pending = fn
	s.mu.Unlock()
	s.trigger()
}

func (s *debounceScheduler) Cancel() {
	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}

func (s *debounceScheduler) Stop() {
	s.Cancel()
	s.stop()
}

func (s *debounceScheduler) fire() {
	s.mu.Lock()
	fn := s.pending
	s.pending = nil
	s.mu.Unlock()

	if fn != nil {
		fn()
	}
}
