package testutil

import "sync"

// ManualScheduler is a debounce scheduler driven by the test. Nothing runs
// until Fire is called.
type ManualScheduler struct {
	mu        sync.Mutex
	pending   func()
	scheduled int
	stopped   bool
}

// NewManualScheduler returns an idle ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule replaces the pending function.
func (s *ManualScheduler) Schedule(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = fn
	s.scheduled++
}

// Cancel drops the pending function.
func (s *ManualScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
}

// Stop drops the pending function and marks the scheduler stopped.
func (s *ManualScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = nil
	s.stopped = true
}

// Fire runs the pending function, as if the quiet window elapsed. It
// reports whether anything ran.
func (s *ManualScheduler) Fire() bool {
	s.mu.Lock()
	fn := s.pending
	s.pending = nil
	s.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// Pending reports whether a function is waiting to run.
func (s *ManualScheduler) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending != nil
}

// Scheduled returns how many times Schedule was called.
func (s *ManualScheduler) Scheduled() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scheduled
}

// Stopped reports whether Stop was called.
func (s *ManualScheduler) Stopped() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stopped
}
