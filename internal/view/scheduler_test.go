package view

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestDebounceScheduler_OnlyLatestRuns(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewDebounceScheduler(20 * time.Millisecond)
	defer s.Stop()

	var first, last atomic.Int32
	s.Schedule(func() { first.Add(1) })
	s.Schedule(func() { first.Add(1) })
	s.Schedule(func() { last.Add(1) })

	require.Eventually(t, func() bool { return last.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(0), first.Load())
	assert.Equal(t, int32(1), last.Load())
}

func TestDebounceScheduler_Cancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewDebounceScheduler(10 * time.Millisecond)
	defer s.Stop()

	var ran atomic.Bool
	s.Schedule(func() { ran.Store(true) })
	s.Cancel()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, ran.Load())
}

func TestDebounceScheduler_StopDiscardsPending(t *testing.T) {
	defer goleak.VerifyNone(t)

	s := NewDebounceScheduler(10 * time.Millisecond)
	var ran atomic.Bool
	s.Schedule(func() { ran.Store(true) })
	s.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, ran.Load())
}

func TestDebounceScheduler_RestartsWindow(t *testing.T) {
	s := NewDebounceScheduler(40 * time.Millisecond)
	defer s.Stop()

	var runs atomic.Int32
	for range 5 {
		s.Schedule(func() { runs.Add(1) })
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, int32(0), runs.Load(), "keystrokes inside the window keep postponing")

	require.Eventually(t, func() bool { return runs.Load() == 1 }, time.Second, 5*time.Millisecond)
}
