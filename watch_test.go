package main

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartWatchScheduler_RunsImmediatelyAndRepeats(t *testing.T) {
	var runs atomic.Int32
	s, err := startWatchScheduler(20*time.Millisecond, clockwork.NewRealClock(), func() {
		runs.Add(1)
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return runs.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
	require.NoError(t, s.Shutdown())

	after := runs.Load()
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, after, runs.Load(), "no runs after shutdown")
}

func TestStartWatchScheduler_NoOverlap(t *testing.T) {
	var running, maxRunning atomic.Int32
	s, err := startWatchScheduler(5*time.Millisecond, clockwork.NewRealClock(), func() {
		n := running.Add(1)
		for {
			m := maxRunning.Load()
			if n <= m || maxRunning.CompareAndSwap(m, n) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		running.Add(-1)
	})
	require.NoError(t, err)

	time.Sleep(150 * time.Millisecond)
	require.NoError(t, s.Shutdown())
	assert.Equal(t, int32(1), maxRunning.Load())
}

func TestStartWatchScheduler_InvalidInterval(t *testing.T) {
	_, err := startWatchScheduler(0, clockwork.NewRealClock(), func() {})
	assert.Error(t, err)
}
