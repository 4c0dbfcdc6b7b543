package connectivity

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func waitFor(t *testing.T, cond func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal(msg)
}

func TestMonitor_ReportsInitialState(t *testing.T) {
	var up atomic.Bool
	up.Store(true)
	probe := func(ctx context.Context) bool { return up.Load() }

	m := NewWithProbe(probe, time.Hour, newTestLogger())
	defer m.Close()

	assert.True(t, m.IsOnline())
}

func TestMonitor_OnOnline_FiresOncePerEdge(t *testing.T) {
	var up atomic.Bool
	probe := func(ctx context.Context) bool { return up.Load() }

	m := NewWithProbe(probe, 5*time.Millisecond, newTestLogger())
	defer m.Close()

	var fired atomic.Int32
	cancel := m.OnOnline(func() { fired.Add(1) })
	defer cancel()

	require.False(t, m.IsOnline())

	// offline → online: exactly one notification even across many ticks.
	up.Store(true)
	waitFor(t, func() bool { return fired.Load() == 1 }, "expected online edge to fire")
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load(), "steady online state must not re-fire")

	// online → offline → online: a second edge fires again.
	up.Store(false)
	waitFor(t, func() bool { return !m.IsOnline() }, "expected monitor to observe offline")
	up.Store(true)
	waitFor(t, func() bool { return fired.Load() == 2 }, "expected second online edge to fire")
}

func TestMonitor_CanceledSubscriberStopsFiring(t *testing.T) {
	var up atomic.Bool
	probe := func(ctx context.Context) bool { return up.Load() }

	m := NewWithProbe(probe, 5*time.Millisecond, newTestLogger())
	defer m.Close()

	var fired atomic.Int32
	cancel := m.OnOnline(func() { fired.Add(1) })
	cancel()
	cancel() // idempotent

	up.Store(true)
	waitFor(t, func() bool { return m.IsOnline() }, "expected monitor to observe online")
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(0), fired.Load())
}

func TestMonitor_CloseStopsLoop(t *testing.T) {
	probe := func(ctx context.Context) bool { return true }
	m := NewWithProbe(probe, 5*time.Millisecond, newTestLogger())

	require.NoError(t, m.Close())
}
