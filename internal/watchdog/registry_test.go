package watchdog

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/devcon/internal/domain"
	portsmocks "github.com/renato0307/devcon/internal/ports/mocks"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

type faultRecorder struct {
	mu     sync.Mutex
	faults []domain.SlotInfo
}

func (f *faultRecorder) handle(ctx context.Context, slot domain.SlotInfo) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.faults = append(f.faults, slot)
}

func (f *faultRecorder) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.faults)
}

func newTestRegistry() (*Registry, *fakeClock, *faultRecorder) {
	clock := &fakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	faults := &faultRecorder{}
	return NewRegistry(faults.handle, WithClock(clock.Now)), clock, faults
}

func TestRegistry_SlotLifecycle(t *testing.T) {
	r, _, _ := newTestRegistry()

	require.NoError(t, r.Register("ota", time.Second))
	assert.ErrorIs(t, r.Register("ota", time.Second), domain.ErrSlotExists)

	require.NoError(t, r.Start("ota"))
	require.NoError(t, r.Feed("ota"))
	require.NoError(t, r.Stop("ota"))
	require.NoError(t, r.Unregister("ota"))

	for name, op := range map[string]func(string) error{
		"start":      r.Start,
		"feed":       r.Feed,
		"stop":       r.Stop,
		"unregister": r.Unregister,
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, op("ota"), domain.ErrSlotNotFound)
		})
	}
}

func TestRegistry_DeadlineNeverFiresEarly(t *testing.T) {
	r, clock, faults := newTestRegistry()
	require.NoError(t, r.Register("task", 1000*time.Millisecond))

	t0 := clock.Now()
	require.NoError(t, r.Start("task"))

	for _, offset := range []time.Duration{0, 1, 500 * time.Millisecond, 999 * time.Millisecond, 1000 * time.Millisecond} {
		stuck := r.Sweep(context.Background(), t0.Add(offset))
		assert.Empty(t, stuck, "offset %s", offset)
	}
	assert.Zero(t, faults.count())

	stuck := r.Sweep(context.Background(), t0.Add(1001*time.Millisecond))
	require.Len(t, stuck, 1)
	assert.Equal(t, "task", stuck[0].TaskID)
	assert.Equal(t, 1, faults.count())
}

func TestRegistry_SweepSkipsInertSlots(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(r *Registry)
	}{
		{"registered but not armed", func(r *Registry) {
			_ = r.Register("task", time.Second)
		}},
		{"disarmed after start", func(r *Registry) {
			_ = r.Register("task", time.Second)
			_ = r.Start("task")
			_ = r.Stop("task")
		}},
		{"no deadline", func(r *Registry) {
			_ = r.Register("task", 0)
			_ = r.Start("task")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, clock, faults := newTestRegistry()
			tt.prepare(r)

			stuck := r.Sweep(context.Background(), clock.Advance(time.Hour))

			assert.Empty(t, stuck)
			assert.Zero(t, faults.count())
		})
	}
}

func TestRegistry_FeedPostponesDeadline(t *testing.T) {
	r, clock, faults := newTestRegistry()
	require.NoError(t, r.Register("task", time.Second))
	require.NoError(t, r.Start("task"))

	for i := 0; i < 5; i++ {
		clock.Advance(800 * time.Millisecond)
		require.NoError(t, r.Feed("task"))
		assert.Empty(t, r.Sweep(context.Background(), clock.Advance(100*time.Millisecond)))
	}
	assert.Zero(t, faults.count())
}

func TestRegistry_RunSweepsPeriodically(t *testing.T) {
	faults := &faultRecorder{}
	r := NewRegistry(faults.handle, WithInterval(5*time.Millisecond))
	require.NoError(t, r.Register("task", time.Millisecond))
	require.NoError(t, r.Start("task"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- r.Run(ctx) }()

	require.Eventually(t, func() bool { return faults.count() > 0 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
}

func TestFatalHandler(t *testing.T) {
	diagnostics := portsmocks.NewMockDiagnostics(t)
	restarter := portsmocks.NewMockRestarter(t)

	diagnostics.EXPECT().TraceEvent(mock.Anything, domain.TraceTaskWatchdog, mock.AnythingOfType("string")).Return()
	restarter.EXPECT().MarkResetImminent(mock.Anything, domain.RebootReasonTaskWatchdog).Return()

	exitCode := -1
	handler := NewFatalHandler(diagnostics, restarter, func(code int) { exitCode = code })

	handler(context.Background(), domain.SlotInfo{TaskID: "lock_task", Armed: true, Deadline: time.Second})

	assert.Equal(t, FatalExitCode, exitCode)
}

func TestFatalHandler_RunsHooksBeforeExit(t *testing.T) {
	var calls []string
	handler := NewFatalHandler(nil, nil,
		func(code int) { calls = append(calls, "exit") },
		func() { calls = append(calls, "restore terminal") },
		func() { calls = append(calls, "close store") },
	)

	handler(context.Background(), domain.SlotInfo{TaskID: "lock_task", Armed: true, Deadline: time.Second})

	assert.Equal(t, []string{"restore terminal", "close store", "exit"}, calls)
}
