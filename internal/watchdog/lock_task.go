package watchdog

import (
	"context"
	"time"

	"github.com/renato0307/devcon/internal/logging"
)

const (
	// LockTaskID is the watchdog slot owned by the lock task
	LockTaskID = "lock_task"
	// LockTaskPeriod is how often the lock task takes its lock
	LockTaskPeriod = 250 * time.Millisecond
)

// LockTask is a supervised task that periodically takes a lock while armed.
// Holding the lock from elsewhere stalls it, which the watchdog then reports.
type LockTask struct {
	lock   chan struct{}
	period time.Duration
	wdt    *Registry
}

// NewLockTask registers the task's slot with the given deadline
func NewLockTask(wdt *Registry, deadline time.Duration) (*LockTask, error) {
	if err := wdt.Register(LockTaskID, deadline); err != nil {
		return nil, err
	}
	return &LockTask{
		lock:   make(chan struct{}, 1),
		period: LockTaskPeriod,
		wdt:    wdt,
	}, nil
}

// Hold takes the lock and keeps it. It returns false if already held.
func (t *LockTask) Hold() bool {
	select {
	case t.lock <- struct{}{}:
		logging.Logger.Warn("Lock task lock held, task will stall")
		return true
	default:
		return false
	}
}

// Release frees a lock taken by Hold. It returns false if the lock was free.
func (t *LockTask) Release() bool {
	select {
	case <-t.lock:
		logging.Logger.Info("Lock task lock released")
		return true
	default:
		return false
	}
}

// Run loops until ctx is cancelled
func (t *LockTask) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := t.step(ctx); err != nil {
				return err
			}
		}
	}
}

func (t *LockTask) step(ctx context.Context) error {
	if err := t.wdt.Start(LockTaskID); err != nil {
		return err
	}

	select {
	case t.lock <- struct{}{}:
		<-t.lock
	case <-ctx.Done():
		return nil
	}

	return t.wdt.Stop(LockTaskID)
}
