package ports

import (
	"context"
	"time"

	"github.com/renato0307/devcon/internal/domain"
)

// UpdateSupervisor exposes the running OTA supervisor to operators
type UpdateSupervisor interface {
	Snapshot() domain.SupervisorSnapshot
	// TriggerCheck requests an immediate cycle. It returns false when a
	// request is already pending.
	TriggerCheck() bool
}

// TaskInspector lists the watchdog slots
type TaskInspector interface {
	Slots() []domain.SlotInfo
}

// TaskLock is the mutex contended by the lock task
type TaskLock interface {
	Hold() bool
	Release() bool
}

// NetworkJoiner joins a network on demand
type NetworkJoiner interface {
	IsConnected(ctx context.Context) bool
	Join(ctx context.Context, ssid, password string, timeout time.Duration) error
	Target() string
}

// BootReasonReader returns the reason recorded before the current start
type BootReasonReader interface {
	BootReason() (domain.RebootReason, time.Time)
}
