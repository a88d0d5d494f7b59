package ports

import (
	"context"

	"github.com/renato0307/devcon/internal/domain"
)

// Diagnostics records trace events and freezes recent logs for upload
type Diagnostics interface {
	TraceEvent(ctx context.Context, reason, message string)
	TriggerLogCollection(ctx context.Context)
}

// LogUploader ships a frozen log collection off the device
type LogUploader interface {
	Upload(ctx context.Context, collection domain.LogCollection) error
}

// Restarter restarts or terminates the process, recording why first
type Restarter interface {
	MarkResetImminent(ctx context.Context, reason domain.RebootReason)
	Restart() error
}

// LogBuffer exposes the most recent log lines
type LogBuffer interface {
	Freeze() []string
}
