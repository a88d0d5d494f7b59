package ports

import (
	"context"
	"time"

	"github.com/renato0307/devcon/internal/domain"
)

// SettingsRepository persists device settings (the NVS replacement)
type SettingsRepository interface {
	DeleteSetting(ctx context.Context, key domain.SettingKey) error
	GetSetting(ctx context.Context, key domain.SettingKey) (string, error)
	ListSettings(ctx context.Context) (map[domain.SettingKey]string, error)
	SetSetting(ctx context.Context, key domain.SettingKey, value string) error
}

// MetricsRepository persists OTA metrics sessions and counters
type MetricsRepository interface {
	AddCounter(ctx context.Context, name string, delta int64) error
	GetCounters(ctx context.Context) (map[string]int64, error)
	ListOtaSessions(ctx context.Context, limit int) ([]domain.OtaSessionRecord, error)
	SaveOtaSession(ctx context.Context, record domain.OtaSessionRecord) error
}

// TraceRepository persists trace events and frozen log collections
type TraceRepository interface {
	ListLogCollections(ctx context.Context, onlyPending bool) ([]domain.LogCollection, error)
	ListTraceEvents(ctx context.Context, since time.Time, limit int) ([]domain.TraceEvent, error)
	MarkLogCollectionUploaded(ctx context.Context, id string) error
	SaveLogCollection(ctx context.Context, collection domain.LogCollection) error
	SaveTraceEvent(ctx context.Context, event domain.TraceEvent) error
}

// RebootRepository persists the reason of the next restart
type RebootRepository interface {
	// ConsumeRebootReason returns the last marked reason and clears it.
	// It returns an empty reason when nothing was marked.
	ConsumeRebootReason(ctx context.Context) (domain.RebootReason, time.Time, error)
	MarkRebootReason(ctx context.Context, reason domain.RebootReason) error
}

// Repository is the composite interface
type Repository interface {
	MetricsRepository
	RebootRepository
	SettingsRepository
	TraceRepository
	Close() error
}
