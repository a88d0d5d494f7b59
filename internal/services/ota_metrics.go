package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ports"
)

// OtaSessionMetrics records OTA attempts and counters in the metrics store.
// Storage failures are logged and never reach the supervisor.
type OtaSessionMetrics struct {
	now  func() time.Time
	repo ports.MetricsRepository

	mu      sync.Mutex
	current *domain.OtaSessionRecord
}

// NewOtaSessionMetrics creates the metrics service
func NewOtaSessionMetrics(repo ports.MetricsRepository) *OtaSessionMetrics {
	return &OtaSessionMetrics{
		now:  time.Now,
		repo: repo,
	}
}

// Start opens a session. Starting twice restarts the clock.
func (m *OtaSessionMetrics) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current != nil {
		logging.Logger.Warn("OTA metrics session already started, restarting", "session", m.current.ID)
	}
	m.current = &domain.OtaSessionRecord{
		ID:        uuid.New().String(),
		StartedAt: m.now(),
	}
	logging.Logger.Debug("OTA metrics session started", "session", m.current.ID)
}

// End closes the open session with resultCode and persists it. Without a
// prior Start the session is recorded with zero duration.
func (m *OtaSessionMetrics) End(ctx context.Context, resultCode int) {
	m.mu.Lock()
	record := m.current
	m.current = nil
	m.mu.Unlock()

	now := m.now()
	if record == nil {
		record = &domain.OtaSessionRecord{ID: uuid.New().String(), StartedAt: now}
	}
	record.EndedAt = now
	record.Duration = now.Sub(record.StartedAt)
	record.ResultCode = resultCode

	if err := m.repo.SaveOtaSession(ctx, *record); err != nil {
		logging.Logger.Error("Failed to save OTA metrics session", "session", record.ID, "error", err)
		return
	}
	logging.Logger.Info("OTA metrics session ended",
		"session", record.ID,
		"result_code", resultCode,
		"duration", record.Duration)
}

// Add increments a named counter
func (m *OtaSessionMetrics) Add(ctx context.Context, name string, delta int64) {
	if err := m.repo.AddCounter(ctx, name, delta); err != nil {
		logging.Logger.Warn("Failed to update counter", "counter", name, "error", err)
	}
}

// Counters returns all counter values
func (m *OtaSessionMetrics) Counters(ctx context.Context) (map[string]int64, error) {
	return m.repo.GetCounters(ctx)
}

// History returns the most recent finished sessions, newest first
func (m *OtaSessionMetrics) History(ctx context.Context, limit int) ([]domain.OtaSessionRecord, error) {
	return m.repo.ListOtaSessions(ctx, limit)
}
