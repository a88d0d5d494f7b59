package services

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/ports"
)

// Limits of a status report
const (
	StatusEventLimit   = 5
	StatusSessionLimit = 5
)

// StatusReport is what `devcon status` and `devcon watch` show
type StatusReport struct {
	BootReason  domain.RebootReason
	CollectedAt time.Time
	Counters    map[string]int64
	Events      []domain.TraceEvent
	Indicator   domain.Color
	Sessions    []domain.OtaSessionRecord
}

// StatusService reads the persisted device state for out-of-process viewers
type StatusService struct {
	indicator func() (domain.Color, error)
	metrics   ports.MetricsRepository
	now       func() time.Time
	traces    ports.TraceRepository
}

// NewStatusService creates the service. indicator reads the color written
// by the running process.
func NewStatusService(metrics ports.MetricsRepository, traces ports.TraceRepository, indicator func() (domain.Color, error)) *StatusService {
	return &StatusService{
		indicator: indicator,
		metrics:   metrics,
		now:       time.Now,
		traces:    traces,
	}
}

// Indicator returns the current indicator color, off when unknown
func (s *StatusService) Indicator() domain.Color {
	if s.indicator == nil {
		return domain.ColorOff
	}
	color, err := s.indicator()
	if err != nil {
		return domain.ColorOff
	}
	return color
}

// Report gathers counters, recent OTA sessions and trace events
func (s *StatusService) Report(ctx context.Context) (StatusReport, error) {
	report := StatusReport{
		CollectedAt: s.now(),
		Indicator:   s.Indicator(),
	}

	counters, err := s.metrics.GetCounters(ctx)
	if err != nil {
		return report, fmt.Errorf("failed to read counters: %w", err)
	}
	report.Counters = counters

	sessions, err := s.metrics.ListOtaSessions(ctx, StatusSessionLimit)
	if err != nil {
		return report, fmt.Errorf("failed to read OTA sessions: %w", err)
	}
	report.Sessions = sessions

	events, err := s.traces.ListTraceEvents(ctx, time.Time{}, StatusEventLimit)
	if err != nil {
		return report, fmt.Errorf("failed to read trace events: %w", err)
	}
	report.Events = events

	return report, nil
}
