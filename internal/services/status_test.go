package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/devcon/internal/domain"
	portsmocks "github.com/renato0307/devcon/internal/ports/mocks"
)

func TestStatusService_Report(t *testing.T) {
	metrics := portsmocks.NewMockMetricsRepository(t)
	traces := portsmocks.NewMockTraceRepository(t)
	metrics.EXPECT().GetCounters(mock.Anything).Return(map[string]int64{domain.CounterSyncFailure: 2}, nil)
	metrics.EXPECT().ListOtaSessions(mock.Anything, StatusSessionLimit).Return([]domain.OtaSessionRecord{{ID: "s1", ResultCode: 404}}, nil)
	traces.EXPECT().ListTraceEvents(mock.Anything, time.Time{}, StatusEventLimit).Return([]domain.TraceEvent{{Reason: "task_watchdog"}}, nil)

	service := NewStatusService(metrics, traces, func() (domain.Color, error) { return domain.ColorRed, nil })
	service.now = func() time.Time { return fixedTime }

	report, err := service.Report(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fixedTime, report.CollectedAt)
	assert.Equal(t, domain.ColorRed, report.Indicator)
	assert.Equal(t, int64(2), report.Counters[domain.CounterSyncFailure])
	require.Len(t, report.Sessions, 1)
	assert.Equal(t, 404, report.Sessions[0].ResultCode)
	require.Len(t, report.Events, 1)
}

func TestStatusService_ReportErrors(t *testing.T) {
	metrics := portsmocks.NewMockMetricsRepository(t)
	metrics.EXPECT().GetCounters(mock.Anything).Return(nil, errors.New("locked"))

	service := NewStatusService(metrics, portsmocks.NewMockTraceRepository(t), nil)

	report, err := service.Report(context.Background())
	assert.ErrorContains(t, err, "failed to read counters")
	assert.Equal(t, domain.ColorOff, report.Indicator)
}

func TestStatusService_IndicatorReadError(t *testing.T) {
	service := NewStatusService(nil, nil, func() (domain.Color, error) { return "", errors.New("missing") })

	assert.Equal(t, domain.ColorOff, service.Indicator())
}
