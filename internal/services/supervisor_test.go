package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/ports"
	portsmocks "github.com/renato0307/devcon/internal/ports/mocks"
)

type supervisorMocks struct {
	channel     *portsmocks.MockUpdateChannel
	counters    *portsmocks.MockCounters
	credentials *portsmocks.MockCredentialStore
	diagnostics *portsmocks.MockDiagnostics
	indicator   *portsmocks.MockStatusIndicator
	metrics     *portsmocks.MockMetricsSession
	probe       *portsmocks.MockConnectivityProbe
	restarter   *portsmocks.MockRestarter
}

func newTestSupervisor(t *testing.T) (*OtaSupervisor, supervisorMocks) {
	t.Helper()
	m := supervisorMocks{
		channel:     portsmocks.NewMockUpdateChannel(t),
		counters:    portsmocks.NewMockCounters(t),
		credentials: portsmocks.NewMockCredentialStore(t),
		diagnostics: portsmocks.NewMockDiagnostics(t),
		indicator:   portsmocks.NewMockStatusIndicator(t),
		metrics:     portsmocks.NewMockMetricsSession(t),
		probe:       portsmocks.NewMockConnectivityProbe(t),
		restarter:   portsmocks.NewMockRestarter(t),
	}
	m.counters.EXPECT().Add(mock.Anything, mock.Anything, int64(1)).Return().Maybe()

	s := NewOtaSupervisor(OtaSupervisorDeps{
		Channel:     m.channel,
		Counters:    m.counters,
		Credentials: m.credentials,
		Diagnostics: m.diagnostics,
		Indicator:   m.indicator,
		Metrics:     m.metrics,
		Probe:       m.probe,
		Restarter:   m.restarter,
	}, time.Hour)
	return s, m
}

func TestCycle_OfflineNeverChecksForUpdate(t *testing.T) {
	tests := []struct {
		name     string
		ssid     string
		password string
		autojoin bool
	}{
		{"no stored credentials", "", "", false},
		{"missing password", "home", "", false},
		{"autojoin fails", "home", "secret", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestSupervisor(t)

			m.probe.EXPECT().IsConnected(mock.Anything).Return(false)
			m.credentials.EXPECT().LoadCredentials(mock.Anything).Return(tt.ssid, tt.password, nil)
			if tt.autojoin {
				m.probe.EXPECT().Autojoin(mock.Anything, tt.ssid, tt.password).Return(false).Once()
			}
			m.indicator.EXPECT().Set(domain.ColorRed).Return()

			outcome := s.Cycle(context.Background())

			assert.Equal(t, domain.CycleOffline, outcome)
			m.channel.AssertNotCalled(t, "CheckForUpdate", mock.Anything, mock.Anything)

			snap := s.Snapshot()
			assert.False(t, snap.Connected)
			assert.Equal(t, domain.SupervisorIdle, snap.State)
			assert.Equal(t, domain.CycleOffline, snap.LastOutcome)
		})
	}
}

func TestCycle_AutojoinThenUpToDate(t *testing.T) {
	s, m := newTestSupervisor(t)

	m.probe.EXPECT().IsConnected(mock.Anything).Return(false).Once()
	m.credentials.EXPECT().LoadCredentials(mock.Anything).Return("home", "secret", nil)
	m.probe.EXPECT().Autojoin(mock.Anything, "home", "secret").Return(true).Once()
	m.probe.EXPECT().IsConnected(mock.Anything).Return(true).Once()
	m.channel.EXPECT().CheckForUpdate(mock.Anything, mock.Anything).Return(domain.UpdateUpToDate, nil)
	m.indicator.EXPECT().Set(domain.ColorGreen).Return()

	outcome := s.Cycle(context.Background())

	assert.Equal(t, domain.CycleUpToDate, outcome)
	snap := s.Snapshot()
	assert.True(t, snap.Connected)
	assert.Equal(t, domain.SupervisorUpToDate, snap.State)
	assert.Equal(t, domain.OtaIdle, snap.Session.State)
	assert.Equal(t, 1, snap.Schedules)
}

func TestCycle_UpdateAvailableStartsDownload(t *testing.T) {
	s, m := newTestSupervisor(t)

	var order []string
	m.probe.EXPECT().IsConnected(mock.Anything).Return(true)
	m.indicator.EXPECT().Set(domain.ColorBlue).Return()
	m.metrics.EXPECT().Start(mock.Anything).Run(func(ctx context.Context) {
		order = append(order, "start")
	}).Return().Once()
	m.channel.EXPECT().CheckForUpdate(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, handler ports.UpdateHandler) (domain.UpdateStatus, error) {
			assert.Equal(t, domain.OtaIdle, s.Snapshot().Session.State)
			require.True(t, handler.UpdateAvailable(ctx))
			return domain.UpdateAvailable, nil
		})

	outcome := s.Cycle(context.Background())

	assert.Equal(t, domain.CycleUpdateStarted, outcome)
	assert.Equal(t, []string{"start"}, order)
	m.metrics.AssertNotCalled(t, "End", mock.Anything, mock.Anything)

	snap := s.Snapshot()
	assert.Equal(t, domain.OtaDownloading, snap.Session.State)
	assert.NotEmpty(t, snap.Session.ID)
	assert.Equal(t, domain.SupervisorDownloading, snap.State)
}

func TestCycle_InProgressSessionBlocksNewCheck(t *testing.T) {
	s, m := newTestSupervisor(t)

	var handler ports.UpdateHandler
	m.probe.EXPECT().IsConnected(mock.Anything).Return(true)
	m.indicator.EXPECT().Set(domain.ColorBlue).Return()
	m.metrics.EXPECT().Start(mock.Anything).Return().Once()
	m.channel.EXPECT().CheckForUpdate(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, h ports.UpdateHandler) (domain.UpdateStatus, error) {
			handler = h
			h.UpdateAvailable(ctx)
			return domain.UpdateAvailable, nil
		}).Once()

	require.Equal(t, domain.CycleUpdateStarted, s.Cycle(context.Background()))
	assert.Equal(t, domain.CycleBusy, s.Cycle(context.Background()))
	assert.Equal(t, domain.SupervisorDownloading, s.Snapshot().State)

	// the download finishing later completes the session
	m.metrics.EXPECT().End(mock.Anything, 7).Return().Once()
	m.indicator.EXPECT().Set(domain.ColorRed).Return()
	handler.DownloadFailed(context.Background(), 7)

	snap := s.Snapshot()
	assert.Equal(t, domain.OtaIdle, snap.Session.State)
	assert.Equal(t, domain.SupervisorError, snap.State)
}

func TestCycle_DownloadCompleteRestarts(t *testing.T) {
	s, m := newTestSupervisor(t)

	var calls []string
	m.probe.EXPECT().IsConnected(mock.Anything).Return(true)
	m.indicator.EXPECT().Set(domain.ColorBlue).Return()
	m.metrics.EXPECT().Start(mock.Anything).Run(func(ctx context.Context) {
		calls = append(calls, "start")
	}).Return().Once()
	m.metrics.EXPECT().End(mock.Anything, 0).Run(func(ctx context.Context, code int) {
		calls = append(calls, "end")
	}).Return().Once()
	m.restarter.EXPECT().MarkResetImminent(mock.Anything, domain.RebootReasonFirmwareUpdate).Run(
		func(ctx context.Context, reason domain.RebootReason) {
			calls = append(calls, "mark")
		}).Return().Once()
	m.restarter.EXPECT().Restart().RunAndReturn(func() error {
		calls = append(calls, "restart")
		assert.Equal(t, domain.SupervisorRebooting, s.Snapshot().State)
		return nil
	}).Once()
	m.channel.EXPECT().CheckForUpdate(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, h ports.UpdateHandler) (domain.UpdateStatus, error) {
			h.UpdateAvailable(ctx)
			assert.True(t, h.DownloadComplete(ctx))
			return domain.UpdateAvailable, nil
		})

	s.Cycle(context.Background())

	assert.Equal(t, []string{"start", "end", "mark", "restart"}, calls)
	assert.Equal(t, domain.OtaSucceeded, s.Snapshot().Session.State)
}

func TestCycle_RestartFailureIsReported(t *testing.T) {
	tests := []struct {
		name       string
		channelErr error
	}{
		{"channel reports success", nil},
		{"channel reports the failed apply", &domain.UpdateError{Code: int(domain.ExitFail)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestSupervisor(t)

			var counted []string
			m.counters.ExpectedCalls = nil
			m.counters.EXPECT().Add(mock.Anything, mock.Anything, int64(1)).Run(
				func(ctx context.Context, name string, delta int64) {
					counted = append(counted, name)
				}).Return()

			m.probe.EXPECT().IsConnected(mock.Anything).Return(true)
			m.indicator.EXPECT().Set(mock.Anything).Return()
			m.metrics.EXPECT().Start(mock.Anything).Return()
			m.metrics.EXPECT().End(mock.Anything, 0).Return().Once()
			m.restarter.EXPECT().MarkResetImminent(mock.Anything, domain.RebootReasonFirmwareUpdate).Return()
			m.restarter.EXPECT().Restart().Return(errors.New("exec failed"))
			m.diagnostics.EXPECT().TraceEvent(mock.Anything, domain.TraceOtaInstallFailure,
				fmt.Sprintf("error code=%d", int(domain.ExitFail))).Return().Once()
			m.diagnostics.EXPECT().TriggerLogCollection(mock.Anything).Return().Once()
			m.channel.EXPECT().CheckForUpdate(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, h ports.UpdateHandler) (domain.UpdateStatus, error) {
					h.UpdateAvailable(ctx)
					assert.False(t, h.DownloadComplete(ctx))
					return domain.UpdateAvailable, tt.channelErr
				})

			outcome := s.Cycle(context.Background())

			assert.Equal(t, domain.CycleFailed, outcome)
			assert.Contains(t, counted, domain.CounterSyncFailure)
			assert.NotContains(t, counted, domain.CounterSyncSuccessful)

			snap := s.Snapshot()
			assert.Equal(t, domain.SupervisorError, snap.State)
			assert.Equal(t, domain.CycleFailed, snap.LastOutcome)
			assert.Equal(t, domain.OtaIdle, snap.Session.State)
			assert.Equal(t, domain.ColorRed, lastColor(m.indicator))
		})
	}
}

func TestCycle_CheckErrorEndsSession(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{"coded error", &domain.UpdateError{Code: 5}, 5},
		{"wrapped coded error", errors.Join(errors.New("http"), &domain.UpdateError{Code: 404}), 404},
		{"plain error", errors.New("connection reset"), domain.DefaultUpdateErrorCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, m := newTestSupervisor(t)

			m.probe.EXPECT().IsConnected(mock.Anything).Return(true)
			m.channel.EXPECT().CheckForUpdate(mock.Anything, mock.Anything).Return(domain.UpdateUpToDate, tt.err)
			m.metrics.EXPECT().End(mock.Anything, tt.wantCode).Return().Once()
			m.diagnostics.EXPECT().TraceEvent(mock.Anything, domain.TraceOtaInstallFailure, fmt.Sprintf("error code=%d", tt.wantCode)).
				Return().Once()
			m.diagnostics.EXPECT().TriggerLogCollection(mock.Anything).Return().Once()
			m.indicator.EXPECT().Set(domain.ColorRed).Return()

			outcome := s.Cycle(context.Background())

			assert.Equal(t, domain.CycleFailed, outcome)
			m.metrics.AssertNotCalled(t, "Start", mock.Anything)

			snap := s.Snapshot()
			assert.Equal(t, domain.SupervisorError, snap.State)
			assert.NotEqual(t, domain.OtaDownloading, snap.Session.State)
		})
	}
}

func TestCycle_DownloadFailureAndErrorEndOnce(t *testing.T) {
	s, m := newTestSupervisor(t)

	m.probe.EXPECT().IsConnected(mock.Anything).Return(true)
	m.indicator.EXPECT().Set(mock.Anything).Return()
	m.metrics.EXPECT().Start(mock.Anything).Return().Once()
	m.metrics.EXPECT().End(mock.Anything, 9).Return().Once()
	m.diagnostics.EXPECT().TraceEvent(mock.Anything, domain.TraceOtaInstallFailure, "error code=9").Return()
	m.diagnostics.EXPECT().TriggerLogCollection(mock.Anything).Return()
	m.channel.EXPECT().CheckForUpdate(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, h ports.UpdateHandler) (domain.UpdateStatus, error) {
			h.UpdateAvailable(ctx)
			h.DownloadFailed(ctx, 9)
			return domain.UpdateAvailable, &domain.UpdateError{Code: 9}
		})

	assert.Equal(t, domain.CycleFailed, s.Cycle(context.Background()))
}

func TestCycle_PanicIsRecovered(t *testing.T) {
	s, m := newTestSupervisor(t)

	m.probe.EXPECT().IsConnected(mock.Anything).Return(true)
	m.channel.EXPECT().CheckForUpdate(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, h ports.UpdateHandler) (domain.UpdateStatus, error) {
			panic("transport exploded")
		})
	m.indicator.EXPECT().Set(domain.ColorRed).Return()

	var outcome domain.CycleOutcome
	require.NotPanics(t, func() { outcome = s.Cycle(context.Background()) })

	assert.Equal(t, domain.CycleFailed, outcome)
	assert.Equal(t, domain.SupervisorError, s.Snapshot().State)
}

func TestRun_TriggerCheck(t *testing.T) {
	s, m := newTestSupervisor(t)

	checks := make(chan struct{}, 4)
	m.probe.EXPECT().IsConnected(mock.Anything).Return(true)
	m.indicator.EXPECT().Set(domain.ColorGreen).Return()
	m.channel.EXPECT().CheckForUpdate(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, h ports.UpdateHandler) (domain.UpdateStatus, error) {
			checks <- struct{}{}
			return domain.UpdateUpToDate, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	waitFor(t, checks)
	require.True(t, s.TriggerCheck())
	waitFor(t, checks)

	cancel()
	require.NoError(t, <-done)
	assert.GreaterOrEqual(t, s.Snapshot().Schedules, 2)
}

func waitFor(t *testing.T, ch <-chan struct{}) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for update check")
	}
}

func lastColor(indicator *portsmocks.MockStatusIndicator) domain.Color {
	var last domain.Color
	for _, call := range indicator.Calls {
		if call.Method == "Set" {
			last = call.Arguments.Get(0).(domain.Color)
		}
	}
	return last
}
