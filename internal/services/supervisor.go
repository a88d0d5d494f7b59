package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ports"
)

// DefaultOtaInterval is the period between two supervisor cycles
const DefaultOtaInterval = time.Hour

// OtaSupervisor periodically reconnects, checks for updates and drives the
// resulting OTA session. It owns the session and the connectivity state;
// other goroutines only read them through Snapshot.
type OtaSupervisor struct {
	channel     ports.UpdateChannel
	counters    ports.Counters
	credentials ports.CredentialStore
	diagnostics ports.Diagnostics
	indicator   ports.StatusIndicator
	interval    time.Duration
	metrics     ports.MetricsSession
	now         func() time.Time
	probe       ports.ConnectivityProbe
	restarter   ports.Restarter
	trigger     chan struct{}

	mu       sync.Mutex
	snapshot domain.SupervisorSnapshot
}

// OtaSupervisorDeps groups the collaborators of the supervisor
type OtaSupervisorDeps struct {
	Channel     ports.UpdateChannel
	Counters    ports.Counters
	Credentials ports.CredentialStore
	Diagnostics ports.Diagnostics
	Indicator   ports.StatusIndicator
	Metrics     ports.MetricsSession
	Probe       ports.ConnectivityProbe
	Restarter   ports.Restarter
}

// NewOtaSupervisor creates a supervisor running one cycle per interval.
// A non-positive interval falls back to DefaultOtaInterval.
func NewOtaSupervisor(deps OtaSupervisorDeps, interval time.Duration) *OtaSupervisor {
	if interval <= 0 {
		interval = DefaultOtaInterval
	}
	return &OtaSupervisor{
		channel:     deps.Channel,
		counters:    deps.Counters,
		credentials: deps.Credentials,
		diagnostics: deps.Diagnostics,
		indicator:   deps.Indicator,
		interval:    interval,
		metrics:     deps.Metrics,
		now:         time.Now,
		probe:       deps.Probe,
		restarter:   deps.Restarter,
		trigger:     make(chan struct{}, 1),
		snapshot: domain.SupervisorSnapshot{
			Session: domain.OtaSession{State: domain.OtaIdle},
			State:   domain.SupervisorIdle,
		},
	}
}

// Interval returns the period between two scheduled cycles
func (s *OtaSupervisor) Interval() time.Duration {
	return s.interval
}

// Run executes a cycle immediately, then once per interval and whenever
// TriggerCheck is called, until ctx is cancelled.
func (s *OtaSupervisor) Run(ctx context.Context) error {
	logging.Logger.Info("OTA supervisor started", "interval", s.interval)

	s.Cycle(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Logger.Info("OTA supervisor stopped")
			return nil
		case <-ticker.C:
			s.Cycle(ctx)
		case <-s.trigger:
			s.Cycle(ctx)
			ticker.Reset(s.interval)
		}
	}
}

// TriggerCheck asks Run to start a cycle now. It returns false when a
// request is already pending.
func (s *OtaSupervisor) TriggerCheck() bool {
	select {
	case s.trigger <- struct{}{}:
		return true
	default:
		return false
	}
}

// Snapshot returns a copy of the supervisor state
func (s *OtaSupervisor) Snapshot() domain.SupervisorSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

// Cycle performs one full traversal of the supervisor state machine.
// Failures are reported through the returned outcome, the indicator and
// diagnostics; Cycle never panics.
func (s *OtaSupervisor) Cycle(ctx context.Context) (outcome domain.CycleOutcome) {
	defer func() {
		if rec := recover(); rec != nil {
			logging.Logger.Error("OTA cycle panicked", "panic", rec)
			s.indicator.Set(domain.ColorRed)
			s.setState(domain.SupervisorError)
			outcome = domain.CycleFailed
		}
		s.finish(outcome)
	}()

	s.counters.Add(ctx, domain.CounterOtaTaskSchedules, 1)

	connected := s.probe.IsConnected(ctx)
	if !connected {
		connected = s.autojoin(ctx)
	}

	s.setState(domain.SupervisorCheckingConnectivity)
	s.setConnected(connected)
	if !connected {
		logging.Logger.Info("Not connected, skipping update check")
		s.indicator.Set(domain.ColorRed)
		s.setState(domain.SupervisorIdle)
		return domain.CycleOffline
	}

	if session := s.Snapshot().Session; session.InProgress() {
		logging.Logger.Info("OTA session in progress, skipping update check",
			"session", session.ID, "state", session.State)
		if session.State == domain.OtaInstalling {
			s.setState(domain.SupervisorInstalling)
		} else {
			s.setState(domain.SupervisorDownloading)
		}
		return domain.CycleBusy
	}

	s.setState(domain.SupervisorCheckingUpdate)
	cycle := &otaCycle{supervisor: s}

	status, err := s.channel.CheckForUpdate(ctx, cycle)
	if restartErr := cycle.restartFailure(); restartErr != nil {
		err = restartErr
	}
	if err != nil {
		s.counters.Add(ctx, domain.CounterSyncFailure, 1)
		s.checkFailed(ctx, cycle, err)
		return domain.CycleFailed
	}
	s.counters.Add(ctx, domain.CounterSyncSuccessful, 1)

	switch status {
	case domain.UpdateAvailable:
		logging.Logger.Info("Update started", "session", s.Snapshot().Session.ID)
		return domain.CycleUpdateStarted
	default:
		logging.Logger.Info("Up to date!")
		s.indicator.Set(domain.ColorGreen)
		s.updateSession(func(session *domain.OtaSession) { session.Reset() })
		s.setState(domain.SupervisorUpToDate)
		return domain.CycleUpToDate
	}
}

// autojoin reconnects with stored credentials and reports whether the
// device is connected afterwards
func (s *OtaSupervisor) autojoin(ctx context.Context) bool {
	ssid, password, err := s.credentials.LoadCredentials(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to load network credentials", "error", err)
		return false
	}
	if ssid == "" || password == "" {
		return false
	}

	s.setState(domain.SupervisorAttemptingAutojoin)
	if !s.probe.Autojoin(ctx, ssid, password) {
		logging.Logger.Debug("Failed to autojoin network", "ssid", ssid)
	}
	return s.probe.IsConnected(ctx)
}

func (s *OtaSupervisor) checkFailed(ctx context.Context, cycle *otaCycle, err error) {
	code := domain.UpdateErrorCode(err)
	logging.Logger.Error("OTA update failed", "code", code, "error", err)

	cycle.end(ctx, code)
	s.diagnostics.TraceEvent(ctx, domain.TraceOtaInstallFailure, fmt.Sprintf("error code=%d", code))
	s.diagnostics.TriggerLogCollection(ctx)
	s.indicator.Set(domain.ColorRed)

	s.updateSession(func(session *domain.OtaSession) {
		if session.InProgress() {
			session.State = domain.OtaFailed
			session.Code = code
		}
		session.Reset()
	})
	s.setState(domain.SupervisorError)
}

func (s *OtaSupervisor) finish(outcome domain.CycleOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.LastCheck = s.now()
	s.snapshot.LastOutcome = outcome
	s.snapshot.Schedules++
}

func (s *OtaSupervisor) setConnected(connected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot.Connected = connected
}

func (s *OtaSupervisor) setState(state domain.SupervisorState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	logging.Logger.Debug("OTA supervisor transition", "from", s.snapshot.State, "to", state)
	s.snapshot.State = state
}

func (s *OtaSupervisor) updateSession(fn func(session *domain.OtaSession)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.snapshot.Session)
}

// otaCycle is the per-check context handed to the update channel. Its
// methods are the session transitions triggered by the channel.
type otaCycle struct {
	ended      bool
	mu         sync.Mutex
	restartErr error
	sessionID  string
	supervisor *OtaSupervisor
}

// end closes the metrics session once per cycle
func (c *otaCycle) end(ctx context.Context, code int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.ended {
		return
	}
	c.ended = true
	c.supervisor.metrics.End(ctx, code)
}

func (c *otaCycle) UpdateAvailable(ctx context.Context) bool {
	s := c.supervisor

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sessionID != "" {
		return false
	}

	logging.Logger.Info("Update available, starting download")
	s.indicator.Set(domain.ColorBlue)
	s.metrics.Start(ctx)

	c.sessionID = uuid.New().String()
	s.updateSession(func(session *domain.OtaSession) {
		*session = domain.OtaSession{
			ID:        c.sessionID,
			StartedAt: s.now(),
			State:     domain.OtaDownloading,
		}
	})
	s.setState(domain.SupervisorDownloading)
	return true
}

func (c *otaCycle) DownloadComplete(ctx context.Context) bool {
	s := c.supervisor
	if !c.current() {
		logging.Logger.Warn("Ignoring download completion for a stale session", "session", c.sessionID)
		return false
	}

	logging.Logger.Info("Download complete, installing", "session", c.sessionID)
	s.updateSession(func(session *domain.OtaSession) { session.State = domain.OtaInstalling })
	s.setState(domain.SupervisorInstalling)

	c.end(ctx, 0)
	s.restarter.MarkResetImminent(ctx, domain.RebootReasonFirmwareUpdate)

	s.updateSession(func(session *domain.OtaSession) { session.State = domain.OtaSucceeded })
	s.setState(domain.SupervisorRebooting)

	logging.Logger.Info("OTA update complete, rebooting")
	if err := s.restarter.Restart(); err != nil {
		logging.Logger.Error("Failed to restart after update", "error", err)
		c.mu.Lock()
		c.restartErr = &domain.UpdateError{
			Code: int(domain.ExitFail),
			Err:  fmt.Errorf("restart after install: %w", err),
		}
		c.mu.Unlock()
		return false
	}
	return true
}

// restartFailure returns the error of a restart that did not happen after
// an installed update. The cycle then ends as failed whatever the channel
// returned.
func (c *otaCycle) restartFailure() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.restartErr
}

func (c *otaCycle) DownloadFailed(ctx context.Context, code int) {
	s := c.supervisor
	if !c.current() {
		logging.Logger.Warn("Ignoring download failure for a stale session", "session", c.sessionID)
		return
	}

	logging.Logger.Error("OTA download failed", "session", c.sessionID, "code", code)
	c.end(ctx, code)

	s.updateSession(func(session *domain.OtaSession) {
		session.State = domain.OtaFailed
		session.Code = code
		session.Reset()
	})
	s.indicator.Set(domain.ColorRed)
	s.setState(domain.SupervisorError)
}

// current reports whether this cycle still owns the live session
func (c *otaCycle) current() bool {
	c.mu.Lock()
	id := c.sessionID
	c.mu.Unlock()

	session := c.supervisor.Snapshot().Session
	return id != "" && session.ID == id && session.InProgress()
}
