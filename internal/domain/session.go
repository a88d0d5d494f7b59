package domain

import (
	"time"
)

// OtaState is the state of one over-the-air update attempt
type OtaState string

const (
	OtaIdle           OtaState = "idle"
	OtaCheckingUpdate OtaState = "checking_update"
	OtaDownloading    OtaState = "downloading"
	OtaInstalling     OtaState = "installing"
	OtaSucceeded      OtaState = "succeeded"
	OtaFailed         OtaState = "failed"
)

// OtaSession tracks a single update attempt from "update available" to its
// terminal outcome. Code is only meaningful in the failed state.
type OtaSession struct {
	Code      int
	ID        string
	StartedAt time.Time
	State     OtaState
}

// InProgress reports whether the session holds a download or install that
// has not reached a terminal outcome yet.
func (s OtaSession) InProgress() bool {
	return s.State == OtaDownloading || s.State == OtaInstalling
}

// Terminal reports whether the session reached a final outcome
func (s OtaSession) Terminal() bool {
	return s.State == OtaSucceeded || s.State == OtaFailed
}

// Reset returns the session to idle, dropping the attempt bookkeeping
func (s *OtaSession) Reset() {
	*s = OtaSession{State: OtaIdle}
}

// SupervisorState is the position of the OTA supervisor inside one cycle
type SupervisorState string

const (
	SupervisorIdle                 SupervisorState = "idle"
	SupervisorAttemptingAutojoin   SupervisorState = "attempting_autojoin"
	SupervisorCheckingConnectivity SupervisorState = "checking_connectivity"
	SupervisorCheckingUpdate       SupervisorState = "checking_update"
	SupervisorDownloading          SupervisorState = "downloading"
	SupervisorInstalling           SupervisorState = "installing"
	SupervisorRebooting            SupervisorState = "rebooting"
	SupervisorUpToDate             SupervisorState = "up_to_date"
	SupervisorError                SupervisorState = "error"
)

// CycleOutcome summarizes how a supervisor cycle ended
type CycleOutcome string

const (
	CycleBusy          CycleOutcome = "busy"
	CycleFailed        CycleOutcome = "failed"
	CycleOffline       CycleOutcome = "offline"
	CycleUpToDate      CycleOutcome = "up_to_date"
	CycleUpdateStarted CycleOutcome = "update_started"
)

// UpdateStatus is the non-error result of an update check
type UpdateStatus int

const (
	UpdateUpToDate UpdateStatus = iota
	UpdateAvailable
)

func (s UpdateStatus) String() string {
	switch s {
	case UpdateUpToDate:
		return "up_to_date"
	case UpdateAvailable:
		return "available"
	default:
		return "unknown"
	}
}

// SupervisorSnapshot is a point-in-time copy of the supervisor's owned state
type SupervisorSnapshot struct {
	Connected   bool
	LastCheck   time.Time
	LastOutcome CycleOutcome
	Schedules   int
	Session     OtaSession
	State       SupervisorState
}

// OtaSessionRecord is a persisted, finished OTA metrics session
type OtaSessionRecord struct {
	Duration   time.Duration
	EndedAt    time.Time
	ID         string
	ResultCode int
	StartedAt  time.Time
}
