package domain

import "time"

// RebootReason records why the process is about to restart or terminate
type RebootReason string

const (
	RebootReasonFirmwareUpdate RebootReason = "firmware_update"
	RebootReasonTaskWatchdog   RebootReason = "task_watchdog"
	RebootReasonUserRequest    RebootReason = "user_request"
	RebootReasonUnknown        RebootReason = "unknown"
)

// Trace event reasons raised by the core
const (
	TraceOtaInstallFailure = "ota_install_failure"
	TraceTaskWatchdog      = "task_watchdog"
)

// Counter names
const (
	CounterOtaTaskSchedules = "ota_task_schedules"
	CounterSyncFailure      = "sync_failure"
	CounterSyncSuccessful   = "sync_successful"
)

// TraceEvent is a recorded diagnostic event
type TraceEvent struct {
	CreatedAt time.Time
	ID        uint
	Message   string
	Reason    string
}

// LogCollection is a frozen snapshot of recent log lines
type LogCollection struct {
	CreatedAt time.Time
	ID        string
	Lines     []string
	Uploaded  bool
}
