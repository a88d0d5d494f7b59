package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/ports"
	"github.com/renato0307/devcon/internal/services"
	"github.com/renato0307/devcon/internal/shell"
	"github.com/renato0307/devcon/internal/theme"
)

// AppDeps are the collaborators of the app group
type AppDeps struct {
	Diagnostics *services.DiagnosticsService
	Indicator   ports.StatusIndicator
	Lock        ports.TaskLock
	Supervisor  ports.UpdateSupervisor
}

// RegisterApp registers the OTA, indicator, watchdog and diagnostics commands
func RegisterApp(reg *shell.Registry, deps AppDeps) error {
	a := &appCommands{deps: deps}
	return register(reg,
		shell.NewCommand("ota_check", "Run an OTA check now", a.otaCheck),
		shell.NewCommand("ota_status", "Show the OTA supervisor state", a.otaStatus),
		shell.NewCommand("led", "Set the status indicator color", a.led),
		shell.NewCommand("wdt_stuck", "Hold the lock task mutex so its watchdog fires", a.wdtStuck),
		shell.NewCommand("wdt_unstuck", "Release the lock task mutex", a.wdtUnstuck),
		shell.NewCommand("trace", "Record a trace event", a.trace),
		shell.NewCommand("logs_collect", "Freeze recent logs and upload them", a.logsCollect),
	)
}

type appCommands struct {
	deps AppDeps
}

func (a *appCommands) otaCheck(ctx context.Context, out io.Writer, _ *struct{}) (domain.ExitCode, string) {
	if a.deps.Supervisor == nil {
		return domain.ExitNotSupported, "OTA supervisor is not running"
	}
	if !a.deps.Supervisor.TriggerCheck() {
		return domain.ExitNotFinished, "An OTA check is already pending"
	}
	return domain.ExitOK, "OTA check requested"
}

func (a *appCommands) otaStatus(ctx context.Context, out io.Writer, _ *struct{}) (domain.ExitCode, string) {
	if a.deps.Supervisor == nil {
		return domain.ExitNotSupported, "OTA supervisor is not running"
	}
	snap := a.deps.Supervisor.Snapshot()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "state\t%s\n", snap.State)
	fmt.Fprintf(w, "connected\t%t\n", snap.Connected)
	fmt.Fprintf(w, "session\t%s\n", describeSession(snap.Session))
	if snap.LastCheck.IsZero() {
		fmt.Fprintf(w, "last check\tnever\n")
	} else {
		fmt.Fprintf(w, "last check\t%s (%s)\n", humanize.Time(snap.LastCheck), snap.LastOutcome)
	}
	fmt.Fprintf(w, "cycles\t%d\n", snap.Schedules)
	if a.deps.Indicator != nil {
		fmt.Fprintf(w, "indicator\t%s\n", theme.RenderIndicator(a.deps.Indicator.Current()))
	}
	w.Flush()
	return domain.ExitOK, ""
}

func describeSession(s domain.OtaSession) string {
	switch {
	case s.ID == "":
		return string(s.State)
	case s.State == domain.OtaFailed:
		return fmt.Sprintf("%s %s (code %d)", s.ID, s.State, s.Code)
	default:
		return fmt.Sprintf("%s %s", s.ID, s.State)
	}
}

type ledArgs struct {
	Color string `arg:"" enum:"off,red,green,blue,white" help:"One of off, red, green, blue, white"`
}

func (a *appCommands) led(ctx context.Context, out io.Writer, args *ledArgs) (domain.ExitCode, string) {
	if a.deps.Indicator == nil {
		return domain.ExitNotSupported, "no status indicator"
	}
	color, err := domain.ParseColor(args.Color)
	if err != nil {
		return domain.ExitInvalidArg, err.Error()
	}
	a.deps.Indicator.Set(color)
	return domain.ExitOK, ""
}

func (a *appCommands) wdtStuck(ctx context.Context, out io.Writer, _ *struct{}) (domain.ExitCode, string) {
	if a.deps.Lock == nil {
		return domain.ExitNotSupported, "lock task is not running"
	}
	if !a.deps.Lock.Hold() {
		return domain.ExitInvalidState, "lock is already held"
	}
	return domain.ExitOK, "Lock held, the task watchdog will fire"
}

func (a *appCommands) wdtUnstuck(ctx context.Context, out io.Writer, _ *struct{}) (domain.ExitCode, string) {
	if a.deps.Lock == nil {
		return domain.ExitNotSupported, "lock task is not running"
	}
	if !a.deps.Lock.Release() {
		return domain.ExitInvalidState, "lock is not held"
	}
	return domain.ExitOK, "Lock released"
}

type traceArgs struct {
	Reason  string `arg:"" help:"Short reason identifier"`
	Message string `arg:"" optional:"" help:"Free form detail"`
}

func (a *appCommands) trace(ctx context.Context, out io.Writer, args *traceArgs) (domain.ExitCode, string) {
	if a.deps.Diagnostics == nil {
		return domain.ExitNotSupported, "diagnostics are not available"
	}
	a.deps.Diagnostics.TraceEvent(ctx, args.Reason, args.Message)
	return domain.ExitOK, ""
}

func (a *appCommands) logsCollect(ctx context.Context, out io.Writer, _ *struct{}) (domain.ExitCode, string) {
	if a.deps.Diagnostics == nil {
		return domain.ExitNotSupported, "diagnostics are not available"
	}
	collection, err := a.deps.Diagnostics.CollectLogs(ctx)
	if err != nil {
		return domain.ExitStorageFailed, err.Error()
	}
	state := "pending upload"
	if collection.Uploaded {
		state = "uploaded"
	}
	return domain.ExitOK, fmt.Sprintf("Collected %d lines (%s, %s)", len(collection.Lines), collection.ID, state)
}
