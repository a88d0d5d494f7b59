package commands

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/renato0307/devcon/internal/adapters/system"
	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/ports"
	"github.com/renato0307/devcon/internal/shell"
)

// SystemDeps are the collaborators of the system group
type SystemDeps struct {
	Boot      ports.BootReasonReader
	Memory    func() system.MemoryStats
	Now       func() time.Time
	Restarter ports.Restarter
	Tasks     ports.TaskInspector
	Version   string
}

// RegisterSystem registers version, restart, free, tasks and reboot_reason
func RegisterSystem(reg *shell.Registry, deps SystemDeps) error {
	if deps.Memory == nil {
		deps.Memory = system.ReadMemoryStats
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	s := &systemCommands{deps: deps}

	return register(reg,
		shell.NewCommand("version", "Show the build version", s.version),
		shell.NewCommand("restart", "Restart the process", s.restart),
		shell.NewCommand("free", "Show runtime memory usage", s.free),
		shell.NewCommand("tasks", "List watchdog supervised tasks", s.tasks),
		shell.NewCommand("reboot_reason", "Show why the process last restarted", s.rebootReason),
	)
}

type systemCommands struct {
	deps SystemDeps
}

func (s *systemCommands) version(ctx context.Context, out io.Writer, _ *struct{}) (domain.ExitCode, string) {
	return domain.ExitOK, s.deps.Version
}

func (s *systemCommands) restart(ctx context.Context, out io.Writer, _ *struct{}) (domain.ExitCode, string) {
	if s.deps.Restarter == nil {
		return domain.ExitNotSupported, "restart is not available"
	}
	fmt.Fprintln(out, "Restarting...")
	s.deps.Restarter.MarkResetImminent(ctx, domain.RebootReasonUserRequest)
	if err := s.deps.Restarter.Restart(); err != nil {
		return domain.ExitFail, fmt.Sprintf("restart failed: %v", err)
	}
	return domain.ExitOK, ""
}

func (s *systemCommands) free(ctx context.Context, out io.Writer, _ *struct{}) (domain.ExitCode, string) {
	stats := s.deps.Memory()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "heap in use\t%s\n", humanize.IBytes(stats.HeapAlloc))
	fmt.Fprintf(w, "heap reserved\t%s\n", humanize.IBytes(stats.HeapSys))
	fmt.Fprintf(w, "total from os\t%s\n", humanize.IBytes(stats.Sys))
	fmt.Fprintf(w, "gc cycles\t%d\n", stats.NumGC)
	fmt.Fprintf(w, "goroutines\t%d\n", stats.Goroutines)
	w.Flush()
	return domain.ExitOK, ""
}

func (s *systemCommands) tasks(ctx context.Context, out io.Writer, _ *struct{}) (domain.ExitCode, string) {
	if s.deps.Tasks == nil {
		return domain.ExitNotSupported, "task watchdog is not running"
	}

	now := s.deps.Now()
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TASK\tARMED\tLAST RESET\tDEADLINE\tSTATUS")
	for _, slot := range s.deps.Tasks.Slots() {
		status := "ok"
		if slot.Stuck(now) {
			status = "stuck"
		}
		age := "-"
		if !slot.LastReset.IsZero() {
			age = now.Sub(slot.LastReset).Truncate(time.Millisecond).String() + " ago"
		}
		fmt.Fprintf(w, "%s\t%t\t%s\t%s\t%s\n", slot.TaskID, slot.Armed, age, slot.Deadline, status)
	}
	w.Flush()
	return domain.ExitOK, ""
}

func (s *systemCommands) rebootReason(ctx context.Context, out io.Writer, _ *struct{}) (domain.ExitCode, string) {
	if s.deps.Boot == nil {
		return domain.ExitOK, string(domain.RebootReasonUnknown)
	}
	reason, markedAt := s.deps.Boot.BootReason()
	if markedAt.IsZero() {
		return domain.ExitOK, string(reason)
	}
	return domain.ExitOK, fmt.Sprintf("%s (marked %s)", reason, humanize.Time(markedAt))
}
