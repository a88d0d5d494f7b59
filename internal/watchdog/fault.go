package watchdog

import (
	"context"
	"fmt"
	"os"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ports"
)

// FatalExitCode is the process exit status after a watchdog fault
const FatalExitCode = 3

// NewFatalHandler returns the default fault policy: record the fault, mark
// the reboot reason and terminate the process. exit defaults to os.Exit.
// beforeExit hooks run in order right before exit, e.g. to restore a
// terminal left in raw mode.
func NewFatalHandler(diagnostics ports.Diagnostics, restarter ports.Restarter, exit func(int), beforeExit ...func()) FaultHandler {
	if exit == nil {
		exit = os.Exit
	}
	return func(ctx context.Context, slot domain.SlotInfo) {
		msg := fmt.Sprintf("task %s did not reset within %s", slot.TaskID, slot.Deadline)
		logging.Logger.Error("Terminating after watchdog fault", "task", slot.TaskID)

		if diagnostics != nil {
			diagnostics.TraceEvent(ctx, domain.TraceTaskWatchdog, msg)
		}
		if restarter != nil {
			restarter.MarkResetImminent(ctx, domain.RebootReasonTaskWatchdog)
		}

		for _, fn := range beforeExit {
			fn()
		}

		fmt.Fprintf(os.Stderr, "E (watchdog) %s\n", msg)
		exit(FatalExitCode)
	}
}
