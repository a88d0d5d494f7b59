package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	adapterconsole "github.com/renato0307/devcon/internal/adapters/console"
	"github.com/renato0307/devcon/internal/config"
	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/shell"
	"github.com/renato0307/devcon/internal/theme"
	"github.com/renato0307/devcon/internal/version"
)

// Prompt is shown before every shell line
const Prompt = "devcon> "

// RunCmd starts the shell, the OTA supervisor, the task watchdog and the lock task
type RunCmd struct {
	AutojoinCommand    string        `help:"Command run to join the network; receives DEVCON_SSID and DEVCON_PASSWORD" env:"DEVCON_AUTOJOIN_COMMAND"`
	ConnectivityTarget string        `help:"host:port dialed to decide whether the device is online" default:"1.1.1.1:443"`
	HistoryMax         int           `help:"Number of shell history entries kept" default:"10"`
	ManifestURL        string        `help:"Update manifest URL (defaults to <device_url>/manifest.json)" env:"DEVCON_MANIFEST_URL"`
	OtaInterval        time.Duration `help:"Delay between two OTA checks" default:"1h"`
	WatchdogDeadline   time.Duration `help:"Time a supervised task may run without resetting its watchdog" default:"1s"`
}

// options applies settings.json with proper precedence and returns the runtime options
func (r *RunCmd) options(settings *config.Settings) RuntimeOptions {
	if r.AutojoinCommand == "" {
		r.AutojoinCommand = settings.AutojoinCommand
	}
	if r.ConnectivityTarget == "1.1.1.1:443" && settings.ConnectivityTarget != "" {
		r.ConnectivityTarget = settings.ConnectivityTarget
	}
	if r.HistoryMax == config.DefaultHistoryMax {
		r.HistoryMax = settings.HistoryMaxOrDefault()
	}
	if r.ManifestURL == "" {
		r.ManifestURL = settings.UpdateManifestURL
	}
	if r.OtaInterval == config.DefaultOtaCheckInterval {
		r.OtaInterval = settings.OtaCheckIntervalOrDefault()
	}
	if r.WatchdogDeadline == config.DefaultWatchdogDeadline {
		r.WatchdogDeadline = settings.WatchdogDeadlineOrDefault()
	}

	return RuntimeOptions{
		AutojoinCommand:    r.AutojoinCommand,
		ConnectivityTarget: r.ConnectivityTarget,
		HistoryMax:         r.HistoryMax,
		ManifestURL:        r.ManifestURL,
		OtaInterval:        r.OtaInterval,
		WatchdogDeadline:   r.WatchdogDeadline,
	}
}

// Run executes the device shell until the console closes or a signal arrives
func (r *RunCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	container := cli.Container
	bootReason := container.RebootService.ConsumeBootReason(ctx)

	rt, err := container.NewRuntime(ctx, r.options(cli.LoadedSettings()))
	if err != nil {
		return fmt.Errorf("failed to start runtime: %w", err)
	}

	console := adapterconsole.Open(os.Stdin, os.Stdout, Prompt, rt.History)
	defer console.Close()
	container.OnExit(func() { _ = console.Close() })

	printBanner(console, bootReason)

	loop := shell.NewLoop(rt.Registry, console, rt.History, container.HistoryStore)
	loop.LoadHistory()

	logging.Logger.Info("Starting devcon", "version", version.Version, "boot_reason", bootReason)
	return runTasks(ctx, rt, loop.Run)
}

// runTasks runs the supervisor, the watchdog and the lock task next to a
// front end. The front end ending stops everything; it is not waited for
// once ctx is cancelled because a blocked console read cannot be interrupted.
func runTasks(ctx context.Context, rt *Runtime, frontEnd func(context.Context) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return rt.Supervisor.Run(gctx) })
	g.Go(func() error { return rt.Watchdog.Run(gctx) })
	g.Go(func() error { return rt.LockTask.Run(gctx) })

	frontEndDone := make(chan error, 1)
	go func() { frontEndDone <- frontEnd(gctx) }()

	var frontEndErr error
	select {
	case frontEndErr = <-frontEndDone:
	case <-gctx.Done():
	}

	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	return frontEndErr
}

func printBanner(w io.Writer, bootReason domain.RebootReason) {
	fmt.Fprintln(w, theme.TitleStyle.Render("devcon"))
	fmt.Fprintln(w, theme.MutedStyle.Render(version.Tagline))
	fmt.Fprintln(w, theme.VersionStyle.Render(version.Info()))
	fmt.Fprintf(w, "%s %s\n", theme.LabelStyle.Render("Boot reason:"), bootReason)
	fmt.Fprintln(w, theme.MutedStyle.Render("Type 'help' to get the list of commands."))
	fmt.Fprintln(w)
}
