package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	adapterhistory "github.com/renato0307/devcon/internal/adapters/history"
	adapterindicator "github.com/renato0307/devcon/internal/adapters/indicator"
	adapternats "github.com/renato0307/devcon/internal/adapters/nats"
	adapternetwork "github.com/renato0307/devcon/internal/adapters/network"
	adapterota "github.com/renato0307/devcon/internal/adapters/ota"
	adapterstorage "github.com/renato0307/devcon/internal/adapters/storage"
	adaptersystem "github.com/renato0307/devcon/internal/adapters/system"
	"github.com/renato0307/devcon/internal/commands"
	"github.com/renato0307/devcon/internal/config"
	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ports"
	"github.com/renato0307/devcon/internal/services"
	"github.com/renato0307/devcon/internal/shell"
	"github.com/renato0307/devcon/internal/version"
	"github.com/renato0307/devcon/internal/watchdog"
)

// ContainerOptions configures the shared adapters
type ContainerOptions struct {
	NatsSubject string
	NatsURL     string
}

// Container holds all dependencies for the application
type Container struct {
	// Services
	DiagnosticsService *services.DiagnosticsService
	MetricsService     *services.OtaSessionMetrics
	RebootService      *services.RebootService
	SettingsService    *services.SettingsService
	StatusService      *services.StatusService

	// Adapters shared by the shell front ends
	HistoryStore *adapterhistory.FileStore
	Indicator    *adapterindicator.FileIndicator

	// Internal - for cleanup only
	beforeExit []func()
	repo       ports.Repository
	uploader   *adapternats.Uploader
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(opts ContainerOptions) (*Container, error) {
	if err := config.EnsureDevconHome(); err != nil {
		return nil, fmt.Errorf("failed to create devcon home: %w", err)
	}

	repo, err := adapterstorage.NewSQLiteRepository(config.GetDBPath())
	if err != nil {
		return nil, err
	}

	var uploader *adapternats.Uploader
	var logUploader ports.LogUploader
	if opts.NatsURL != "" {
		hostname, _ := os.Hostname()
		uploader = adapternats.NewUploader(opts.NatsURL, opts.NatsSubject, hostname)
		logUploader = uploader
	}

	indicatorPath := config.GetIndicatorPath()

	c := &Container{
		DiagnosticsService: services.NewDiagnosticsService(repo, logging.Recent, logUploader),
		HistoryStore:       adapterhistory.NewFileStore(config.GetHistoryPath(), config.DefaultHistoryMax),
		Indicator:          adapterindicator.NewFileIndicator(indicatorPath),
		MetricsService:     services.NewOtaSessionMetrics(repo),
		SettingsService:    services.NewSettingsService(repo),
		StatusService: services.NewStatusService(repo, repo, func() (domain.Color, error) {
			return adapterindicator.ReadColor(indicatorPath)
		}),
		repo:     repo,
		uploader: uploader,
	}
	c.RebootService = services.NewRebootService(repo, c.restart)
	return c, nil
}

// OnExit registers fn to run right before the process is replaced by a
// restart or terminated by a watchdog fault
func (c *Container) OnExit(fn func()) {
	c.beforeExit = append(c.beforeExit, fn)
}

func (c *Container) runExitHooks() {
	for _, fn := range c.beforeExit {
		fn()
	}
}

func (c *Container) restart() error {
	c.runExitHooks()
	return adaptersystem.Reexec()
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.uploader != nil {
		if err := c.uploader.Close(); err != nil {
			logging.Logger.Warn("Failed to close log uploader", "error", err)
		}
	}
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}

// RuntimeOptions configures the long running tasks
type RuntimeOptions struct {
	AutojoinCommand    string
	ConnectivityTarget string
	FaultHandler       watchdog.FaultHandler
	HistoryMax         int
	ManifestURL        string
	OtaInterval        time.Duration
	WatchdogDeadline   time.Duration
}

// Runtime is the set of tasks a shell front end runs side by side
type Runtime struct {
	History    *shell.History
	LockTask   *watchdog.LockTask
	Registry   *shell.Registry
	Supervisor *services.OtaSupervisor
	Watchdog   *watchdog.Registry
}

// NewRuntime wires the supervisor, the watchdog, the lock task and the
// shell registry with every command group
func (c *Container) NewRuntime(ctx context.Context, opts RuntimeOptions) (*Runtime, error) {
	deviceConfig, err := c.SettingsService.DeviceConfig(ctx)
	if err != nil {
		return nil, err
	}
	manifestURL := opts.ManifestURL
	if manifestURL == "" && deviceConfig.DeviceURL != "" {
		manifestURL = strings.TrimRight(deviceConfig.DeviceURL, "/") + "/manifest.json"
	}
	logging.Logger.Info("Device configuration loaded",
		"manifest_url", manifestURL,
		"chunks_url", deviceConfig.ChunksURL,
		"project_key_set", deviceConfig.ProjectKey != "")

	probe := adapternetwork.NewProbe(opts.ConnectivityTarget, opts.AutojoinCommand)
	channel := adapterota.NewHTTPChannel(adapterota.Config{
		CurrentVersion: version.Version,
		ManifestURL:    manifestURL,
		ProjectKey:     deviceConfig.ProjectKey,
		StagingDir:     config.GetStagingDir(),
	}, &http.Client{Timeout: 5 * time.Minute})

	supervisor := services.NewOtaSupervisor(services.OtaSupervisorDeps{
		Channel:     channel,
		Counters:    c.MetricsService,
		Credentials: c.SettingsService,
		Diagnostics: c.DiagnosticsService,
		Indicator:   c.Indicator,
		Metrics:     c.MetricsService,
		Probe:       probe,
		Restarter:   c.RebootService,
	}, opts.OtaInterval)

	onFault := opts.FaultHandler
	if onFault == nil {
		onFault = watchdog.NewFatalHandler(c.DiagnosticsService, c.RebootService, nil, c.runExitHooks)
	}
	wdt := watchdog.NewRegistry(onFault)
	lockTask, err := watchdog.NewLockTask(wdt, opts.WatchdogDeadline)
	if err != nil {
		return nil, err
	}

	historyMax := opts.HistoryMax
	if historyMax <= 0 {
		historyMax = config.DefaultHistoryMax
	}
	c.HistoryStore = adapterhistory.NewFileStore(config.GetHistoryPath(), historyMax)

	registry := shell.NewRegistry()
	err = commands.RegisterAll(registry, commands.Deps{
		App: commands.AppDeps{
			Diagnostics: c.DiagnosticsService,
			Indicator:   c.Indicator,
			Lock:        lockTask,
			Supervisor:  supervisor,
		},
		Network: commands.NetworkDeps{
			Joiner:   probe,
			Settings: c.SettingsService,
		},
		Settings: commands.SettingsDeps{Settings: c.SettingsService},
		System: commands.SystemDeps{
			Boot:      c.RebootService,
			Restarter: c.RebootService,
			Tasks:     wdt,
			Version:   version.Info(),
		},
	})
	if err != nil {
		return nil, err
	}

	return &Runtime{
		History:    shell.NewHistory(historyMax),
		LockTask:   lockTask,
		Registry:   registry,
		Supervisor: supervisor,
		Watchdog:   wdt,
	}, nil
}
