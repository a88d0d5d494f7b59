package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/devcon/internal/config"
	"github.com/renato0307/devcon/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	NatsSubject string           `help:"NATS subject for log collection uploads" default:"devcon.logs"`
	NatsURL     string           `help:"NATS server receiving log collections (empty keeps them local)" env:"DEVCON_NATS_URL"`

	Run      RunCmd      `cmd:"" help:"Start the device shell, OTA supervisor and task watchdog (default)" default:"1"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the device shell over SSH"`
	Setup    SetupCmd    `cmd:"setup" help:"Configure network credentials and service URLs"`
	Status   StatusCmd   `cmd:"status" help:"Print the status indicator for tmux status bars" hidden:""`
	Watch    WatchCmd    `cmd:"watch" help:"Live view of counters, OTA sessions and trace events"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (meta, get, set, list)"`
	Ota      OtaCmd      `cmd:"ota" help:"Inspect OTA metrics"`
	Trace    TraceCmd    `cmd:"trace" help:"Inspect trace events and log collections"`
	History  HistoryCmd  `cmd:"history" help:"Manage the shell history"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// LoadedSettings returns the loaded settings.json, never nil
func (c *CLI) LoadedSettings() *config.Settings {
	if c.settings == nil {
		return &config.Settings{}
	}
	return c.settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting only applies while the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == config.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv("DEVCON_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("DEVCON_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		if c.NatsURL == "" && c.settings.NatsURL != "" {
			c.NatsURL = c.settings.NatsURL
		}
		if c.NatsSubject == config.DefaultNatsSubject && c.settings.NatsSubject != "" {
			c.NatsSubject = c.settings.NatsSubject
		}
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes (the autojoin command, a re-exec after restart) inherit
	// the debug settings and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("DEVCON_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("DEVCON_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != config.DefaultMaxLogFiles {
		os.Setenv("DEVCON_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// The container is created after logging so GORM's logger has a sink
	container, err := NewContainer(ContainerOptions{
		NatsSubject: c.NatsSubject,
		NatsURL:     c.NatsURL,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
