package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ui"
)

// WatchCmd shows a live status view
type WatchCmd struct {
	Interval time.Duration `help:"Refresh interval" default:"2s"`
}

// Run executes the watch command
func (w *WatchCmd) Run(cli *CLI) error {
	model := ui.NewWatchModel(cli.Container.StatusService.Report, w.Interval)

	logging.Logger.Info("Starting status viewer", "interval", w.Interval)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		logging.Logger.Error("Status viewer error", "error", err)
		return fmt.Errorf("error running status viewer: %w", err)
	}
	return nil
}
