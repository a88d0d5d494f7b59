package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// WatchKeys holds the bindings of the status view
type WatchKeys struct {
	ForceQuit key.Binding
	Quit      key.Binding
	Refresh   key.Binding
}

// DefaultWatchKeys returns the default bindings
func DefaultWatchKeys() WatchKeys {
	return WatchKeys{
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// footer renders the bindings that carry help text, e.g. "r refresh • q quit"
func (k WatchKeys) footer() string {
	var parts []string
	for _, b := range []key.Binding{k.Refresh, k.Quit} {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
