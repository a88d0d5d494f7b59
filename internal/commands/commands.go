// Package commands holds the shell command groups. Each group registers its
// verbs on a shell.Registry; the shell core knows nothing about them.
package commands

import (
	"fmt"

	"github.com/renato0307/devcon/internal/shell"
)

// Deps groups the collaborators of every command group
type Deps struct {
	App      AppDeps
	Network  NetworkDeps
	Settings SettingsDeps
	System   SystemDeps
}

// RegisterAll registers the system, network, app and settings groups
func RegisterAll(reg *shell.Registry, deps Deps) error {
	groups := []struct {
		name     string
		register func(*shell.Registry) error
	}{
		{"system", func(r *shell.Registry) error { return RegisterSystem(r, deps.System) }},
		{"network", func(r *shell.Registry) error { return RegisterNetwork(r, deps.Network) }},
		{"app", func(r *shell.Registry) error { return RegisterApp(r, deps.App) }},
		{"settings", func(r *shell.Registry) error { return RegisterSettings(r, deps.Settings) }},
	}

	for _, g := range groups {
		if err := g.register(reg); err != nil {
			return fmt.Errorf("failed to register %s commands: %w", g.name, err)
		}
	}
	return nil
}

func register(reg *shell.Registry, cmds ...shell.Command) error {
	for _, cmd := range cmds {
		if err := reg.Register(cmd); err != nil {
			return err
		}
	}
	return nil
}
