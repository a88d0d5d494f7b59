package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/services"
	"github.com/renato0307/devcon/internal/shell"
)

// SettingsDeps are the collaborators of the settings group
type SettingsDeps struct {
	Settings *services.SettingsService
}

// RegisterSettings registers settings_get, settings_set and settings_list
func RegisterSettings(reg *shell.Registry, deps SettingsDeps) error {
	if deps.Settings == nil {
		return nil
	}
	s := &settingsCommands{settings: deps.Settings}
	return register(reg,
		shell.NewCommand("settings_get", "Show a device setting", s.get),
		shell.NewCommand("settings_set", "Store a device setting; an empty value clears it", s.set),
		shell.NewCommand("settings_list", "List device settings", s.list),
	)
}

type settingsCommands struct {
	settings *services.SettingsService
}

type settingsGetArgs struct {
	Key string `arg:"" help:"Setting key"`
}

func (s *settingsCommands) get(ctx context.Context, out io.Writer, args *settingsGetArgs) (domain.ExitCode, string) {
	value, err := s.settings.Get(ctx, args.Key)
	if err != nil {
		return settingsErrorCode(err), err.Error()
	}
	return domain.ExitOK, value.Masked()
}

type settingsSetArgs struct {
	Key   string `arg:"" help:"Setting key"`
	Value string `arg:"" optional:"" help:"New value"`
}

func (s *settingsCommands) set(ctx context.Context, out io.Writer, args *settingsSetArgs) (domain.ExitCode, string) {
	if err := s.settings.Set(ctx, args.Key, args.Value); err != nil {
		return settingsErrorCode(err), err.Error()
	}
	return domain.ExitOK, ""
}

func (s *settingsCommands) list(ctx context.Context, out io.Writer, _ *struct{}) (domain.ExitCode, string) {
	values, err := s.settings.List(ctx)
	if err != nil {
		return domain.ExitStorageFailed, err.Error()
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, v := range values {
		fmt.Fprintf(w, "%s\t%s\n", v.Key, v.Masked())
	}
	w.Flush()
	return domain.ExitOK, ""
}

func settingsErrorCode(err error) domain.ExitCode {
	switch {
	case errors.Is(err, domain.ErrSettingNotFound):
		return domain.ExitNotFound
	case errors.Is(err, domain.ErrInvalidSetting):
		return domain.ExitInvalidArg
	default:
		return domain.ExitStorageFailed
	}
}
