package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"
	"unicode/utf8"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/ports"
	"github.com/renato0307/devcon/internal/services"
	"github.com/renato0307/devcon/internal/shell"
)

// DefaultJoinTimeout is used when join runs without --timeout
const DefaultJoinTimeout = 10 * time.Second

// NetworkDeps are the collaborators of the network group
type NetworkDeps struct {
	Joiner   ports.NetworkJoiner
	Settings *services.SettingsService
}

// RegisterNetwork registers join and net_status
func RegisterNetwork(reg *shell.Registry, deps NetworkDeps) error {
	n := &networkCommands{deps: deps}
	return register(reg,
		shell.NewCommand("join", "Join a network and store its credentials for autojoin", n.join),
		shell.NewCommand("net_status", "Show connectivity", n.status),
	)
}

type networkCommands struct {
	deps NetworkDeps
}

type joinArgs struct {
	SSID     string        `arg:"" name:"ssid" help:"Network name"`
	Password string        `arg:"" optional:"" name:"password" help:"Network password"`
	Timeout  time.Duration `help:"Connection timeout" default:"10s"`
}

func (n *networkCommands) join(ctx context.Context, out io.Writer, args *joinArgs) (domain.ExitCode, string) {
	if n.deps.Joiner == nil {
		return domain.ExitNotSupported, "joining networks is not supported"
	}
	if msg := checkLength(domain.SettingWifiSSID, args.SSID); msg != "" {
		return domain.ExitInvalidArg, msg
	}
	if msg := checkLength(domain.SettingWifiPassword, args.Password); msg != "" {
		return domain.ExitInvalidArg, msg
	}

	fmt.Fprintf(out, "Connecting to '%s'\n", args.SSID)
	if err := n.deps.Joiner.Join(ctx, args.SSID, args.Password, args.Timeout); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.ExitTimeout, "Connection timed out"
		}
		return domain.ExitWifiNotConn, fmt.Sprintf("Connection failed: %v", err)
	}

	if n.deps.Settings != nil {
		if err := n.deps.Settings.StoreCredentials(ctx, args.SSID, args.Password); err != nil {
			return domain.ExitStorageFailed, fmt.Sprintf("Connected, but storing credentials failed: %v", err)
		}
	}
	return domain.ExitOK, "Connected"
}

func (n *networkCommands) status(ctx context.Context, out io.Writer, _ *struct{}) (domain.ExitCode, string) {
	if n.deps.Joiner == nil {
		return domain.ExitNotSupported, "connectivity probe is not available"
	}
	if n.deps.Joiner.IsConnected(ctx) {
		return domain.ExitOK, fmt.Sprintf("online (%s reachable)", n.deps.Joiner.Target())
	}
	return domain.ExitWifiNotConn, fmt.Sprintf("offline (%s unreachable)", n.deps.Joiner.Target())
}

func checkLength(key domain.SettingKey, value string) string {
	spec := domain.GetSettingSpec(string(key))
	if spec == nil {
		return ""
	}
	if n := utf8.RuneCountInString(value); n > spec.MaxLen {
		return fmt.Sprintf("%s is %d characters, max %d", key, n, spec.MaxLen)
	}
	return ""
}
