// Package network answers "are we online" by dialing a known endpoint and
// reconnects by running a configured join command.
package network

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"time"

	"github.com/anmitsu/go-shlex"

	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ports"
)

const (
	// DefaultTarget is dialed when no connectivity target is configured
	DefaultTarget = "1.1.1.1:443"
	// DefaultDialTimeout bounds a single connectivity probe
	DefaultDialTimeout = 3 * time.Second
	// DefaultJoinTimeout bounds one autojoin command
	DefaultJoinTimeout = 30 * time.Second
)

// Dialer opens network connections
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Probe implements ports.ConnectivityProbe
type Probe struct {
	dialer      Dialer
	dialTimeout time.Duration
	joinCommand string
	joinTimeout time.Duration
	target      string
}

var _ ports.ConnectivityProbe = (*Probe)(nil)

// NewProbe creates a probe dialing target (host:port). joinCommand is split
// with shell quoting rules and run on Autojoin with DEVCON_SSID and
// DEVCON_PASSWORD in its environment; empty disables autojoin.
func NewProbe(target, joinCommand string) *Probe {
	if target == "" {
		target = DefaultTarget
	}
	return &Probe{
		dialer:      &net.Dialer{},
		dialTimeout: DefaultDialTimeout,
		joinCommand: joinCommand,
		joinTimeout: DefaultJoinTimeout,
		target:      target,
	}
}

// Target returns the address dialed by IsConnected
func (p *Probe) Target() string {
	return p.target
}

// IsConnected reports whether the target accepts a TCP connection
func (p *Probe) IsConnected(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, p.dialTimeout)
	defer cancel()

	conn, err := p.dialer.DialContext(ctx, "tcp", p.target)
	if err != nil {
		logging.Logger.Debug("Connectivity probe failed", "target", p.target, "error", err)
		return false
	}
	_ = conn.Close()
	return true
}

// Autojoin runs the join command and reports whether it succeeded
func (p *Probe) Autojoin(ctx context.Context, ssid, password string) bool {
	if err := p.Join(ctx, ssid, password, p.joinTimeout); err != nil {
		logging.Logger.Warn("Autojoin failed", "ssid", ssid, "error", err)
		return false
	}
	return true
}

// Join runs the join command with an explicit timeout
func (p *Probe) Join(ctx context.Context, ssid, password string, timeout time.Duration) error {
	if p.joinCommand == "" {
		return fmt.Errorf("no autojoin command configured")
	}

	argv, err := shlex.Split(p.joinCommand, true)
	if err != nil {
		return fmt.Errorf("invalid autojoin command: %w", err)
	}
	if len(argv) == 0 {
		return fmt.Errorf("no autojoin command configured")
	}

	if timeout <= 0 {
		timeout = p.joinTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), "DEVCON_SSID="+ssid, "DEVCON_PASSWORD="+password)

	logging.Logger.Info("Joining network", "ssid", ssid, "command", argv[0])
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("join timed out after %s: %w", timeout, ctx.Err())
		}
		return fmt.Errorf("join command failed: %w: %s", err, output)
	}
	return nil
}
