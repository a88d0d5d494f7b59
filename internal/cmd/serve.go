package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/ssh"

	adapterconsole "github.com/renato0307/devcon/internal/adapters/console"
	"github.com/renato0307/devcon/internal/adapters/sshserver"
	"github.com/renato0307/devcon/internal/config"
	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/shell"
)

// ServeCmd serves the shell over SSH. Sessions share one supervisor,
// watchdog and command registry; each gets its own history.
type ServeCmd struct {
	RunCmd
	Address string `help:"Address to listen on" default:"localhost:2222"`
}

// Run executes the serve command
func (s *ServeCmd) Run(cli *CLI) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settings := cli.LoadedSettings()
	if s.Address == config.DefaultSSHAddress && settings.SSHAddress != "" {
		s.Address = settings.SSHAddress
	}

	container := cli.Container
	bootReason := container.RebootService.ConsumeBootReason(ctx)

	rt, err := container.NewRuntime(ctx, s.options(settings))
	if err != nil {
		return fmt.Errorf("failed to start runtime: %w", err)
	}

	srv, err := sshserver.NewServer(s.Address, config.GetSSHDir(), func(sess ssh.Session) {
		serveSession(sess, rt, container)
	})
	if err != nil {
		return err
	}

	logging.Logger.Info("Serving devcon over SSH", "address", s.Address, "boot_reason", bootReason)
	fmt.Printf("SSH server listening on %s\n", s.Address)
	return runTasks(ctx, rt, srv.Run)
}

func serveSession(sess ssh.Session, rt *Runtime, container *Container) {
	history := shell.NewHistory(rt.History.Max())
	console := adapterconsole.NewTerminal(sess, Prompt, history)

	pty, winCh, ok := sess.Pty()
	if ok {
		_ = console.SetSize(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				_ = console.SetSize(win.Width, win.Height)
			}
		}()
	}

	printBanner(console, bootReasonOf(container))

	// Only the local console persists history
	loop := shell.NewLoop(rt.Registry, console, history, nil)
	if err := loop.Run(sess.Context()); err != nil {
		logging.Logger.Warn("SSH shell ended with error", "user", sess.User(), "error", err)
	}
	_ = sess.Exit(0)
}

func bootReasonOf(container *Container) domain.RebootReason {
	reason, _ := container.RebootService.BootReason()
	return reason
}
