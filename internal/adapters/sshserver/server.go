// Package sshserver serves the device shell over SSH. Every session gets its
// own line editor bound to a handler supplied by the caller.
package sshserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	wishlogging "github.com/charmbracelet/wish/logging"

	"github.com/renato0307/devcon/internal/logging"
)

// ShutdownTimeout bounds the graceful shutdown of open sessions
const ShutdownTimeout = 30 * time.Second

// SessionHandler runs one interactive session until it ends
type SessionHandler func(sess ssh.Session)

// Server is the SSH front end of the shell
type Server struct {
	address    string
	wishServer *ssh.Server
}

// NewServer creates a server listening on address. sshDir holds the host
// key (created on first start) and the authorized_keys file.
func NewServer(address, sshDir string, handler SessionHandler) (*Server, error) {
	if err := os.MkdirAll(sshDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create SSH directory: %w", err)
	}
	authorizedKeysPath := filepath.Join(sshDir, "authorized_keys")

	// Middleware executes in reverse order (last to first)
	wishServer, err := wish.NewServer(
		wish.WithAddress(address),
		wish.WithHostKeyPath(filepath.Join(sshDir, "id_ed25519")),
		wish.WithPublicKeyAuth(func(ctx ssh.Context, key ssh.PublicKey) bool {
			fingerprint := getKeyFingerprint(key)
			if !isKeyAuthorized(key, authorizedKeysPath) {
				logging.Logger.Warn("Unauthorized SSH key",
					"user", ctx.User(),
					"fingerprint", fingerprint,
					"key_type", key.Type())
				return false
			}
			logging.Logger.Info("SSH key authenticated",
				"user", ctx.User(),
				"fingerprint", fingerprint,
				"key_type", key.Type())
			return true
		}),
		wish.WithMiddleware(
			shellMiddleware(handler),
			activeterm.Middleware(),
			wishlogging.Middleware(),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SSH server: %w", err)
	}

	return &Server{address: address, wishServer: wishServer}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("Starting SSH server", "address", s.address)
		errCh <- s.wishServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("SSH server failed: %w", err)
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down SSH server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := s.wishServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown SSH server: %w", err)
	}
	logging.Logger.Info("SSH server stopped")
	return nil
}

func shellMiddleware(handler SessionHandler) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())
			start := time.Now()
			logging.Logger.Info("New SSH session", "session_id", sessionID)

			handler(sess)

			logging.Logger.Info("SSH session ended",
				"session_id", sessionID,
				"duration", time.Since(start).String())
			next(sess)
		}
	}
}
