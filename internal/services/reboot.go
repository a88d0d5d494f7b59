package services

import (
	"context"
	"time"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ports"
)

// RebootService remembers why the process restarts and performs restarts
type RebootService struct {
	repo    ports.RebootRepository
	restart func() error

	bootReason domain.RebootReason
	bootMarked time.Time
}

// NewRebootService creates the service. restart replaces the running
// process and only returns on failure.
func NewRebootService(repo ports.RebootRepository, restart func() error) *RebootService {
	return &RebootService{
		bootReason: domain.RebootReasonUnknown,
		repo:       repo,
		restart:    restart,
	}
}

// MarkResetImminent stores the reason reported after the next start
func (s *RebootService) MarkResetImminent(ctx context.Context, reason domain.RebootReason) {
	if err := s.repo.MarkRebootReason(ctx, reason); err != nil {
		logging.Logger.Error("Failed to mark reboot reason", "reason", reason, "error", err)
		return
	}
	logging.Logger.Info("Reset imminent", "reason", reason)
}

// Restart replaces the running process
func (s *RebootService) Restart() error {
	logging.Logger.Info("Restarting")
	return s.restart()
}

// ConsumeBootReason reads and clears the reason left by the previous run.
// It is called once at startup.
func (s *RebootService) ConsumeBootReason(ctx context.Context) domain.RebootReason {
	reason, markedAt, err := s.repo.ConsumeRebootReason(ctx)
	if err != nil {
		logging.Logger.Warn("Failed to read reboot reason", "error", err)
		return s.bootReason
	}
	if reason != "" {
		s.bootReason = reason
		s.bootMarked = markedAt
	}
	logging.Logger.Info("Boot reason", "reason", s.bootReason, "marked_at", s.bootMarked)
	return s.bootReason
}

// BootReason returns the reason consumed at startup and when it was marked
func (s *RebootService) BootReason() (domain.RebootReason, time.Time) {
	return s.bootReason, s.bootMarked
}
