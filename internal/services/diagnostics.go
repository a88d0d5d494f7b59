package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ports"
)

// DiagnosticsService records trace events and ships frozen log collections
type DiagnosticsService struct {
	logs     ports.LogBuffer
	now      func() time.Time
	repo     ports.TraceRepository
	uploader ports.LogUploader
}

// NewDiagnosticsService creates the service. uploader may be nil, in which
// case collections stay pending in the store.
func NewDiagnosticsService(repo ports.TraceRepository, logs ports.LogBuffer, uploader ports.LogUploader) *DiagnosticsService {
	return &DiagnosticsService{
		logs:     logs,
		now:      time.Now,
		repo:     repo,
		uploader: uploader,
	}
}

// TraceEvent records a diagnostic event
func (s *DiagnosticsService) TraceEvent(ctx context.Context, reason, message string) {
	event := domain.TraceEvent{
		CreatedAt: s.now(),
		Message:   message,
		Reason:    reason,
	}
	if err := s.repo.SaveTraceEvent(ctx, event); err != nil {
		logging.Logger.Error("Failed to save trace event", "reason", reason, "error", err)
		return
	}
	logging.Logger.Info("Trace event recorded", "reason", reason, "message", message)
}

// TriggerLogCollection freezes the recent logs and uploads them
func (s *DiagnosticsService) TriggerLogCollection(ctx context.Context) {
	if _, err := s.CollectLogs(ctx); err != nil {
		logging.Logger.Error("Log collection failed", "error", err)
	}
}

// CollectLogs freezes the recent logs into a stored collection and tries to
// upload it right away
func (s *DiagnosticsService) CollectLogs(ctx context.Context) (domain.LogCollection, error) {
	collection := domain.LogCollection{
		CreatedAt: s.now(),
		ID:        uuid.New().String(),
		Lines:     s.logs.Freeze(),
	}
	if err := s.repo.SaveLogCollection(ctx, collection); err != nil {
		return collection, fmt.Errorf("failed to save log collection: %w", err)
	}
	logging.Logger.Info("Log collection frozen", "collection", collection.ID, "lines", len(collection.Lines))

	if s.uploader == nil {
		return collection, nil
	}
	if err := s.upload(ctx, collection); err != nil {
		logging.Logger.Warn("Log collection upload deferred", "collection", collection.ID, "error", err)
		return collection, nil
	}
	collection.Uploaded = true
	return collection, nil
}

// UploadPending retries every collection not uploaded yet. It returns the
// number of collections uploaded.
func (s *DiagnosticsService) UploadPending(ctx context.Context) (int, error) {
	if s.uploader == nil {
		return 0, nil
	}

	pending, err := s.repo.ListLogCollections(ctx, true)
	if err != nil {
		return 0, fmt.Errorf("failed to list pending log collections: %w", err)
	}

	uploaded := 0
	for _, collection := range pending {
		if err := s.upload(ctx, collection); err != nil {
			return uploaded, err
		}
		uploaded++
	}
	return uploaded, nil
}

// Events lists trace events recorded since the given time, newest first
func (s *DiagnosticsService) Events(ctx context.Context, since time.Time, limit int) ([]domain.TraceEvent, error) {
	return s.repo.ListTraceEvents(ctx, since, limit)
}

func (s *DiagnosticsService) upload(ctx context.Context, collection domain.LogCollection) error {
	if err := s.uploader.Upload(ctx, collection); err != nil {
		return fmt.Errorf("failed to upload log collection %s: %w", collection.ID, err)
	}
	if err := s.repo.MarkLogCollectionUploaded(ctx, collection.ID); err != nil {
		return fmt.Errorf("failed to mark log collection %s uploaded: %w", collection.ID, err)
	}
	logging.Logger.Info("Log collection uploaded", "collection", collection.ID)
	return nil
}
