package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/renato0307/devcon/internal/domain"
)

// SaveTraceEvent implements TraceRepository.SaveTraceEvent
func (r *SQLiteRepository) SaveTraceEvent(ctx context.Context, event domain.TraceEvent) error {
	model := TraceEventModel{
		CreatedAt: event.CreatedAt,
		Message:   event.Message,
		Reason:    event.Reason,
	}
	return withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	})
}

// ListTraceEvents implements TraceRepository.ListTraceEvents
func (r *SQLiteRepository) ListTraceEvents(ctx context.Context, since time.Time, limit int) ([]domain.TraceEvent, error) {
	var models []TraceEventModel
	if err := withRetry(func() error {
		q := r.db.WithContext(ctx).Order("created_at DESC, id DESC")
		if !since.IsZero() {
			q = q.Where("created_at >= ?", since.UTC())
		}
		if limit > 0 {
			q = q.Limit(limit)
		}
		return q.Find(&models).Error
	}); err != nil {
		return nil, err
	}

	events := make([]domain.TraceEvent, 0, len(models))
	for _, m := range models {
		events = append(events, traceEventModelToDomain(m))
	}
	return events, nil
}

// SaveLogCollection implements TraceRepository.SaveLogCollection
func (r *SQLiteRepository) SaveLogCollection(ctx context.Context, collection domain.LogCollection) error {
	model := domainToLogCollectionModel(collection)
	return withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	})
}

// ListLogCollections implements TraceRepository.ListLogCollections
func (r *SQLiteRepository) ListLogCollections(ctx context.Context, onlyPending bool) ([]domain.LogCollection, error) {
	var models []LogCollectionModel
	if err := withRetry(func() error {
		q := r.db.WithContext(ctx).Order("created_at")
		if onlyPending {
			q = q.Where("uploaded = ?", false)
		}
		return q.Find(&models).Error
	}); err != nil {
		return nil, err
	}

	collections := make([]domain.LogCollection, 0, len(models))
	for _, m := range models {
		collections = append(collections, logCollectionModelToDomain(m))
	}
	return collections, nil
}

// MarkLogCollectionUploaded implements TraceRepository.MarkLogCollectionUploaded
func (r *SQLiteRepository) MarkLogCollectionUploaded(ctx context.Context, id string) error {
	now := time.Now().UTC()
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&LogCollectionModel{}).
			Where("id = ?", id).
			Updates(map[string]any{"uploaded": true, "uploaded_at": now})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("log collection %s not found", id)
		}
		return nil
	})
}
