package storage

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/devcon/internal/domain"
)

// AddCounter implements MetricsRepository.AddCounter
func (r *SQLiteRepository) AddCounter(ctx context.Context, name string, delta int64) error {
	counter := CounterModel{Name: name, Value: delta}
	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "name"}},
			DoUpdates: clause.Assignments(map[string]any{
				"value":      gorm.Expr("counters.value + ?", delta),
				"updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
			}),
		}).Create(&counter).Error
	})
}

// GetCounters implements MetricsRepository.GetCounters
func (r *SQLiteRepository) GetCounters(ctx context.Context) (map[string]int64, error) {
	var counters []CounterModel
	if err := withRetry(func() error {
		return r.db.WithContext(ctx).Find(&counters).Error
	}); err != nil {
		return nil, err
	}

	values := make(map[string]int64, len(counters))
	for _, c := range counters {
		values[c.Name] = c.Value
	}
	return values, nil
}

// SaveOtaSession implements MetricsRepository.SaveOtaSession
func (r *SQLiteRepository) SaveOtaSession(ctx context.Context, record domain.OtaSessionRecord) error {
	model := domainToOtaSessionModel(record)
	return withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	})
}

// ListOtaSessions implements MetricsRepository.ListOtaSessions
func (r *SQLiteRepository) ListOtaSessions(ctx context.Context, limit int) ([]domain.OtaSessionRecord, error) {
	var models []OtaSessionModel
	if err := withRetry(func() error {
		q := r.db.WithContext(ctx).Order("ended_at DESC")
		if limit > 0 {
			q = q.Limit(limit)
		}
		return q.Find(&models).Error
	}); err != nil {
		return nil, err
	}

	records := make([]domain.OtaSessionRecord, 0, len(models))
	for _, m := range models {
		records = append(records, otaSessionModelToDomain(m))
	}
	return records, nil
}
