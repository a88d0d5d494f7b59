package storage

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/devcon/internal/domain"
)

// pendingRebootID is the key of the single reboot reason row
const pendingRebootID = 1

// MarkRebootReason implements RebootRepository.MarkRebootReason
func (r *SQLiteRepository) MarkRebootReason(ctx context.Context, reason domain.RebootReason) error {
	model := RebootReasonModel{
		ID:       pendingRebootID,
		MarkedAt: time.Now().UTC(),
		Reason:   string(reason),
	}
	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&model).Error
	})
}

// ConsumeRebootReason implements RebootRepository.ConsumeRebootReason
func (r *SQLiteRepository) ConsumeRebootReason(ctx context.Context) (domain.RebootReason, time.Time, error) {
	var model RebootReasonModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&model, pendingRebootID).Error; err != nil {
				return err
			}
			return tx.Delete(&RebootReasonModel{}, pendingRebootID).Error
		})
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", time.Time{}, nil
	}
	if err != nil {
		return "", time.Time{}, err
	}
	return domain.RebootReason(model.Reason), model.MarkedAt, nil
}
