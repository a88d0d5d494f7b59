package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/devcon/internal/domain"
)

// GetSetting implements SettingsRepository.GetSetting
func (r *SQLiteRepository) GetSetting(ctx context.Context, key domain.SettingKey) (string, error) {
	var setting SettingModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("`key` = ?", string(key)).First(&setting).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("%w: %s", domain.ErrSettingNotFound, key)
	}
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// SetSetting implements SettingsRepository.SetSetting
func (r *SQLiteRepository) SetSetting(ctx context.Context, key domain.SettingKey, value string) error {
	setting := SettingModel{Key: string(key), Value: value}
	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&setting).Error
	})
}

// DeleteSetting implements SettingsRepository.DeleteSetting
func (r *SQLiteRepository) DeleteSetting(ctx context.Context, key domain.SettingKey) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Where("`key` = ?", string(key)).Delete(&SettingModel{}).Error
	})
}

// ListSettings implements SettingsRepository.ListSettings
func (r *SQLiteRepository) ListSettings(ctx context.Context) (map[domain.SettingKey]string, error) {
	var settings []SettingModel
	if err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("`key`").Find(&settings).Error
	}); err != nil {
		return nil, err
	}

	values := make(map[domain.SettingKey]string, len(settings))
	for _, s := range settings {
		values[domain.SettingKey(s.Key)] = s.Value
	}
	return values, nil
}
