package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ports"
)

// SettingValue is a setting as shown to the user
type SettingValue struct {
	Key    domain.SettingKey
	Set    bool
	Value  string
	Secret bool
}

// Masked returns the value with secrets hidden
func (v SettingValue) Masked() string {
	if !v.Set {
		return "(not set)"
	}
	if v.Secret {
		return strings.Repeat("*", 8)
	}
	return v.Value
}

// DeviceConfig is the update channel configuration loaded at startup
type DeviceConfig struct {
	ChunksURL  string
	DeviceURL  string
	ProjectKey string
}

// SettingsService validates and persists device settings
type SettingsService struct {
	repo ports.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(repo ports.SettingsRepository) *SettingsService {
	return &SettingsService{repo: repo}
}

// Get returns the value of a known setting
func (s *SettingsService) Get(ctx context.Context, key string) (SettingValue, error) {
	spec, err := lookupSetting(key)
	if err != nil {
		return SettingValue{}, err
	}

	value, err := s.repo.GetSetting(ctx, spec.Key)
	if errors.Is(err, domain.ErrSettingNotFound) {
		return SettingValue{Key: spec.Key, Secret: spec.Secret}, nil
	}
	if err != nil {
		return SettingValue{}, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return SettingValue{Key: spec.Key, Set: true, Value: value, Secret: spec.Secret}, nil
}

// Set validates and stores a setting. An empty value deletes it.
func (s *SettingsService) Set(ctx context.Context, key, value string) error {
	spec, err := lookupSetting(key)
	if err != nil {
		return err
	}

	if value == "" {
		if err := s.repo.DeleteSetting(ctx, spec.Key); err != nil {
			return fmt.Errorf("failed to clear setting %s: %w", key, err)
		}
		logging.Logger.Info("Setting cleared", "key", key)
		return nil
	}

	if n := utf8.RuneCountInString(value); n > spec.MaxLen {
		return fmt.Errorf("%w: %s is %d characters, max %d", domain.ErrInvalidSetting, key, n, spec.MaxLen)
	}
	if strings.ContainsAny(value, "\r\n\x00") {
		return fmt.Errorf("%w: %s contains control characters", domain.ErrInvalidSetting, key)
	}

	if err := s.repo.SetSetting(ctx, spec.Key, value); err != nil {
		return fmt.Errorf("failed to store setting %s: %w", key, err)
	}
	logging.Logger.Info("Setting stored", "key", key, "secret", spec.Secret)
	return nil
}

// List returns every known setting in key order
func (s *SettingsService) List(ctx context.Context) ([]SettingValue, error) {
	stored, err := s.repo.ListSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	values := make([]SettingValue, 0, len(domain.SettingSpecs))
	for _, spec := range domain.SettingSpecs {
		value, ok := stored[spec.Key]
		values = append(values, SettingValue{
			Key:    spec.Key,
			Set:    ok,
			Value:  value,
			Secret: spec.Secret,
		})
	}
	return values, nil
}

// LoadCredentials returns the stored network credentials, empty when unset
func (s *SettingsService) LoadCredentials(ctx context.Context) (string, string, error) {
	ssid, err := s.Get(ctx, string(domain.SettingWifiSSID))
	if err != nil {
		return "", "", err
	}
	password, err := s.Get(ctx, string(domain.SettingWifiPassword))
	if err != nil {
		return "", "", err
	}
	return ssid.Value, password.Value, nil
}

// StoreCredentials saves the network credentials used by autojoin
func (s *SettingsService) StoreCredentials(ctx context.Context, ssid, password string) error {
	if err := s.Set(ctx, string(domain.SettingWifiSSID), ssid); err != nil {
		return err
	}
	return s.Set(ctx, string(domain.SettingWifiPassword), password)
}

// DeviceConfig loads the project key and service URLs
func (s *SettingsService) DeviceConfig(ctx context.Context) (DeviceConfig, error) {
	values, err := s.List(ctx)
	if err != nil {
		return DeviceConfig{}, err
	}

	var cfg DeviceConfig
	for _, v := range values {
		switch v.Key {
		case domain.SettingChunksURL:
			cfg.ChunksURL = v.Value
		case domain.SettingDeviceURL:
			cfg.DeviceURL = v.Value
		case domain.SettingProjectKey:
			cfg.ProjectKey = v.Value
		}
	}
	return cfg, nil
}

func lookupSetting(key string) (*domain.SettingSpec, error) {
	spec := domain.GetSettingSpec(key)
	if spec == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrSettingNotFound, key)
	}
	return spec, nil
}
