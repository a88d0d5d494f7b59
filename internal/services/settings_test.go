package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/devcon/internal/domain"
	portsmocks "github.com/renato0307/devcon/internal/ports/mocks"
)

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		store   bool
		clear   bool
		wantErr error
	}{
		{"valid ssid", "wifi_ssid", "home", true, false, nil},
		{"ssid at limit", "wifi_ssid", strings.Repeat("s", 64), true, false, nil},
		{"ssid too long", "wifi_ssid", strings.Repeat("s", 65), false, false, domain.ErrInvalidSetting},
		{"url too long", "chunks_url", "https://" + strings.Repeat("c", 121), false, false, domain.ErrInvalidSetting},
		{"newline rejected", "project_key", "abc\ndef", false, false, domain.ErrInvalidSetting},
		{"unknown key", "wifi_channel", "6", false, false, domain.ErrSettingNotFound},
		{"empty clears", "device_url", "", false, true, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := portsmocks.NewMockSettingsRepository(t)
			if tt.store {
				repo.EXPECT().SetSetting(mock.Anything, domain.SettingKey(tt.key), tt.value).Return(nil).Once()
			}
			if tt.clear {
				repo.EXPECT().DeleteSetting(mock.Anything, domain.SettingKey(tt.key)).Return(nil).Once()
			}

			err := NewSettingsService(repo).Set(context.Background(), tt.key, tt.value)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestSettingsService_LoadCredentials(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		repo := portsmocks.NewMockSettingsRepository(t)
		repo.EXPECT().GetSetting(mock.Anything, domain.SettingWifiSSID).Return("home", nil)
		repo.EXPECT().GetSetting(mock.Anything, domain.SettingWifiPassword).Return("secret", nil)

		ssid, password, err := NewSettingsService(repo).LoadCredentials(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "home", ssid)
		assert.Equal(t, "secret", password)
	})

	t.Run("missing values are empty", func(t *testing.T) {
		repo := portsmocks.NewMockSettingsRepository(t)
		repo.EXPECT().GetSetting(mock.Anything, mock.Anything).Return("", domain.ErrSettingNotFound)

		ssid, password, err := NewSettingsService(repo).LoadCredentials(context.Background())

		require.NoError(t, err)
		assert.Empty(t, ssid)
		assert.Empty(t, password)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo := portsmocks.NewMockSettingsRepository(t)
		repo.EXPECT().GetSetting(mock.Anything, domain.SettingWifiSSID).Return("", errors.New("database is locked"))

		_, _, err := NewSettingsService(repo).LoadCredentials(context.Background())

		assert.Error(t, err)
	})
}

func TestSettingsService_ListMasksSecrets(t *testing.T) {
	repo := portsmocks.NewMockSettingsRepository(t)
	repo.EXPECT().ListSettings(mock.Anything).Return(map[domain.SettingKey]string{
		domain.SettingWifiSSID:     "home",
		domain.SettingWifiPassword: "secret",
	}, nil)

	values, err := NewSettingsService(repo).List(context.Background())

	require.NoError(t, err)
	require.Len(t, values, len(domain.SettingSpecs))

	byKey := map[domain.SettingKey]SettingValue{}
	for _, v := range values {
		byKey[v.Key] = v
	}
	assert.Equal(t, "home", byKey[domain.SettingWifiSSID].Masked())
	assert.Equal(t, "********", byKey[domain.SettingWifiPassword].Masked())
	assert.Equal(t, "(not set)", byKey[domain.SettingDeviceURL].Masked())
}
