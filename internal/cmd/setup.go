package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/devcon/internal/config"
	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ui"
)

// SetupCmd runs the interactive setup wizard
type SetupCmd struct{}

// Run executes the setup command
func (s *SetupCmd) Run(cli *CLI) error {
	ctx := context.Background()
	settingsService := cli.Container.SettingsService
	fileSettings := cli.LoadedSettings()

	values := &ui.SetupValues{
		NatsURL:           fileSettings.NatsURL,
		UpdateManifestURL: fileSettings.UpdateManifestURL,
	}
	current := map[domain.SettingKey]*string{
		domain.SettingChunksURL:    &values.ChunksURL,
		domain.SettingDeviceURL:    &values.DeviceURL,
		domain.SettingProjectKey:   &values.ProjectKey,
		domain.SettingWifiPassword: &values.Password,
		domain.SettingWifiSSID:     &values.SSID,
	}
	stored, err := settingsService.List(ctx)
	if err != nil {
		return err
	}
	for _, v := range stored {
		if target, ok := current[v.Key]; ok {
			*target = v.Value
		}
	}

	if err := ui.NewSetupForm(values).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Println("Setup cancelled")
			return nil
		}
		return fmt.Errorf("setup form failed: %w", err)
	}

	for key, value := range current {
		if err := settingsService.Set(ctx, string(key), *value); err != nil {
			return err
		}
	}

	fileSettings.NatsURL = values.NatsURL
	fileSettings.UpdateManifestURL = values.UpdateManifestURL
	if err := config.SaveSettings(fileSettings); err != nil {
		return err
	}

	logging.Logger.Info("Setup complete")
	fmt.Println("\n✓ Setup complete!")
	fmt.Printf("Device settings stored in %s\n", config.GetDBPath())
	fmt.Printf("Service URLs stored in %s\n", config.GetSettingsPath())
	fmt.Println("Start the console with: devcon")
	return nil
}
