package ui

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/devcon/internal/domain"
)

// SetupValues holds what the setup wizard asks for. The device settings are
// stored in the database; the URLs of the local services go to settings.json.
type SetupValues struct {
	ChunksURL         string
	DeviceURL         string
	NatsURL           string
	Password          string
	ProjectKey        string
	SSID              string
	UpdateManifestURL string
}

// NewSetupForm builds the setup wizard bound to values. Fields start with the
// current contents of values.
func NewSetupForm(values *SetupValues) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Network name").
				Description("Used by autojoin when the device is offline").
				Value(&values.SSID).
				Validate(validateSetting(domain.SettingWifiSSID)),
			huh.NewInput().
				Title("Network password").
				EchoMode(huh.EchoModePassword).
				Value(&values.Password).
				Validate(validateSetting(domain.SettingWifiPassword)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Project key").
				EchoMode(huh.EchoModePassword).
				Value(&values.ProjectKey).
				Validate(validateSetting(domain.SettingProjectKey)),
			huh.NewInput().
				Title("Device API URL").
				Value(&values.DeviceURL).
				Validate(validateURLSetting(domain.SettingDeviceURL)),
			huh.NewInput().
				Title("Chunks upload URL").
				Value(&values.ChunksURL).
				Validate(validateURLSetting(domain.SettingChunksURL)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Update manifest URL").
				Description("Leave empty to disable OTA checks").
				Value(&values.UpdateManifestURL).
				Validate(validateURL),
			huh.NewInput().
				Title("NATS URL").
				Description("Leave empty to keep log collections local").
				Placeholder("nats://localhost:4222").
				Value(&values.NatsURL).
				Validate(validateURL),
		),
	)
}

func validateSetting(key domain.SettingKey) func(string) error {
	spec := domain.GetSettingSpec(string(key))
	return func(s string) error {
		if spec == nil {
			return nil
		}
		if n := utf8.RuneCountInString(s); n > spec.MaxLen {
			return fmt.Errorf("at most %d characters", spec.MaxLen)
		}
		if strings.ContainsAny(s, "\r\n\x00") {
			return fmt.Errorf("control characters are not allowed")
		}
		return nil
	}
}

func validateURLSetting(key domain.SettingKey) func(string) error {
	checkLength := validateSetting(key)
	return func(s string) error {
		if err := checkLength(s); err != nil {
			return err
		}
		return validateURL(s)
	}
}

func validateURL(s string) error {
	if s == "" {
		return nil
	}
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("not a valid URL")
	}
	return nil
}
