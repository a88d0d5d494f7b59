package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Defaults applied when neither a flag, an env var nor settings.json sets a value
const (
	DefaultHistoryMax       = 10
	DefaultMaxLogFiles      = 1000
	DefaultNatsSubject      = "devcon.logs"
	DefaultOtaCheckInterval = time.Hour
	DefaultSSHAddress       = "localhost:2222"
	DefaultWatchdogDeadline = time.Second
)

// Duration supports "90s" or a number of seconds in JSON
type Duration time.Duration

// UnmarshalJSON implements custom unmarshaling for Duration
func (d *Duration) UnmarshalJSON(data []byte) error {
	var seconds float64
	if err := json.Unmarshal(data, &seconds); err == nil {
		*d = Duration(time.Duration(seconds * float64(time.Second)))
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(str)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", str, err)
	}
	if parsed <= 0 {
		return fmt.Errorf("duration must be positive: %q", str)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalJSON implements custom marshaling for Duration
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns the value as a time.Duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Settings represents the structure of ~/.devcon/settings.json
type Settings struct {
	AutojoinCommand    string    `json:"autojoin_command,omitempty"`
	ConnectivityTarget string    `json:"connectivity_target,omitempty"`
	Debug              *bool     `json:"debug,omitempty"`
	HistoryMax         *int      `json:"history_max,omitempty"`
	MaxLogFiles        *int      `json:"max_log_files,omitempty"`
	NatsSubject        string    `json:"nats_subject,omitempty"`
	NatsURL            string    `json:"nats_url,omitempty"`
	OtaCheckInterval   *Duration `json:"ota_check_interval,omitempty"`
	SSHAddress         string    `json:"ssh_address,omitempty"`
	UpdateManifestURL  string    `json:"update_manifest_url,omitempty"`
	WatchdogDeadline   *Duration `json:"watchdog_deadline,omitempty"`
}

// LoadSettings loads settings from $DEVCON_HOME/settings.json (or ~/.devcon/settings.json if not set)
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.HistoryMax != nil && *settings.HistoryMax < 1 {
		return nil, fmt.Errorf("invalid settings.json: history_max must be at least 1")
	}
	if settings.AutojoinCommand != "" {
		settings.AutojoinCommand = ExpandPath(settings.AutojoinCommand)
	}

	return &settings, nil
}

// SaveSettings saves settings to $DEVCON_HOME/settings.json
func SaveSettings(settings *Settings) error {
	if err := EnsureDevconHome(); err != nil {
		return fmt.Errorf("failed to create devcon home: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(GetSettingsPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// HistoryMaxOrDefault returns history_max or DefaultHistoryMax
func (s *Settings) HistoryMaxOrDefault() int {
	if s == nil || s.HistoryMax == nil {
		return DefaultHistoryMax
	}
	return *s.HistoryMax
}

// OtaCheckIntervalOrDefault returns ota_check_interval or DefaultOtaCheckInterval
func (s *Settings) OtaCheckIntervalOrDefault() time.Duration {
	if s == nil || s.OtaCheckInterval == nil {
		return DefaultOtaCheckInterval
	}
	return s.OtaCheckInterval.Std()
}

// WatchdogDeadlineOrDefault returns watchdog_deadline or DefaultWatchdogDeadline
func (s *Settings) WatchdogDeadlineOrDefault() time.Duration {
	if s == nil || s.WatchdogDeadline == nil {
		return DefaultWatchdogDeadline
	}
	return s.WatchdogDeadline.Std()
}
