package domain

// SettingKey names a persisted device setting
type SettingKey string

const (
	SettingChunksURL    SettingKey = "chunks_url"
	SettingDeviceURL    SettingKey = "device_url"
	SettingProjectKey   SettingKey = "project_key"
	SettingWifiPassword SettingKey = "wifi_password"
	SettingWifiSSID     SettingKey = "wifi_ssid"
)

// SettingSpec describes the validation applied to a setting value
type SettingSpec struct {
	Description string
	Key         SettingKey
	MaxLen      int
	Secret      bool
}

// SettingSpecs is the canonical list of device settings.
// Sorted alphabetically by Key.
var SettingSpecs = []SettingSpec{
	{Key: SettingChunksURL, Description: "Chunks upload base URL", MaxLen: 128},
	{Key: SettingDeviceURL, Description: "Device API base URL", MaxLen: 128},
	{Key: SettingProjectKey, Description: "Project key sent with update checks", MaxLen: 32, Secret: true},
	{Key: SettingWifiPassword, Description: "Network password used by autojoin", MaxLen: 64, Secret: true},
	{Key: SettingWifiSSID, Description: "Network name used by autojoin", MaxLen: 64},
}

// GetSettingSpec returns the spec for a key, or nil if the key is unknown.
func GetSettingSpec(key string) *SettingSpec {
	for i := range SettingSpecs {
		if string(SettingSpecs[i].Key) == key {
			return &SettingSpecs[i]
		}
	}
	return nil
}
