package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	t := reflect.TypeOf(Settings{})
	example := make(map[string]any, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		elemType := t.Elem()

		if elemType.Name() == "Duration" {
			switch fieldName {
			case "ota_check_interval":
				return DefaultOtaCheckInterval.String()
			case "watchdog_deadline":
				return DefaultWatchdogDeadline.String()
			default:
				return "30s"
			}
		}

		switch elemType.Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "history_max":
				return DefaultHistoryMax
			case "max_log_files":
				return DefaultMaxLogFiles
			default:
				return 10
			}
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "autojoin_command":
			return "~/.devcon/join.sh"
		case "connectivity_target":
			return "1.1.1.1:443"
		case "nats_subject":
			return DefaultNatsSubject
		case "nats_url":
			return "nats://localhost:4222"
		case "ssh_address":
			return DefaultSSHAddress
		case "update_manifest_url":
			return "https://updates.example.com/devcon/manifest.json"
		default:
			return "example"
		}
	}

	return nil
}
