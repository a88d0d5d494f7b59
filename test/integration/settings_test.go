package integration_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/devcon/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "table format (default)",
			args: []string{"settings", "meta"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file:")
				harness.AssertStdoutContains(t, result, "watchdog_deadline")
			},
		},
		{
			name: "json format",
			args: []string{"settings", "meta", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var output map[string]any
				harness.AssertValidJSON(t, result, &output)
				assert.Contains(t, output, "settings_file")
				assert.Contains(t, output, "format")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}

func TestSettingsDevice(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "set", "device_url", "https://device.example.com")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "settings", "get", "device_url")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "https://device.example.com")

	result = harness.RunCommand(t, env, "settings", "set", "project_key", "abc123")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "settings", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "project_key")
	harness.AssertStdoutNotContains(t, result, "abc123")

	result = harness.RunCommand(t, env, "settings", "get", "project_key", "--reveal")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "abc123")

	result = harness.RunCommand(t, env, "settings", "get", "colour")
	harness.AssertFailure(t, result)
}

func TestSettingsFileOverridesDefaults(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	data, err := json.Marshal(map[string]any{"history_max": 2})
	require.NoError(t, err)
	require.NoError(t, writeSettings(env, data))

	result := harness.RunShell(t, env, "version\nfree\ntasks\n")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "history", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutNotContains(t, result, "version")
	harness.AssertStdoutContains(t, result, "tasks")
}
