package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/renato0307/devcon/test/integration/harness"
)

func writeSettings(env *harness.TestEnvironment, data []byte) error {
	return os.WriteFile(filepath.Join(env.DevconHome, "settings.json"), data, 0644)
}

func TestStatus(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "status", "--plain")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "off")
}

func TestOtaHistoryEmpty(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "ota", "history")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "No update sessions recorded")
}

func TestVersionFlag(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "devcon")
}
