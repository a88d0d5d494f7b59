package harness

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/devcon/internal/domain"
)

func describe(result CommandResult) string {
	return fmt.Sprintf("exit %d\nStdout: %s\nStderr: %s", result.ExitCode, result.Stdout, result.Stderr)
}

// AssertSuccess verifies the process exited with status 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Zero(tb, result.ExitCode, "Expected success, got %s", describe(result))
}

// AssertFailure verifies the process exited with a non-zero status.
func AssertFailure(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.NotZero(tb, result.ExitCode, "Expected failure, got %s", describe(result))
}

// AssertExitCode verifies the process exited with a specific status.
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode, "Unexpected status, got %s", describe(result))
}

// AssertStdoutContains verifies stdout contains the expected string.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, describe(result))
}

// AssertStdoutNotContains verifies stdout does not contain the string.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, describe(result))
}

// AssertStderrContains verifies stderr contains the expected string.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, describe(result))
}

// AssertStdoutEmpty verifies stdout holds nothing but whitespace.
func AssertStdoutEmpty(tb testing.TB, result CommandResult) {
	tb.Helper()
	assert.Empty(tb, strings.TrimSpace(result.Stdout), describe(result))
}

// AssertValidJSON verifies stdout is valid JSON and unmarshals it into target.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	require.NoError(tb, json.Unmarshal([]byte(result.Stdout), target), describe(result))
}

// AssertShellCode verifies the shell reported a command ending with code,
// e.g. "Command returned non-zero error code: 0x103 (ESP_ERR_INVALID_STATE)".
func AssertShellCode(tb testing.TB, result CommandResult, code domain.ExitCode) {
	tb.Helper()
	want := fmt.Sprintf("non-zero error code: %s (%s)", code.Hex(), code.Name())
	assert.Contains(tb, result.Stdout, want, describe(result))
}
