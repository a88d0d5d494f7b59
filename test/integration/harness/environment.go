package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// unreachableTarget makes the connectivity probe fail fast
const unreachableTarget = "127.0.0.1:1"

// TestEnvironment provides an isolated test environment with its own DEVCON_HOME.
type TestEnvironment struct {
	DevconHome string
	extraEnv   map[string]string
	tb         testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp DEVCON_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		DevconHome: tb.TempDir(),
		extraEnv:   make(map[string]string),
		tb:         tb,
	}
}

// Environ returns environment variables configured for test isolation.
// Every inherited DEVCON_* variable is dropped.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "DEVCON_") || key == "TERM" {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"DEVCON_HOME="+e.DevconHome,
		"DEVCON_DEBUG=",
		"TERM=dumb",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// DBPath returns the path to the test database.
func (e *TestEnvironment) DBPath() string {
	return filepath.Join(e.DevconHome, "state.db")
}

// HistoryPath returns the path to the persisted shell history.
func (e *TestEnvironment) HistoryPath() string {
	return filepath.Join(e.DevconHome, "history.txt")
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// ShellArgs returns the arguments that start the shell without touching the
// network.
func ShellArgs(extra ...string) []string {
	args := []string{"run", "--connectivity-target", unreachableTarget}
	return append(args, extra...)
}
