package harness

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

const defaultTimeout = 30 * time.Second

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// CommandResult holds the result of running a CLI command
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles the devcon binary once per test run.
// Call this from TestMain before running tests.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		tempDir, err := os.MkdirTemp("", "devcon-integration-test-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryPath = filepath.Join(tempDir, "devcon")

		projectRoot, err := findProjectRoot()
		if err != nil {
			buildErr = err
			return
		}

		cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd")
		cmd.Dir = projectRoot
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr

		buildErr = cmd.Run()
	})

	return binaryPath, buildErr
}

// CleanupBinary removes the compiled binary and its temp directory.
// Call this from TestMain after tests complete.
func CleanupBinary() {
	if binaryPath != "" {
		if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
			log.Printf("Warning: failed to cleanup binary directory: %v", err)
		}
	}
}

// RunCommand executes the devcon binary with given arguments using default timeout.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return run(tb, env, defaultTimeout, nil, false, args...)
}

// RunShell starts the shell, feeds it input and closes stdin so the shell
// sees EOF once every line has been read.
func RunShell(tb testing.TB, env *TestEnvironment, input string, extraArgs ...string) CommandResult {
	tb.Helper()
	return run(tb, env, defaultTimeout, strings.NewReader(input), false, ShellArgs(extraArgs...)...)
}

// RunShellOpen is RunShell without the EOF: stdin stays open until the
// process exits on its own or timeout passes.
func RunShellOpen(tb testing.TB, env *TestEnvironment, timeout time.Duration, input string, extraArgs ...string) CommandResult {
	tb.Helper()
	return run(tb, env, timeout, strings.NewReader(input), true, ShellArgs(extraArgs...)...)
}

func run(tb testing.TB, env *TestEnvironment, timeout time.Duration, stdin io.Reader, holdOpen bool, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = env.Environ()

	var stdinPipe io.WriteCloser
	if holdOpen && stdin != nil {
		pipe, err := cmd.StdinPipe()
		if err != nil {
			tb.Fatalf("Failed to open stdin pipe: %v", err)
		}
		stdinPipe = pipe
	} else {
		cmd.Stdin = stdin
	}

	if err := cmd.Start(); err != nil {
		tb.Fatalf("Failed to start %s: %v", binaryPath, err)
	}
	if stdinPipe != nil {
		if _, err := io.Copy(stdinPipe, stdin); err != nil {
			tb.Logf("Failed to write stdin: %v", err)
		}
		defer stdinPipe.Close()
	}

	err := cmd.Wait()

	exitCode := 0
	if ctx.Err() == context.DeadlineExceeded {
		tb.Logf("Command timed out after %v: %v %v", timeout, binaryPath, args)
		exitCode = -1
	} else if exitErr, ok := err.(*exec.ExitError); ok {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		tb.Logf("Command execution error: %v", err)
		exitCode = -1
	}

	return CommandResult{
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}
}

// findProjectRoot uses go list to find the module root directory.
func findProjectRoot() (string, error) {
	cmd := exec.Command("go", "list", "-m", "-f", "{{.Dir}}")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
