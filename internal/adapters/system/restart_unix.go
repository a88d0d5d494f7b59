//go:build unix

// Package system restarts the running process in place
package system

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Reexec replaces the current process image with a fresh copy of the
// executable, keeping arguments and environment. It only returns on error.
func Reexec() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}
	if err := unix.Exec(exe, os.Args, os.Environ()); err != nil {
		return fmt.Errorf("failed to exec %s: %w", exe, err)
	}
	return nil
}
