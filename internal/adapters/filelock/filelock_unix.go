//go:build unix

// Package filelock takes advisory whole-file locks shared between devcon
// processes (the daemon, `devcon status`, SSH sessions).
package filelock

import (
	"os"

	"golang.org/x/sys/unix"
)

// Lock acquires an exclusive lock on the file
func Lock(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_EX)
}

// RLock acquires a shared lock on the file
func RLock(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_SH)
}

// Unlock releases the lock on the file
func Unlock(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
