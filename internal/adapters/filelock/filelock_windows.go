//go:build windows

package filelock

import (
	"os"

	"golang.org/x/sys/windows"
)

func lock(file *os.File, flags uint32) error {
	var overlapped windows.Overlapped
	return windows.LockFileEx(windows.Handle(file.Fd()), flags, 0, 1, 0, &overlapped)
}

// Lock acquires an exclusive lock on the file
func Lock(file *os.File) error {
	return lock(file, windows.LOCKFILE_EXCLUSIVE_LOCK)
}

// RLock acquires a shared lock on the file
func RLock(file *os.File) error {
	return lock(file, 0)
}

// Unlock releases the lock on the file
func Unlock(file *os.File) error {
	var overlapped windows.Overlapped
	return windows.UnlockFileEx(windows.Handle(file.Fd()), 0, 1, 0, &overlapped)
}
