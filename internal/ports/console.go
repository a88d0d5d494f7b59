package ports

import "io"

// Console is the line-oriented terminal the shell reads from and writes to
type Console interface {
	io.Writer
	Close() error
	// ReadLine blocks until a full line is entered. It returns io.EOF when
	// the input is closed.
	ReadLine() (string, error)
}

// HistoryStore persists shell history. Failures are non-fatal to callers.
type HistoryStore interface {
	Append(line string) error
	Load() ([]string, error)
}
