// Package history persists the shell history to a plain text file, one
// line per entry, trimmed to a maximum number of entries.
package history

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/renato0307/devcon/internal/adapters/filelock"
	"github.com/renato0307/devcon/internal/ports"
)

const (
	// MaxLineBytes caps a stored entry; longer lines are cut on append
	MaxLineBytes = 16 * 1024
	// maxReadBytes bounds a single line when loading files written elsewhere
	maxReadBytes = 1024 * 1024
)

// FileStore implements ports.HistoryStore on a text file
type FileStore struct {
	max  int
	path string
}

var _ ports.HistoryStore = (*FileStore)(nil)

// NewFileStore creates a store keeping at most max lines in path
func NewFileStore(path string, max int) *FileStore {
	return &FileStore{max: max, path: path}
}

// Load returns the stored lines, oldest first. A missing file is empty.
func (s *FileStore) Load() ([]string, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	if err := filelock.RLock(file); err != nil {
		return nil, fmt.Errorf("failed to lock history file: %w", err)
	}
	defer filelock.Unlock(file)

	lines, err := readLines(file)
	if err != nil {
		return nil, err
	}
	return s.trim(lines), nil
}

// Append adds a line and drops the oldest ones beyond the limit
func (s *FileStore) Append(line string) error {
	line = strings.ReplaceAll(line, "\n", " ")
	if strings.TrimSpace(line) == "" {
		return nil
	}
	if len(line) > MaxLineBytes {
		line = strings.ToValidUTF8(line[:MaxLineBytes], "")
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create history directory: %w", err)
	}

	file, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	if err := filelock.Lock(file); err != nil {
		return fmt.Errorf("failed to lock history file: %w", err)
	}
	defer filelock.Unlock(file)

	lines, err := readLines(file)
	if err != nil {
		return err
	}
	lines = s.trim(append(lines, line))

	var buf bytes.Buffer
	for _, l := range lines {
		buf.WriteString(l)
		buf.WriteByte('\n')
	}

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate history file: %w", err)
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to seek history file: %w", err)
	}
	if _, err := file.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// Clear removes every stored line
func (s *FileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove history file: %w", err)
	}
	return nil
}

func (s *FileStore) trim(lines []string) []string {
	if s.max > 0 && len(lines) > s.max {
		return lines[len(lines)-s.max:]
	}
	return lines
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxReadBytes)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	return lines, nil
}
