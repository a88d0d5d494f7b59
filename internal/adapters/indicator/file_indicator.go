// Package indicator implements the status indicator as a small state file,
// so other devcon processes can show the color the daemon last set.
package indicator

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/renato0307/devcon/internal/adapters/filelock"
	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
	"github.com/renato0307/devcon/internal/ports"
)

// FileIndicator keeps the current color in memory and mirrors it to a file
type FileIndicator struct {
	mu      sync.Mutex
	current domain.Color
	path    string
}

var _ ports.StatusIndicator = (*FileIndicator)(nil)

// NewFileIndicator creates an indicator starting in the off state
func NewFileIndicator(path string) *FileIndicator {
	return &FileIndicator{current: domain.ColorOff, path: path}
}

// Set changes the color. Write failures are logged; the in-memory color
// always changes.
func (i *FileIndicator) Set(color domain.Color) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.current != color {
		logging.Logger.Debug("Indicator changed", "from", i.current, "to", color)
	}
	i.current = color

	if err := writeColor(i.path, color); err != nil {
		logging.Logger.Warn("Failed to persist indicator", "path", i.path, "error", err)
	}
}

// Current returns the last color set
func (i *FileIndicator) Current() domain.Color {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.current
}

// ReadColor returns the color stored at path, or off if none was written
func ReadColor(path string) (domain.Color, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.ColorOff, nil
		}
		return domain.ColorOff, fmt.Errorf("failed to open indicator file: %w", err)
	}
	defer file.Close()

	if err := filelock.RLock(file); err != nil {
		return domain.ColorOff, fmt.Errorf("failed to lock indicator file: %w", err)
	}
	defer filelock.Unlock(file)

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.ColorOff, fmt.Errorf("failed to read indicator file: %w", err)
	}
	value := strings.TrimSpace(string(data))
	if value == "" {
		return domain.ColorOff, nil
	}
	return domain.ParseColor(value)
}

func writeColor(path string, color domain.Color) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create indicator directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open indicator file: %w", err)
	}
	defer file.Close()

	if err := filelock.Lock(file); err != nil {
		return fmt.Errorf("failed to lock indicator file: %w", err)
	}
	defer filelock.Unlock(file)

	if err := file.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate indicator file: %w", err)
	}
	if _, err := file.WriteString(string(color) + "\n"); err != nil {
		return fmt.Errorf("failed to write indicator file: %w", err)
	}
	return nil
}
