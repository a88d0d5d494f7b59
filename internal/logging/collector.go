package logging

import (
	"bytes"
	"log/slog"
	"sync"
)

const (
	// LinePrefix tags every collected line with the application name
	LinePrefix = "[devcon] "
	// CollectorSize is the number of lines the collector keeps
	CollectorSize = 128
)

// Recent holds the most recent log lines for diagnostics uploads
var Recent = NewCollector(CollectorSize)

// Collector is a fixed-size ring of formatted log lines
type Collector struct {
	mu    sync.Mutex
	lines []string
	next  int
	full  bool
}

// NewCollector creates a ring that keeps the last size lines
func NewCollector(size int) *Collector {
	if size <= 0 {
		size = CollectorSize
	}
	return &Collector{lines: make([]string, size)}
}

// Write stores one formatted record. slog handlers emit exactly one record
// per call.
func (c *Collector) Write(p []byte) (int, error) {
	line := LinePrefix + string(bytes.TrimRight(p, "\n"))

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines[c.next] = line
	c.next = (c.next + 1) % len(c.lines)
	if c.next == 0 {
		c.full = true
	}
	return len(p), nil
}

// Freeze returns a copy of the collected lines, oldest first
func (c *Collector) Freeze() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.full {
		out := make([]string, c.next)
		copy(out, c.lines[:c.next])
		return out
	}
	out := make([]string, 0, len(c.lines))
	out = append(out, c.lines[c.next:]...)
	out = append(out, c.lines[:c.next]...)
	return out
}

// Reset drops every collected line
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.lines)
	c.next = 0
	c.full = false
}

// Handler returns a text handler writing into the collector
func (c *Collector) Handler(level slog.Level) slog.Handler {
	return slog.NewTextHandler(c, &slog.HandlerOptions{Level: level})
}
