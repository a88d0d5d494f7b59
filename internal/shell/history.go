package shell

import "sync"

// DefaultHistoryMax is the number of lines kept when no limit is configured
const DefaultHistoryMax = 10

// History is a bounded ring of submitted lines. At(0) is the most recent
// line, which matches the golang.org/x/term History contract.
type History struct {
	mu    sync.Mutex
	lines []string
	max   int
}

// NewHistory creates a ring holding at most max lines
func NewHistory(max int) *History {
	if max <= 0 {
		max = DefaultHistoryMax
	}
	return &History{max: max}
}

// Add records a line. Blank lines and repeats of the newest entry are
// skipped; the oldest entry is evicted once the ring is full.
func (h *History) Add(line string) {
	if line == "" {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if n := len(h.lines); n > 0 && h.lines[n-1] == line {
		return
	}
	h.lines = append(h.lines, line)
	if len(h.lines) > h.max {
		h.lines = h.lines[len(h.lines)-h.max:]
	}
}

// Max returns the capacity of the ring
func (h *History) Max() int {
	return h.max
}

// Len returns the number of stored lines
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.lines)
}

// At returns the entry idx steps back from the newest one
func (h *History) At(idx int) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	if idx < 0 || idx >= len(h.lines) {
		panic("shell: history index out of range")
	}
	return h.lines[len(h.lines)-1-idx]
}

// Lines returns the stored lines oldest first
func (h *History) Lines() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, len(h.lines))
	copy(out, h.lines)
	return out
}
