package domain

import "time"

// SlotInfo is a read-only view of a watchdog slot
type SlotInfo struct {
	Armed     bool
	Deadline  time.Duration
	LastReset time.Time
	TaskID    string
}

// Stuck reports whether the slot exceeded its deadline at now.
// Slots without a deadline are never checked.
func (s SlotInfo) Stuck(now time.Time) bool {
	if !s.Armed || s.Deadline <= 0 {
		return false
	}
	return now.Sub(s.LastReset) > s.Deadline
}
