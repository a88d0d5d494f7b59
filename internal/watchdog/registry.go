// Package watchdog detects tasks that stop making progress. Each task owns
// a slot that it arms while busy and feeds as it advances; a periodic sweep
// reports armed slots that were not fed within their deadline.
package watchdog

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/renato0307/devcon/internal/domain"
	"github.com/renato0307/devcon/internal/logging"
)

// SweepInterval is how often Run inspects the slots
const SweepInterval = time.Second

// FaultHandler is called for every slot found stuck during a sweep
type FaultHandler func(ctx context.Context, slot domain.SlotInfo)

type slot struct {
	armed     atomic.Bool
	deadline  time.Duration
	id        string
	lastReset atomic.Int64
}

func (s *slot) info() domain.SlotInfo {
	return domain.SlotInfo{
		Armed:     s.armed.Load(),
		Deadline:  s.deadline,
		LastReset: time.Unix(0, s.lastReset.Load()),
		TaskID:    s.id,
	}
}

// Option configures a Registry
type Option func(*Registry)

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(r *Registry) { r.now = now }
}

// WithInterval changes the sweep period used by Run
func WithInterval(d time.Duration) Option {
	return func(r *Registry) { r.interval = d }
}

// Registry holds the watchdog slots. Membership changes take a lock; the
// per-slot fields are atomics written by the owning task only.
type Registry struct {
	interval time.Duration
	mu       sync.RWMutex
	now      func() time.Time
	onFault  FaultHandler
	slots    map[string]*slot
}

// NewRegistry creates an empty registry that reports stuck slots to onFault
func NewRegistry(onFault FaultHandler, opts ...Option) *Registry {
	r := &Registry{
		interval: SweepInterval,
		now:      time.Now,
		onFault:  onFault,
		slots:    make(map[string]*slot),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register creates a disarmed slot. A zero deadline makes the slot inert.
func (r *Registry) Register(id string, deadline time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.slots[id]; exists {
		return fmt.Errorf("%w: %s", domain.ErrSlotExists, id)
	}
	s := &slot{id: id, deadline: deadline}
	s.lastReset.Store(r.now().UnixNano())
	r.slots[id] = s

	logging.Logger.Debug("Watchdog slot registered", "task", id, "deadline", deadline)
	return nil
}

// Unregister removes a slot
func (r *Registry) Unregister(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.slots[id]; !exists {
		return fmt.Errorf("%w: %s", domain.ErrSlotNotFound, id)
	}
	delete(r.slots, id)
	return nil
}

// Start arms the slot and stamps the current time
func (r *Registry) Start(id string) error {
	s, err := r.get(id)
	if err != nil {
		return err
	}
	s.lastReset.Store(r.now().UnixNano())
	s.armed.Store(true)
	return nil
}

// Feed stamps the current time without changing the armed flag
func (r *Registry) Feed(id string) error {
	s, err := r.get(id)
	if err != nil {
		return err
	}
	s.lastReset.Store(r.now().UnixNano())
	return nil
}

// Stop disarms the slot
func (r *Registry) Stop(id string) error {
	s, err := r.get(id)
	if err != nil {
		return err
	}
	s.armed.Store(false)
	return nil
}

// Slots returns a snapshot of every slot sorted by task id
func (r *Registry) Slots() []domain.SlotInfo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]domain.SlotInfo, 0, len(r.slots))
	for _, s := range r.slots {
		infos = append(infos, s.info())
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].TaskID < infos[j].TaskID
	})
	return infos
}

// Sweep reports every slot that is stuck at now and returns them
func (r *Registry) Sweep(ctx context.Context, now time.Time) []domain.SlotInfo {
	var stuck []domain.SlotInfo
	for _, info := range r.Slots() {
		if info.Stuck(now) {
			stuck = append(stuck, info)
		}
	}

	for _, info := range stuck {
		logging.Logger.Error("Task watchdog got triggered",
			"task", info.TaskID,
			"deadline", info.Deadline,
			"since_reset", now.Sub(info.LastReset))
		if r.onFault != nil {
			r.onFault(ctx, info)
		}
	}
	return stuck
}

// Run sweeps on a fixed period until ctx is cancelled
func (r *Registry) Run(ctx context.Context) error {
	logging.Logger.Info("Watchdog started", "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Logger.Info("Watchdog stopped")
			return nil
		case <-ticker.C:
			r.Sweep(ctx, r.now())
		}
	}
}

func (r *Registry) get(id string) (*slot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.slots[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSlotNotFound, id)
	}
	return s, nil
}
