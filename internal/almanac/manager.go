package almanac

import (
	"sync"
	"time"
)

// Config holds configuration for the snapshot manager.
type Config struct {
	Refresh    time.Duration // interval between computed snapshots
	HistoryLen int           // snapshots retained for trend displays
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		Refresh:    time.Minute,
		HistoryLen: 120, // two hours at one snapshot per minute
	}
}

// HistoryEntry is a single retained snapshot.
type HistoryEntry struct {
	Timestamp time.Time
	Snapshot  Snapshot
}

// Status is an immutable view of the manager for the UI: the latest
// snapshot together with the compute-loop bookkeeping around it.
type Status struct {
	Snapshot        Snapshot
	HasData         bool
	LastCompute     time.Time
	LastError       error
	ComputeDuration time.Duration
	NextRefresh     time.Time
}

// Manager caches the latest almanac snapshot behind a lock so that the
// compute loop, the TUI and the report writers can share it.  All reads
// return copies; the library core below this layer is stateless.
type Manager struct {
	mu sync.RWMutex

	current         Snapshot
	hasData         bool
	lastCompute     time.Time
	lastError       error
	computeDuration time.Duration

	history       []HistoryEntry
	maxHistoryLen int

	refresh time.Duration
}

// NewManager creates a manager with the given configuration.
func NewManager(cfg Config) *Manager {
	maxHist := cfg.HistoryLen
	if maxHist <= 0 {
		maxHist = DefaultConfig().HistoryLen
	}
	refresh := cfg.Refresh
	if refresh <= 0 {
		refresh = DefaultConfig().Refresh
	}
	return &Manager{
		maxHistoryLen: maxHist,
		refresh:       refresh,
	}
}

// Update records the outcome of one compute cycle.  On error the previous
// snapshot is kept so the UI can keep showing the last good data.
func (m *Manager) Update(snap Snapshot, d time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastCompute = time.Now()
	m.lastError = err
	m.computeDuration = d
	if err != nil {
		return
	}

	m.current = snap
	m.hasData = true

	m.history = append(m.history, HistoryEntry{
		Timestamp: snap.Time,
		Snapshot:  snap,
	})
	if len(m.history) > m.maxHistoryLen {
		m.history = m.history[1:]
	}
}

// Status returns a consistent view of the current state.
func (m *Manager) Status() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return Status{
		Snapshot:        copySnapshot(m.current),
		HasData:         m.hasData,
		LastCompute:     m.lastCompute,
		LastError:       m.lastError,
		ComputeDuration: m.computeDuration,
		NextRefresh:     m.lastCompute.Add(m.refresh),
	}
}

// Latest returns a copy of the most recent snapshot and whether one has
// been computed yet.
func (m *Manager) Latest() (Snapshot, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return copySnapshot(m.current), m.hasData
}

// History returns the retained snapshots in chronological order.
func (m *Manager) History() []HistoryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]HistoryEntry, len(m.history))
	copy(out, m.history)
	return out
}

// HasData reports whether at least one snapshot has been computed.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.hasData
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refresh
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d > 0 {
		m.refresh = d
	}
}

// copySnapshot deep-copies the body slice so callers cannot alias the
// cached snapshot.
func copySnapshot(s Snapshot) Snapshot {
	out := s
	out.Bodies = make([]BodyPlace, len(s.Bodies))
	copy(out.Bodies, s.Bodies)
	return out
}
