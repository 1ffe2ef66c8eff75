package dispatcher

import (
	"sort"
	"sync"
	"time"

	"github.com/dshills/keytap/internal/action"
)

// Metrics collects dispatch statistics. It keeps its own mutex so hosts
// may read it from outside the input thread.
type Metrics struct {
	mu sync.RWMutex

	actions map[string]*ActionMetrics

	totalHandled      uint64
	totalSuppressed   uint64
	totalReplacements uint64
	totalAutocorrects uint64
	totalPanics       uint64
	totalDuration     time.Duration
}

// ActionMetrics holds statistics for one action kind.
type ActionMetrics struct {
	Name          string
	HandleCount   uint64
	TotalDuration time.Duration
	MinDuration   time.Duration
	MaxDuration   time.Duration
	LastHandled   time.Time
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{
		actions: make(map[string]*ActionMetrics),
	}
}

// RecordHandled records one fully handled gesture.
func (m *Metrics) RecordHandled(kind action.Kind, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.totalHandled++
	m.totalDuration += duration

	name := kind.String()
	am := m.actions[name]
	if am == nil {
		am = &ActionMetrics{
			Name:        name,
			MinDuration: duration,
			MaxDuration: duration,
		}
		m.actions[name] = am
	}

	am.HandleCount++
	am.TotalDuration += duration
	am.LastHandled = time.Now()

	if duration < am.MinDuration {
		am.MinDuration = duration
	}
	if duration > am.MaxDuration {
		am.MaxDuration = duration
	}
}

// RecordSuppressed records a gesture that resolved to no effect.
func (m *Metrics) RecordSuppressed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalSuppressed++
}

// RecordReplacement records a replayed replacement action.
func (m *Metrics) RecordReplacement() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalReplacements++
}

// RecordAutocorrect records an applied pre-edit autocorrection.
func (m *Metrics) RecordAutocorrect() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalAutocorrects++
}

// RecordPanic records a recovered effect panic.
func (m *Metrics) RecordPanic() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totalPanics++
}

// TotalHandled returns the number of fully handled gestures.
func (m *Metrics) TotalHandled() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalHandled
}

// TotalSuppressed returns the number of gestures without an effect.
func (m *Metrics) TotalSuppressed() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalSuppressed
}

// TotalReplacements returns the number of replayed replacements.
func (m *Metrics) TotalReplacements() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalReplacements
}

// TotalAutocorrects returns the number of applied autocorrections.
func (m *Metrics) TotalAutocorrects() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalAutocorrects
}

// TotalPanics returns the number of recovered effect panics.
func (m *Metrics) TotalPanics() uint64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalPanics
}

// TotalDuration returns the summed duration of handled gestures.
func (m *Metrics) TotalDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.totalDuration
}

// AverageDuration returns the average handling duration.
func (m *Metrics) AverageDuration() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.totalHandled == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.totalHandled)
}

// ActionStats returns a copy of the statistics for one action kind, or
// nil when the kind was never handled.
func (m *Metrics) ActionStats(kind action.Kind) *ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	am := m.actions[kind.String()]
	if am == nil {
		return nil
	}
	stats := *am
	return &stats
}

// TopActions returns the n most handled action kinds.
func (m *Metrics) TopActions(n int) []*ActionMetrics {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make([]*ActionMetrics, 0, len(m.actions))
	for _, am := range m.actions {
		s := *am
		stats = append(stats, &s)
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].HandleCount > stats[j].HandleCount
	})

	if n > len(stats) {
		n = len(stats)
	}
	return stats[:n]
}

// Reset clears all statistics.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.actions = make(map[string]*ActionMetrics)
	m.totalHandled = 0
	m.totalSuppressed = 0
	m.totalReplacements = 0
	m.totalAutocorrects = 0
	m.totalPanics = 0
	m.totalDuration = 0
}

// Snapshot is a point-in-time view of the collected statistics.
type Snapshot struct {
	TotalHandled      uint64
	TotalSuppressed   uint64
	TotalReplacements uint64
	TotalAutocorrects uint64
	TotalPanics       uint64
	TotalDuration     time.Duration
	AverageDuration   time.Duration
	ActionKinds       int
	Timestamp         time.Time
}

// Snapshot returns a consistent copy of the current statistics.
func (m *Metrics) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := Snapshot{
		TotalHandled:      m.totalHandled,
		TotalSuppressed:   m.totalSuppressed,
		TotalReplacements: m.totalReplacements,
		TotalAutocorrects: m.totalAutocorrects,
		TotalPanics:       m.totalPanics,
		TotalDuration:     m.totalDuration,
		ActionKinds:       len(m.actions),
		Timestamp:         time.Now(),
	}
	if m.totalHandled > 0 {
		snap.AverageDuration = m.totalDuration / time.Duration(m.totalHandled)
	}
	return snap
}

// AverageActionDuration returns the average duration for this action
// kind.
func (am *ActionMetrics) AverageActionDuration() time.Duration {
	if am.HandleCount == 0 {
		return 0
	}
	return am.TotalDuration / time.Duration(am.HandleCount)
}
