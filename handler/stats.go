package handler

import (
	"sync/atomic"

	"github.com/philipp01105/levelog/core"
)

// Stats tracks delivery outcomes for handlers that wrap other sinks
type Stats struct {
	// Separate atomic counters per built-in level
	DeliveredTrace uint64
	DeliveredDebug uint64
	DeliveredInfo  uint64
	DeliveredTime  uint64
	DeliveredWarn  uint64
	DeliveredError uint64
	DeliveredOther uint64
	// FailedTotal counts deliveries that panicked or returned an error
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) counter(level core.Level) *uint64 {
	switch level.Value {
	case core.TraceLevel.Value:
		return &s.DeliveredTrace
	case core.DebugLevel.Value:
		return &s.DeliveredDebug
	case core.InfoLevel.Value:
		return &s.DeliveredInfo
	case core.TimeLevel.Value:
		return &s.DeliveredTime
	case core.WarnLevel.Value:
		return &s.DeliveredWarn
	case core.ErrorLevel.Value:
		return &s.DeliveredError
	default:
		return &s.DeliveredOther
	}
}

// IncrementDelivered atomically increments the delivered counter for a level
func (s *Stats) IncrementDelivered(level core.Level) {
	atomic.AddUint64(s.counter(level), 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetDelivered returns the delivered count for a level
func (s *Stats) GetDelivered(level core.Level) uint64 {
	return atomic.LoadUint64(s.counter(level))
}

// GetFailed returns the failed count
func (s *Stats) GetFailed() uint64 {
	return atomic.LoadUint64(&s.FailedTotal)
}

// GetTotalDelivered returns the total delivered across all levels
func (s *Stats) GetTotalDelivered() uint64 {
	return atomic.LoadUint64(&s.DeliveredTrace) +
		atomic.LoadUint64(&s.DeliveredDebug) +
		atomic.LoadUint64(&s.DeliveredInfo) +
		atomic.LoadUint64(&s.DeliveredTime) +
		atomic.LoadUint64(&s.DeliveredWarn) +
		atomic.LoadUint64(&s.DeliveredError) +
		atomic.LoadUint64(&s.DeliveredOther)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.DeliveredTrace, 0)
	atomic.StoreUint64(&s.DeliveredDebug, 0)
	atomic.StoreUint64(&s.DeliveredInfo, 0)
	atomic.StoreUint64(&s.DeliveredTime, 0)
	atomic.StoreUint64(&s.DeliveredWarn, 0)
	atomic.StoreUint64(&s.DeliveredError, 0)
	atomic.StoreUint64(&s.DeliveredOther, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	Delivered map[string]uint64
	Failed    uint64
}

// GetSnapshot returns a snapshot of current statistics keyed by level name
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Delivered: make(map[string]uint64, 7),
		Failed:    s.GetFailed(),
	}
	for _, l := range core.Levels() {
		if l.Equal(core.OffLevel) {
			continue
		}
		snap.Delivered[l.Name] = s.GetDelivered(l)
	}
	snap.Delivered["OTHER"] = atomic.LoadUint64(&s.DeliveredOther)
	return snap
}

// StatsProvider is implemented by handlers that expose delivery statistics
type StatsProvider interface {
	Stats() Snapshot
}
