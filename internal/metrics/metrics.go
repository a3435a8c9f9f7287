// Package metrics provides run-event accounting for procpuppet.
//
// The fixture's observable contract lives entirely in its exit status, its
// termination signal, and the bytes on its two streams. The counters here
// exist so tests can assert the internal event sequence (how many emits
// happened, whether a sleep was cut short) without scraping stream output.
// The recorder never writes to stdout or stderr.
//
// Example usage:
//
//	mon := metrics.NewMonitor()
//	mon.RecordEmit()
//	snap := mon.Snapshot()
package metrics

import "sync"

// Monitor accumulates run events. All methods are safe for concurrent use
// and on a nil receiver, so callers that do not care about accounting can
// simply pass nil.
type Monitor struct {
	mu          sync.Mutex
	emits       int64
	earlyWakes  int64
	stopSignals map[string]int64
}

// Snapshot is a point-in-time copy of the counters.
type Snapshot struct {
	// Emits counts emissions; one emission covers both streams.
	Emits int64
	// EarlyWakes counts sleeps that ended before their full duration
	// because a stop was requested.
	EarlyWakes int64
	// StopSignals counts deliveries per signal name.
	StopSignals map[string]int64
}

// NewMonitor creates an empty run-event monitor.
func NewMonitor() *Monitor {
	return &Monitor{
		stopSignals: make(map[string]int64),
	}
}

// RecordEmit counts one emission.
func (m *Monitor) RecordEmit() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.emits++
	m.mu.Unlock()
}

// RecordEarlyWake counts one sleep cut short by a stop request.
func (m *Monitor) RecordEarlyWake() {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.earlyWakes++
	m.mu.Unlock()
}

// RecordStopSignal counts one delivery of the named stop signal.
func (m *Monitor) RecordStopSignal(name string) {
	if m == nil {
		return
	}
	m.mu.Lock()
	m.stopSignals[name]++
	m.mu.Unlock()
}

// Snapshot returns a copy of the counters. The signal map is copied so the
// caller can hold the snapshot across further recording.
func (m *Monitor) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{StopSignals: map[string]int64{}}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	signals := make(map[string]int64, len(m.stopSignals))
	for name, count := range m.stopSignals {
		signals[name] = count
	}

	return Snapshot{
		Emits:       m.emits,
		EarlyWakes:  m.earlyWakes,
		StopSignals: signals,
	}
}

// Reset clears all counters.
func (m *Monitor) Reset() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.emits = 0
	m.earlyWakes = 0
	m.stopSignals = make(map[string]int64)
}
