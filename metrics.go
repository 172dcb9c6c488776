package wthread

import (
	"sync/atomic"
)

// MetricsPolicy defines hooks used by a Thread to report lifecycle events.
//
// Implementations must be safe for concurrent use.
// All methods are expected to be lightweight and non-blocking.
type MetricsPolicy interface {

	// IncStarted is called on the new thread once its setup succeeded.
	IncStarted()

	// IncStartFailed is called when Start or StartCustom fails.
	IncStartFailed()

	// IncExited is called when Loop returns, including after a panic.
	IncExited()

	// IncPanicked is called when a panic is recovered from Loop.
	IncPanicked()
}

// AtomicMetrics is a lock-free metrics implementation backed by atomics.
//
// Writes are cheap. Reads are intended for cold-path observation.
type AtomicMetrics struct {
	started     atomic.Uint64
	startFailed atomic.Uint64
	exited      atomic.Uint64
	panicked    atomic.Uint64
}

// Started returns the number of successful starts.
func (m *AtomicMetrics) Started() uint64 { return m.started.Load() }

// StartFailed returns the number of failed starts.
func (m *AtomicMetrics) StartFailed() uint64 { return m.startFailed.Load() }

// Exited returns the number of loop exits.
func (m *AtomicMetrics) Exited() uint64 { return m.exited.Load() }

// Panicked returns the number of recovered loop panics.
func (m *AtomicMetrics) Panicked() uint64 { return m.panicked.Load() }

func (m *AtomicMetrics) IncStarted()     { m.started.Add(1) }
func (m *AtomicMetrics) IncStartFailed() { m.startFailed.Add(1) }
func (m *AtomicMetrics) IncExited()      { m.exited.Add(1) }
func (m *AtomicMetrics) IncPanicked()    { m.panicked.Add(1) }

//------------- NoopMetrics ----------------------------------

// NoopMetrics is a MetricsPolicy implementation that discards
// all metric updates.
type NoopMetrics struct{}

func (m *NoopMetrics) IncStarted()     {}
func (m *NoopMetrics) IncStartFailed() {}
func (m *NoopMetrics) IncExited()      {}
func (m *NoopMetrics) IncPanicked()    {}
