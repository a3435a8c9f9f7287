// Package lifecycle drives a fixture run: it owns the run state that stop
// signals flip and the controller that turns a validated configuration into
// emissions, sleeps, an optional crash, and a final exit code.
//
// The concurrency model is deliberately small:
// - all control flow happens on one goroutine
// - one watcher goroutine moves signal deliveries into the run state
// - the shared state is a single atomic flag plus a closed-once channel
//
// Example usage:
//
//	state := lifecycle.NewRunState()
//	stop := lifecycle.NotifyStop(state, nil)
//	defer stop()
//	code := lifecycle.NewController(cfg, emitter, state, nil).Run()
package lifecycle

import (
	"sync"
	"sync/atomic"
)

// RunState is the single piece of state shared between the control flow and
// the asynchronous stop path. keepRunning starts true and is flipped to
// false exactly once; done closes at the same moment so in-flight sleeps can
// wake early.
type RunState struct {
	keepRunning atomic.Bool
	done        chan struct{}
	stopOnce    sync.Once
}

// NewRunState returns a RunState that reports keep-running.
func NewRunState() *RunState {
	rs := &RunState{
		done: make(chan struct{}),
	}
	rs.keepRunning.Store(true)
	return rs
}

// KeepRunning reports whether no stop has been requested yet.
func (rs *RunState) KeepRunning() bool {
	return rs.keepRunning.Load()
}

// RequestStop records a stop request. Safe from any goroutine, any number of
// times; only the first call has an effect.
func (rs *RunState) RequestStop() {
	rs.stopOnce.Do(func() {
		rs.keepRunning.Store(false)
		close(rs.done)
	})
}

// Done returns a channel that closes once a stop has been requested.
func (rs *RunState) Done() <-chan struct{} {
	return rs.done
}
