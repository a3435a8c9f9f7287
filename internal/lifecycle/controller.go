package lifecycle

import (
	"time"

	"github.com/bebsworthy/procpuppet/internal/config"
	"github.com/bebsworthy/procpuppet/internal/crash"
	"github.com/bebsworthy/procpuppet/internal/metrics"
	"github.com/bebsworthy/procpuppet/internal/output"
)

// Controller walks one run through its states: emit, optionally crash,
// sleep, and finally report the exit code for main to pass on. Exactly one
// of the two modes is entered per invocation: one-shot (emit, optional
// delay, exit) or loop (emit and sleep until a stop is requested).
type Controller struct {
	cfg     *config.Config
	emitter *output.Emitter
	state   *RunState
	monitor *metrics.Monitor

	// abort must never return. Swapped out only by tests.
	abort func()
}

// NewController wires a controller for one run. The monitor may be nil.
func NewController(cfg *config.Config, emitter *output.Emitter, state *RunState, monitor *metrics.Monitor) *Controller {
	return &Controller{
		cfg:     cfg,
		emitter: emitter,
		state:   state,
		monitor: monitor,
		abort:   crash.Abort,
	}
}

// Run drives the configured behavior to completion and returns the process
// exit code. When the configuration asks for a crash, Run never returns.
func (c *Controller) Run() int {
	if c.cfg.Looping() {
		return c.runLoop()
	}
	return c.runOnce()
}

// runOnce emits a single time, suspends for the configured exit delay and
// returns the configured code. A stop request cuts the delay short but does
// not change the exit code.
func (c *Controller) runOnce() int {
	c.emit()
	c.sleep(c.cfg.ExitDelay)
	return c.cfg.ExitCode
}

// runLoop emits and sleeps until a stop has been requested, checking the
// flag only at iteration boundaries. Even a stop that arrived before the
// loop started still gets one full emit.
func (c *Controller) runLoop() int {
	for {
		c.emit()
		c.sleep(c.cfg.LoopInterval)
		if !c.state.KeepRunning() {
			return c.cfg.ExitCode
		}
	}
}

// emit performs one emission and, when configured, the crash. Neither is
// interruptible by a stop request; the crash follows the first emit in both
// modes.
func (c *Controller) emit() {
	c.emitter.Emit(c.cfg.StdoutMessage, c.cfg.StderrMessage)
	c.monitor.RecordEmit()
	if c.cfg.CrashAfterEmit {
		c.abort()
	}
}

// sleep suspends for d. A stop request wakes it early; that and the
// duration elapsing are the only ways out.
func (c *Controller) sleep(d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-c.state.Done():
		c.monitor.RecordEarlyWake()
	}
}
