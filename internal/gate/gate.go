// Package gate coordinates mutating operations with the host Editor's
// asynchronous script compilation. The gate blocks the dispatching
// thread in bounded sleep increments; on timeout it lets the operation
// proceed and records that it did, a documented trade-off rather than a
// hard failure.
package gate

import "time"

// DefaultTimeout is the wait ceiling applied when none is configured.
const DefaultTimeout = 30 * time.Second

// DefaultInterval is the sleep increment of the poll loop.
const DefaultInterval = 100 * time.Millisecond

// CompilationMonitor answers whether a compilation is in flight.
type CompilationMonitor interface {
	IsCompiling() bool
}

// WaitInfo records one gate passage: whether the gate waited at all,
// for how long, and whether it gave up at the ceiling.
type WaitInfo struct {
	Waited   bool
	Duration time.Duration
	TimedOut bool
}

// Gate polls a CompilationMonitor before mutating operations run.
type Gate struct {
	monitor  CompilationMonitor
	timeout  time.Duration
	interval time.Duration
}

// New creates a gate. Non-positive timeout or interval values fall back
// to the defaults.
func New(monitor CompilationMonitor, timeout, interval time.Duration) *Gate {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Gate{monitor: monitor, timeout: timeout, interval: interval}
}

// Wait blocks until compilation finishes or the ceiling elapses. The
// wait is not cancellable mid-poll; only the ceiling ends it early.
func (g *Gate) Wait() WaitInfo {
	if !g.monitor.IsCompiling() {
		return WaitInfo{}
	}
	start := time.Now()
	info := WaitInfo{Waited: true}
	for g.monitor.IsCompiling() {
		if time.Since(start) >= g.timeout {
			info.TimedOut = true
			break
		}
		time.Sleep(g.interval)
	}
	info.Duration = time.Since(start)
	return info
}
