// Package runner offloads solve requests to background goroutines so an
// interactive caller (the visualization loop) stays responsive during a long
// brute-force or a budgeted 2-opt run.
//
// The model is message passing, exactly as the engine expects: Submit hands
// the runner a point set and options and returns a Job immediately; the
// result arrives through Job.Wait (or the Job.Done channel) on whatever
// goroutine the caller prefers. Cancellation flows through the engine's
// cooperative checkpoints, so a cancelled job still yields the best tour
// found so far.
//
// The engine itself stays oblivious to goroutines; all lifecycle state
// (pending → running → completed/failed/cancelled) lives here.
package runner
