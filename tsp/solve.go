// Package tsp - unified dispatcher.
//
// Solve is the engine's single logical operation: validate the request,
// resolve the strategy, prefetch distances, run the chosen solver chain and
// assemble the Result. SelectStrategy is the pure selector exposed for
// callers that want routing without solving.
//
// Design principles:
//   - Deterministic: no randomness unless explicitly requested.
//   - Strict sentinels: validation errors only from types.go, raised before
//     any computation; budget outcomes are results, not errors.
//   - Request-scoped state: everything built here dies with the call.
package tsp

import (
	"context"
	"time"

	"github.com/IotA-asce/TSP-visualization/geom"
)

// Solve computes a tour over points according to opts.
//
// Errors (validation only, before any work): ErrTooFewPoints,
// ErrNonFiniteCoordinate, ErrBruteForceTooLarge, ErrUnknownStrategy,
// ErrUnknownMetric, ErrBadOptions.
//
// Budget exhaustion and cancellation are reported via Result.Converged ==
// false; a valid tour is always returned.
//
// Complexity: per resolved strategy — O((n-1)!·n) BruteForce, O(n²)
// NearestNeighbor (·n with all-starts), O(passes·n²) for 2-opt stages —
// plus O(n²) for the distance prefetch.
func Solve(points []geom.Vec, opts Options) (Result, error) {
	var started = time.Now()

	n, err := validateRequest(points, opts)
	if err != nil {
		return Result{}, err
	}

	var (
		strat = SelectStrategy(n, opts.Strategy)
		d     = newDistMatrix(points, opts.Metric)
		bud   = newBudget(opts)
		emit  = snapshotEmitter(opts.OnSnapshot)

		route     []int
		iters     int
		converged bool
	)

	switch strat {
	case BruteForce:
		route, iters, converged = solveBruteForce(d, opts.Closed, bud)

	case NearestNeighbor:
		route, iters, converged = solveNearest(d, opts.Closed, opts.NearestAllStarts, bud, emit)

	case TwoOptOnly:
		route, iters, converged = twoOpt(d, identityPerm(n), opts, bud, emit)

	case NearestNeighborTwoOpt:
		var (
			optIters int
			optConv  bool
		)
		route, iters, converged = solveNearest(d, opts.Closed, opts.NearestAllStarts, bud, emit)
		route, optIters, optConv = twoOpt(d, route, opts, bud, emit)
		iters += optIters
		converged = converged && optConv

	default:
		// SelectStrategy only returns concrete strategies; validation has
		// already rejected anything else.
		return Result{}, ErrUnknownStrategy
	}

	return Result{
		Tour:         route,
		Length:       round1e9(d.routeLength(route, opts.Closed)),
		StrategyUsed: strat,
		Iterations:   iters,
		Elapsed:      time.Since(started),
		Converged:    converged,
	}, nil
}

// SelectStrategy resolves a requested strategy to a concrete one. Explicit
// requests pass through unchanged (size guards live in validation); Auto
// picks BruteForce for n ≤ BruteForceAutoMax — small enough for sub-second
// factorial search — and NearestNeighborTwoOpt beyond it.
//
// Pure function of its inputs; runs no solver and has no side effects.
func SelectStrategy(n int, requested Strategy) Strategy {
	if requested != Auto {
		return requested
	}
	if n <= BruteForceAutoMax {
		return BruteForce
	}

	return NearestNeighborTwoOpt
}

// budget bundles the request's soft limits: an optional wall-clock deadline
// and an optional cancellation context. Solvers poll it at well-defined
// points and unwind with their best-so-far tour when it trips.
type budget struct {
	ctx      context.Context
	deadline time.Time
	timed    bool
}

// newBudget captures the deadline at solve start. A nil Ctx behaves like
// context.Background().
func newBudget(opts Options) budget {
	var b = budget{ctx: opts.Ctx}
	if b.ctx == nil {
		b.ctx = context.Background()
	}
	if opts.TimeLimit > 0 {
		b.timed = true
		b.deadline = time.Now().Add(opts.TimeLimit)
	}

	return b
}

// exhausted reports whether the deadline passed or the context was
// cancelled.
func (b budget) exhausted() bool {
	if b.ctx.Err() != nil {
		return true
	}

	return b.timed && time.Now().After(b.deadline)
}

// emitFunc delivers intermediate tours to the caller's snapshot hook.
type emitFunc func(stage Stage, tour []int, length float64)

// snapshotEmitter wraps the optional hook. The nil-hook path is a no-op
// closure so solver code stays branch-free; the live path hands the hook an
// independent copy it may retain.
func snapshotEmitter(hook func(Snapshot)) emitFunc {
	if hook == nil {
		return func(Stage, []int, float64) {}
	}

	return func(stage Stage, tour []int, length float64) {
		hook(Snapshot{Stage: stage, Tour: copyPerm(tour), Length: length})
	}
}
