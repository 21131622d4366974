// Package tsp - solver configuration.
//
// Options is a plain struct (no hidden state); DefaultOptions returns the
// deterministic baseline every knob deviates from. The engine never mutates
// an Options value.
package tsp

import (
	"context"
	"time"
)

const (
	// BruteForceAutoMax is the safety threshold: Auto routes to BruteForce
	// only for n at or below it, and explicit BruteForce requests above it
	// require AllowUnsafeBruteForce. (n-1)! permutations stay sub-second in
	// this range on commodity hardware.
	BruteForceAutoMax = 10

	// BruteForceHardMax is the absolute ceiling for BruteForce, override or
	// not. Beyond it factorial blow-up makes even an opted-in run unbounded
	// in practice.
	BruteForceHardMax = 12

	// DefaultEps is the strict-improvement tolerance for 2-opt: a move is
	// accepted only when it shortens the tour by more than DefaultEps, so
	// zero-gain swaps can never oscillate.
	DefaultEps = 1e-12

	// Uncapped disables the iteration cap (any negative value does).
	Uncapped = -1
)

// Options configures a single Solve request.
type Options struct {
	// Strategy requests a concrete algorithm or Auto (the default).
	Strategy Strategy

	// Metric selects the distance function (default Euclidean).
	Metric Metric

	// Closed treats the tour as a cycle: the edge from the last point back
	// to the first counts toward the length. Default is an open path.
	Closed bool

	// TimeLimit is a soft wall-clock budget; 0 means none. On expiry the
	// engine returns the best tour found so far with Converged == false.
	// The deadline is checked cooperatively: between nearest-neighbor
	// starts, between brute-force top-level branches, and periodically
	// inside 2-opt scans.
	TimeLimit time.Duration

	// MaxIterations caps accepted 2-opt moves. Negative (Uncapped) means
	// no cap; 0 is honored literally — the improver returns its input
	// untouched with Converged == false and zero iterations.
	// Construction and exact stages are bounded by TimeLimit/Ctx instead.
	MaxIterations int

	// Eps is the strict-improvement tolerance (default DefaultEps).
	// Negative values fail validation.
	Eps float64

	// BestImprovement switches 2-opt from the default first-improvement
	// sweep to applying the single best move found in each full pass.
	BestImprovement bool

	// NearestAllStarts restarts nearest-neighbor from every vertex and
	// keeps the shortest result. Still deterministic; the time budget is
	// checked between starts.
	NearestAllStarts bool

	// AllowUnsafeBruteForce permits explicit BruteForce requests above
	// BruteForceAutoMax, up to the hard cap BruteForceHardMax.
	AllowUnsafeBruteForce bool

	// Seed drives the optional RNG. It is consumed only when
	// ShuffleNeighborhood is set; the default path uses no randomness.
	// Seed == 0 selects a fixed default stream, keeping runs reproducible.
	Seed int64

	// ShuffleNeighborhood randomizes the 2-opt candidate scan order each
	// pass (diversification for first-improvement). Results remain
	// reproducible for a given Seed.
	ShuffleNeighborhood bool

	// Ctx allows cooperative cancellation; on cancellation the best tour
	// found so far is returned with Converged == false. Nil behaves like
	// context.Background().
	Ctx context.Context

	// OnSnapshot, when non-nil, receives intermediate tours (construction
	// candidates and accepted 2-opt moves) so a renderer can animate
	// progress. The hook runs synchronously on the solving goroutine; a nil
	// hook leaves the hot path untouched.
	OnSnapshot func(Snapshot)
}

// DefaultOptions returns the deterministic baseline:
// Auto strategy, Euclidean metric, open tour, no budgets, no randomness.
func DefaultOptions() Options {
	return Options{
		Strategy:      Auto,
		Metric:        Euclidean,
		Closed:        false,
		TimeLimit:     0,
		MaxIterations: Uncapped,
		Eps:           DefaultEps,
		Ctx:           context.Background(),
	}
}
