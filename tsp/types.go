// Package tsp - shared types and sentinel errors.
//
// All failures surfaced by this package are one of the sentinels below,
// comparable with errors.Is. Budget exhaustion and cancellation are not
// failures: they produce a valid Result with Converged == false.
package tsp

import (
	"errors"
	"time"

	"github.com/IotA-asce/TSP-visualization/geom"
)

// Sentinel errors for request validation and tour evaluation.
var (
	// ErrTooFewPoints is returned when fewer than two points are supplied;
	// no tour exists for n < 2.
	ErrTooFewPoints = errors.New("tsp: need at least two points")

	// ErrNonFiniteCoordinate is returned when any coordinate is NaN or ±Inf.
	ErrNonFiniteCoordinate = errors.New("tsp: non-finite point coordinate")

	// ErrBruteForceTooLarge is returned for an explicit BruteForce request
	// above BruteForceAutoMax without AllowUnsafeBruteForce, or above
	// BruteForceHardMax unconditionally.
	ErrBruteForceTooLarge = errors.New("tsp: instance too large for brute force")

	// ErrUnknownStrategy is returned for a Strategy value outside the
	// declared set.
	ErrUnknownStrategy = errors.New("tsp: unknown strategy")

	// ErrUnknownMetric is returned for a Metric value outside the declared set.
	ErrUnknownMetric = errors.New("tsp: unknown metric")

	// ErrBadOptions is returned when option values are internally
	// inconsistent (negative TimeLimit, negative Eps).
	ErrBadOptions = errors.New("tsp: invalid options")

	// ErrNotPermutation is returned when a tour is not a permutation of
	// 0..n-1 over the supplied point set.
	ErrNotPermutation = errors.New("tsp: tour is not a permutation of the points")
)

// Strategy identifies a solving algorithm. The zero value is Auto.
type Strategy uint8

const (
	// Auto picks BruteForce for n ≤ BruteForceAutoMax and
	// NearestNeighborTwoOpt otherwise. See SelectStrategy.
	Auto Strategy = iota

	// BruteForce enumerates permutations exhaustively; exact optimum.
	BruteForce

	// NearestNeighbor builds a tour greedily from vertex 0.
	NearestNeighbor

	// TwoOptOnly improves the identity order 0,1,…,n-1 with 2-opt.
	TwoOptOnly

	// NearestNeighborTwoOpt chains NearestNeighbor into 2-opt.
	NearestNeighborTwoOpt
)

// String returns the canonical spelling used by CLIs and logs.
func (s Strategy) String() string {
	switch s {
	case Auto:
		return "auto"
	case BruteForce:
		return "bruteforce"
	case NearestNeighbor:
		return "nearest"
	case TwoOptOnly:
		return "two_opt"
	case NearestNeighborTwoOpt:
		return "nearest_two_opt"
	default:
		return "unknown"
	}
}

// ParseStrategy maps the canonical spelling back to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "auto":
		return Auto, nil
	case "bruteforce":
		return BruteForce, nil
	case "nearest":
		return NearestNeighbor, nil
	case "two_opt":
		return TwoOptOnly, nil
	case "nearest_two_opt":
		return NearestNeighborTwoOpt, nil
	default:
		return Auto, ErrUnknownStrategy
	}
}

// Metric selects the distance function shared by every solver.
// The zero value is Euclidean.
type Metric uint8

const (
	// Euclidean is sqrt(dx²+dy²).
	Euclidean Metric = iota

	// Manhattan is |dx|+|dy|.
	Manhattan
)

// Distance returns the metric distance between a and b. Callers are expected
// to hold a validated Metric; out-of-range values fall back to Euclidean so
// the function stays total (validation rejects them before any solve).
func (m Metric) Distance(a, b geom.Vec) float64 {
	if m == Manhattan {
		return a.ManhattanDist(b)
	}

	return a.Dist(b)
}

// String returns the canonical spelling used by CLIs and logs.
func (m Metric) String() string {
	if m == Manhattan {
		return "manhattan"
	}

	return "euclidean"
}

// ParseMetric maps the canonical spelling back to a Metric.
func ParseMetric(s string) (Metric, error) {
	switch s {
	case "euclidean":
		return Euclidean, nil
	case "manhattan":
		return Manhattan, nil
	default:
		return Euclidean, ErrUnknownMetric
	}
}

// Result is the outcome of a Solve call.
type Result struct {
	// Tour is a permutation of 0..n-1 over the input points. Whether the
	// closing edge Tour[n-1]→Tour[0] counts toward Length is decided by the
	// request's Closed flag; the slice itself never repeats the start.
	Tour []int

	// Length is the total tour length under the requested metric,
	// stabilized to 1e-9 to avoid cross-platform FP noise.
	Length float64

	// StrategyUsed is the concrete strategy after Auto resolution.
	StrategyUsed Strategy

	// Iterations counts algorithmic work: permutations evaluated for
	// BruteForce, greedy selections for NearestNeighbor, accepted moves for
	// the 2-opt stage. Chained strategies report the sum of their stages.
	Iterations int

	// Elapsed is the wall-clock duration of the whole solve.
	Elapsed time.Duration

	// Converged reports natural termination. False means a time budget,
	// iteration cap or cancellation stopped the solve early; the Tour is
	// still valid and never worse than any intermediate state.
	Converged bool
}

// Stage tags a Snapshot with the phase that produced it.
type Stage uint8

const (
	// StageConstruction marks a freshly built candidate tour
	// (one per nearest-neighbor start).
	StageConstruction Stage = iota

	// StageImprovement marks a tour after an accepted 2-opt move.
	StageImprovement
)

// Snapshot is an intermediate tour emitted through Options.OnSnapshot so a
// renderer can animate solver progress. Tour is a private copy; the consumer
// may retain it.
type Snapshot struct {
	Stage  Stage
	Tour   []int
	Length float64
}

// MSTEdge is one edge of a minimum spanning tree, by point index.
type MSTEdge struct {
	U, V int
}
