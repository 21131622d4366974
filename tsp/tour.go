// Package tsp - tour utilities shared by all solvers.
//
// A tour is a permutation of 0..n-1 over the input point slice; whether the
// closing edge counts is carried separately by the request's Closed flag.
// Helpers here operate purely on index sequences and points, never on solver
// state.
package tsp

import (
	"math"

	"github.com/IotA-asce/TSP-visualization/geom"
)

// roundScale controls final length stabilization precision (1e-9).
// Tiny FP drifts across platforms/opt levels must not leak into results.
const roundScale = 1e9

// round1e9 returns x rounded to 1e-9 absolute precision.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// TourLength evaluates an arbitrary permutation under metric: the sum of
// metric distances over consecutive pairs, plus the wrap-around edge iff
// closed. It is the single source of truth for "how good" a tour is; every
// solver's Result.Length agrees with it.
//
// Contract:
//   - tours shorter than two indices have length 0 (no validation applied);
//   - otherwise tour must be a permutation of 0..len(points)-1
//     (ErrNotPermutation) and metric must be a declared value
//     (ErrUnknownMetric).
//
// The result is stabilized to 1e-9.
//
// Complexity: O(n) time, O(n) space for the permutation check.
func TourLength(tour []int, points []geom.Vec, metric Metric, closed bool) (float64, error) {
	switch metric {
	case Euclidean, Manhattan:
		// ok
	default:
		return 0, ErrUnknownMetric
	}
	if len(tour) < 2 {
		return 0, nil
	}
	if err := ValidatePermutation(tour, len(points)); err != nil {
		return 0, err
	}

	var (
		sum float64
		i   int
		L   = len(tour) - 1
	)
	for i = 0; i < L; i++ {
		sum += metric.Distance(points[tour[i]], points[tour[i+1]])
	}
	if closed {
		sum += metric.Distance(points[tour[L]], points[tour[0]])
	}

	return round1e9(sum), nil
}

// ValidatePermutation checks that perm is a permutation of {0..n-1} of
// length n: no out-of-range indices, no duplicates, no omissions.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return ErrNotPermutation
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return ErrNotPermutation
		}
		if seen[v] {
			return ErrNotPermutation
		}
		seen[v] = true
	}

	return nil
}

// identityPerm returns 0,1,…,n-1.
func identityPerm(n int) []int {
	var (
		p = make([]int, n)
		i int
	)
	for i = 0; i < n; i++ {
		p[i] = i
	}

	return p
}

// copyPerm returns an independent copy of p.
func copyPerm(p []int) []int {
	var out = make([]int, len(p))
	copy(out, p)

	return out
}

// reverseSegment reverses t[i..k] in place. The 2-opt core move.
//
// Complexity: O(k-i).
func reverseSegment(t []int, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}
