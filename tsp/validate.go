// Package tsp - request validation.
//
// Validation runs in stages before any computation starts, so a failing
// request never leaves partial work behind:
//  1. Options-only sanity (budgets, tolerance, enum ranges).
//  2. Point-set shape and finiteness.
//  3. Brute-force safety (threshold, override, hard cap).
//
// Only sentinel errors from types.go are returned; no logging, no panics.
package tsp

import "github.com/IotA-asce/TSP-visualization/geom"

// validateRequest verifies opts and points and returns n on success.
//
// Complexity: O(n) time, O(1) space.
func validateRequest(points []geom.Vec, opts Options) (int, error) {
	if err := validateOptions(opts); err != nil {
		return 0, err
	}

	var n = len(points)
	if n < 2 {
		return 0, ErrTooFewPoints
	}

	var i int
	for i = 0; i < n; i++ {
		if !points[i].IsFinite() {
			return 0, ErrNonFiniteCoordinate
		}
	}

	if err := validateBruteForceSize(n, opts); err != nil {
		return 0, err
	}

	return n, nil
}

// validateOptions checks internal consistency of Options without touching
// the point set.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	// Negative durations are undefined as budgets.
	if opts.TimeLimit < 0 {
		return ErrBadOptions
	}
	// A negative tolerance would invert the acceptance rule Δ < -Eps.
	if opts.Eps < 0 {
		return ErrBadOptions
	}
	// MaxIterations: any negative value means "uncapped", so no range check.

	switch opts.Strategy {
	case Auto, BruteForce, NearestNeighbor, TwoOptOnly, NearestNeighborTwoOpt:
		// ok
	default:
		return ErrUnknownStrategy
	}

	switch opts.Metric {
	case Euclidean, Manhattan:
		// ok
	default:
		return ErrUnknownMetric
	}

	return nil
}

// validateBruteForceSize enforces the factorial-time guardrail for explicit
// BruteForce requests. Auto never routes above the threshold, so it needs no
// check here.
//
// Complexity: O(1).
func validateBruteForceSize(n int, opts Options) error {
	if opts.Strategy != BruteForce {
		return nil
	}
	if n > BruteForceHardMax {
		// The hard cap holds even with the override flag.
		return ErrBruteForceTooLarge
	}
	if n > BruteForceAutoMax && !opts.AllowUnsafeBruteForce {
		return ErrBruteForceTooLarge
	}

	return nil
}
