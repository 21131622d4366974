// Package tsp is the tour-solving engine: given a finite set of 2-D points
// it computes a visiting order (a tour) that approximately minimizes total
// travel distance.
//
// Strategies:
//
//   - BruteForce — exact lexicographic enumeration; optimal, factorial-time,
//     guarded by a safety threshold (BruteForceAutoMax) and an absolute
//     hard cap (BruteForceHardMax).
//   - NearestNeighbor — greedy O(n²) construction; fast, deterministic,
//     never optimal in general. Optionally restarted from every vertex
//     (Options.NearestAllStarts).
//   - TwoOptOnly — 2-opt local search from the identity order.
//   - NearestNeighborTwoOpt — construction followed by 2-opt improvement.
//   - Auto — BruteForce for n ≤ BruteForceAutoMax, else NearestNeighborTwoOpt.
//
// Properties:
//
//   - Deterministic by default: identical inputs and options yield identical
//     results; randomness exists only behind the opt-in
//     Options.ShuffleNeighborhood + Seed knobs.
//   - Budget-aware: wall-clock limits, iteration caps and context
//     cancellation are soft outcomes — the best tour found so far is
//     returned with Result.Converged == false, never an error.
//   - Stateless: no shared mutable state between calls; concurrent
//     independent solves need no locking.
//
// The engine performs no I/O and never logs; malformed requests fail fast
// with sentinel errors (ErrTooFewPoints, ErrNonFiniteCoordinate, …) before
// any computation starts.
//
// TourLength is exposed separately so callers (e.g. a scoring overlay
// comparing a human-drawn path against the solver) can evaluate arbitrary
// permutations under the same metric.
package tsp
