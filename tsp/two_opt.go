// Package tsp - 2-opt local-improvement pass.
//
// A 2-opt move removes two non-adjacent edges (i-1,i) and (k,k+1) and
// reverses the segment [i..k], replacing the removed edges with (i-1,k) and
// (i,k+1). A move is accepted only when it shortens the tour by strictly
// more than Eps, so the improver can never worsen its input and zero-gain
// swaps cannot oscillate.
//
// Pass policies:
//   - first-improvement (default): apply each improving move as soon as it
//     is found and continue the sweep from the current position — bounded
//     per-move latency, matching the visualizer's animation cadence;
//   - best-improvement (Options.BestImprovement): scan the full pass, then
//     apply only the single best move found.
//
// Passes repeat until a full pass accepts no move (local optimum), the
// iteration cap is hit, the deadline expires, or the context is cancelled.
// All non-convergent exits return the best tour reached so far.
//
// Closed tours keep position 0 fixed (rotations are equivalent) and include
// the wrap edge (n-1 → 0) in candidate pairs; open paths never touch a wrap
// edge. Tours shorter than four vertices admit no non-adjacent edge pair and
// are returned unchanged.
package tsp

import (
	"time"

	"github.com/IotA-asce/TSP-visualization/geom"
)

// ImproveTwoOpt runs the 2-opt pass over an existing tour — typically one a
// caller produced outside the engine, such as a human-drawn path in the
// visualizer. The returned Result.Tour is never longer than the input under
// the requested metric and Closed flag.
//
// Errors: ErrTooFewPoints, ErrNonFiniteCoordinate, ErrNotPermutation, plus
// option sentinels from validateOptions. Strategy is ignored;
// Result.StrategyUsed is always TwoOptOnly.
func ImproveTwoOpt(points []geom.Vec, tour []int, opts Options) (Result, error) {
	var started = time.Now()

	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	var n = len(points)
	if n < 2 {
		return Result{}, ErrTooFewPoints
	}
	for i := 0; i < n; i++ {
		if !points[i].IsFinite() {
			return Result{}, ErrNonFiniteCoordinate
		}
	}
	if err := ValidatePermutation(tour, n); err != nil {
		return Result{}, err
	}

	var (
		d    = newDistMatrix(points, opts.Metric)
		bud  = newBudget(opts)
		emit = snapshotEmitter(opts.OnSnapshot)
	)
	route, iters, converged := twoOpt(d, tour, opts, bud, emit)

	return Result{
		Tour:         route,
		Length:       round1e9(d.routeLength(route, opts.Closed)),
		StrategyUsed: TwoOptOnly,
		Iterations:   iters,
		Elapsed:      time.Since(started),
		Converged:    converged,
	}, nil
}

// twoOpt improves init under the options' policy knobs. Returns the improved
// route (an independent copy), the number of accepted moves, and whether a
// local optimum was reached (false ⇒ cap, deadline or cancellation).
//
// Every accepted move is emitted as a StageImprovement snapshot.
//
// Contract: init is a valid permutation of 0..d.n-1 (solver-internal input).
//
// Complexity: O(passes·n²) candidate checks; each accepted move costs
// O(segment) for the reversal. O(n) extra space.
func twoOpt(d *distMatrix, init []int, opts Options, bud budget, emit emitFunc) (route []int, iters int, converged bool) {
	var (
		n   = len(init)
		cur = copyPerm(init)
	)
	// No valid non-adjacent edge pair exists below four vertices.
	if n < 4 {
		return cur, 0, true
	}
	// A zero cap is honored literally: no pass runs, input comes back
	// untouched and unconverged.
	if opts.MaxIterations == 0 {
		return cur, 0, false
	}

	var (
		maxIters = opts.MaxIterations
		eps      = opts.Eps
		curLen   = d.routeLength(cur, opts.Closed)

		// kHi bounds the second cut: closed tours may wrap through the
		// (n-1 → 0) edge, open paths stop at the last real edge.
		kHi = n - 2

		// order is the scan order of first-cut indices, shuffled per pass
		// when diversification is requested.
		order = make([]int, n-2)

		step int // candidate counter throttling budget polls
	)
	if eps < 0 {
		// validateOptions already rejects this; keep Δ < -eps well-posed.
		eps = 0
	}
	if opts.Closed {
		kHi = n - 1
	}
	for i := range order {
		order[i] = i + 1
	}
	rng := rngFromSeed(opts.Seed) // consumed only when shuffling

	// poll checks the soft budget every 2048 candidate evaluations; cheap
	// enough to leave the scan throughput intact.
	poll := func() bool {
		step++
		if step&2047 != 0 {
			return false
		}

		return bud.exhausted()
	}

	var (
		improved       bool
		a, b, c, e     int
		delta, bestD   float64
		i, k, bi, bk   int
		oi             int
		bestImprove    = opts.BestImprovement
		shuffleEnabled = opts.ShuffleNeighborhood
	)
	for {
		improved = false
		if shuffleEnabled {
			shuffleIntsInPlace(order, rng)
		}
		bestD, bi, bk = 0, -1, -1

		for oi = 0; oi < len(order); oi++ {
			i = order[oi]
			for k = i + 1; k <= kHi; k++ {
				if poll() {
					return cur, iters, false
				}

				a = cur[i-1]
				b = cur[i]
				c = cur[k]
				if k == n-1 {
					e = cur[0] // wrap edge; reachable only when closed
				} else {
					e = cur[k+1]
				}

				delta = (d.at(a, c) + d.at(b, e)) - (d.at(a, b) + d.at(c, e))
				if delta >= -eps {
					continue
				}

				if bestImprove {
					if delta < bestD {
						bestD, bi, bk = delta, i, k
					}

					continue
				}

				// First-improvement: apply in place and keep sweeping.
				reverseSegment(cur, i, k)
				curLen += delta
				iters++
				improved = true
				emit(StageImprovement, cur, round1e9(curLen))

				if maxIters > 0 && iters >= maxIters {
					return cur, iters, false
				}
			}
		}

		if bestImprove && bi >= 0 {
			reverseSegment(cur, bi, bk)
			curLen += bestD
			iters++
			improved = true
			emit(StageImprovement, cur, round1e9(curLen))

			if maxIters > 0 && iters >= maxIters {
				return cur, iters, false
			}
		}

		if !improved {
			// Local optimum under the 2-opt neighborhood.
			return cur, iters, true
		}
		if bud.exhausted() {
			// Pass boundary: the other well-defined cancellation point.
			return cur, iters, false
		}
	}
}
