package tsp_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/IotA-asce/TSP-visualization/geom"
	"github.com/IotA-asce/TSP-visualization/tsp"
)

func TestSelectStrategy(t *testing.T) {
	// Explicit requests pass through at any size.
	require.Equal(t, tsp.NearestNeighbor, tsp.SelectStrategy(3, tsp.NearestNeighbor))
	require.Equal(t, tsp.BruteForce, tsp.SelectStrategy(100, tsp.BruteForce))

	// Auto: brute force up to the threshold, heuristic chain beyond.
	require.Equal(t, tsp.BruteForce, tsp.SelectStrategy(2, tsp.Auto))
	require.Equal(t, tsp.BruteForce, tsp.SelectStrategy(tsp.BruteForceAutoMax, tsp.Auto))
	require.Equal(t, tsp.NearestNeighborTwoOpt, tsp.SelectStrategy(tsp.BruteForceAutoMax+1, tsp.Auto))
}

func TestSolve_SquareClosed_AllStrategiesReachPerimeter(t *testing.T) {
	pts := squarePts()

	for _, strat := range []tsp.Strategy{tsp.BruteForce, tsp.NearestNeighborTwoOpt} {
		opts := tsp.DefaultOptions()
		opts.Strategy = strat
		opts.Closed = true

		res := mustSolve(t, pts, opts)
		require.InDelta(t, 4.0, res.Length, epsTest, "strategy %s", strat)
		require.Equal(t, strat, res.StrategyUsed)
		require.True(t, res.Converged)
	}
}

func TestSolve_CollinearOpen_AutoIsExact(t *testing.T) {
	opts := tsp.DefaultOptions() // open path, Auto ⇒ BruteForce at n=3

	res := mustSolve(t, collinearPts(), opts)
	require.Equal(t, tsp.BruteForce, res.StrategyUsed)
	require.InDelta(t, 2.0, res.Length, epsTest)
	// Coordinate order (or its reversal) is the unique optimum; the
	// lexicographic tie-break pins the forward direction.
	require.Equal(t, []int{0, 1, 2}, res.Tour)
}

func TestSolve_TwoPoints(t *testing.T) {
	pts := []geom.Vec{geom.V(0, 0), geom.V(3, 4)}

	for _, strat := range []tsp.Strategy{
		tsp.Auto, tsp.BruteForce, tsp.NearestNeighbor, tsp.TwoOptOnly, tsp.NearestNeighborTwoOpt,
	} {
		opts := tsp.DefaultOptions()
		opts.Strategy = strat

		res := mustSolve(t, pts, opts)
		require.InDelta(t, 5.0, res.Length, epsTest, "open, strategy %s", strat)

		opts.Closed = true
		res = mustSolve(t, pts, opts)
		require.InDelta(t, 10.0, res.Length, epsTest, "closed, strategy %s", strat)
	}
}

func TestSolve_ValidationErrors(t *testing.T) {
	opts := tsp.DefaultOptions()

	_, err := tsp.Solve(nil, opts)
	require.ErrorIs(t, err, tsp.ErrTooFewPoints)

	_, err = tsp.Solve([]geom.Vec{geom.V(1, 1)}, opts)
	require.ErrorIs(t, err, tsp.ErrTooFewPoints)

	bad := squarePts()
	bad[2] = geom.V(1, math.NaN())
	_, err = tsp.Solve(bad, opts)
	require.ErrorIs(t, err, tsp.ErrNonFiniteCoordinate)

	opts.TimeLimit = -time.Second
	_, err = tsp.Solve(squarePts(), opts)
	require.ErrorIs(t, err, tsp.ErrBadOptions)

	opts = tsp.DefaultOptions()
	opts.Eps = -1e-9
	_, err = tsp.Solve(squarePts(), opts)
	require.ErrorIs(t, err, tsp.ErrBadOptions)

	opts = tsp.DefaultOptions()
	opts.Strategy = tsp.Strategy(250)
	_, err = tsp.Solve(squarePts(), opts)
	require.ErrorIs(t, err, tsp.ErrUnknownStrategy)

	opts = tsp.DefaultOptions()
	opts.Metric = tsp.Metric(250)
	_, err = tsp.Solve(squarePts(), opts)
	require.ErrorIs(t, err, tsp.ErrUnknownMetric)
}

func TestSolve_Determinism(t *testing.T) {
	pts := randomPts(30, seedDet)
	opts := tsp.DefaultOptions()
	opts.Strategy = tsp.NearestNeighborTwoOpt
	opts.Closed = true

	first := mustSolve(t, pts, opts)
	second := mustSolve(t, pts, opts)

	require.Equal(t, first.Tour, second.Tour)
	require.Equal(t, first.Length, second.Length)
	require.Equal(t, first.Iterations, second.Iterations)
	require.Equal(t, first.Converged, second.Converged)
}

func TestSolve_StrategyOrdering(t *testing.T) {
	// On the same instance: BF ≤ NN+2opt ≤ NN, and BF ≤ NN.
	pts := randomPts(8, seedDet)

	solveWith := func(strat tsp.Strategy) tsp.Result {
		opts := tsp.DefaultOptions()
		opts.Strategy = strat
		opts.Closed = true

		return mustSolve(t, pts, opts)
	}

	bf := solveWith(tsp.BruteForce)
	nn := solveWith(tsp.NearestNeighbor)
	chained := solveWith(tsp.NearestNeighborTwoOpt)

	require.LessOrEqual(t, bf.Length, nn.Length+epsTest)
	require.LessOrEqual(t, bf.Length, chained.Length+epsTest)
	require.LessOrEqual(t, chained.Length, nn.Length+epsTest)
}

func TestSolve_ManhattanMetric(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Metric = tsp.Manhattan
	opts.Closed = true

	// Unit square: every edge of the optimal cycle has L1 length 1 as well.
	res := mustSolve(t, squarePts(), opts)
	require.InDelta(t, 4.0, res.Length, epsTest)

	// Result.Length always agrees with the companion evaluator.
	l, err := tsp.TourLength(res.Tour, squarePts(), tsp.Manhattan, true)
	require.NoError(t, err)
	require.InDelta(t, res.Length, l, epsTest)
}

func TestSolve_CancelledContextReturnsValidTour(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	pts := randomPts(60, seedDet)
	opts := tsp.DefaultOptions()
	opts.Strategy = tsp.NearestNeighborTwoOpt
	opts.Ctx = ctx

	res := mustSolve(t, pts, opts)
	require.False(t, res.Converged)

	// Brute force also unwinds between branches.
	opts = tsp.DefaultOptions()
	opts.Strategy = tsp.BruteForce
	opts.Ctx = ctx
	res = mustSolve(t, randomPts(9, seedDet), opts)
	require.False(t, res.Converged)
}

func TestSolve_Snapshots(t *testing.T) {
	pts := randomPts(40, seedDet)

	var snaps []tsp.Snapshot
	opts := tsp.DefaultOptions()
	opts.Strategy = tsp.NearestNeighborTwoOpt
	opts.Closed = true
	opts.OnSnapshot = func(s tsp.Snapshot) { snaps = append(snaps, s) }

	res := mustSolve(t, pts, opts)

	require.NotEmpty(t, snaps)
	require.Equal(t, tsp.StageConstruction, snaps[0].Stage)

	// Improvement snapshots shrink monotonically and end at the result.
	var prev = -1.0
	for _, s := range snaps {
		requirePermutation(t, s.Tour, len(pts))
		if s.Stage != tsp.StageImprovement {
			continue
		}
		if prev >= 0 {
			require.Less(t, s.Length, prev+epsTest)
		}
		prev = s.Length
	}
	if prev >= 0 {
		// Running incremental sums may drift from the final recomputation
		// by accumulated FP error; compare loosely.
		require.InDelta(t, res.Length, prev, 1e-6)
	}
}
