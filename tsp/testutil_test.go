// Package tsp_test provides lightweight helpers shared across *_test.go
// files in this package: canonical point sets, deterministic instance
// generators and permutation assertions. Helpers stay minimal; anything
// scenario-specific lives in the focused test files.
package tsp_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IotA-asce/TSP-visualization/geom"
	"github.com/IotA-asce/TSP-visualization/tsp"
)

const (
	// epsTest is the tolerance for length comparisons; matches the 1e-9
	// stabilization of the engine.
	epsTest = 1e-9

	// seedDet keeps generated instances identical across runs.
	seedDet = int64(42)
)

// squarePts is the unit square; perimeter 4 when toured closed.
func squarePts() []geom.Vec {
	return []geom.Vec{
		geom.V(0, 0),
		geom.V(0, 1),
		geom.V(1, 1),
		geom.V(1, 0),
	}
}

// collinearPts lies on the x-axis; optimal open path length 2.
func collinearPts() []geom.Vec {
	return []geom.Vec{
		geom.V(0, 0),
		geom.V(1, 0),
		geom.V(2, 0),
	}
}

// randomPts returns n uniform points in [0,1000)² from a fixed seed.
func randomPts(n int, seed int64) []geom.Vec {
	var (
		rng = rand.New(rand.NewSource(seed))
		pts = make([]geom.Vec, n)
	)
	for i := range pts {
		pts[i] = geom.V(rng.Float64()*1000, rng.Float64()*1000)
	}

	return pts
}

// circlePts returns n points on a slightly rippled circle — deterministic
// geometry without degenerate ties.
func circlePts(n int) []geom.Vec {
	var pts = make([]geom.Vec, n)
	for i := range pts {
		th := 2 * math.Pi * float64(i) / float64(n)
		r := 1 + 0.02*float64((i*5)%7)
		pts[i] = geom.V(r*math.Cos(th), r*math.Sin(th))
	}

	return pts
}

// requirePermutation asserts that tour is a permutation of 0..n-1.
func requirePermutation(t *testing.T, tour []int, n int) {
	t.Helper()
	require.NoError(t, tsp.ValidatePermutation(tour, n))
}

// mustSolve runs Solve and fails the test on any error.
func mustSolve(t *testing.T, pts []geom.Vec, opts tsp.Options) tsp.Result {
	t.Helper()
	res, err := tsp.Solve(pts, opts)
	require.NoError(t, err)
	requirePermutation(t, res.Tour, len(pts))

	return res
}
