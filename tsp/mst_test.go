package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/IotA-asce/TSP-visualization/geom"
	"github.com/IotA-asce/TSP-visualization/tsp"
)

// mstWeight sums the metric lengths of the returned edges.
func mstWeight(edges []tsp.MSTEdge, pts []geom.Vec, m tsp.Metric) float64 {
	var sum float64
	for _, e := range edges {
		sum += m.Distance(pts[e.U], pts[e.V])
	}

	return sum
}

func TestMST_Square(t *testing.T) {
	pts := squarePts()

	edges, err := tsp.MinimumSpanningTree(pts, tsp.Euclidean)
	require.NoError(t, err)
	require.Len(t, edges, 3)
	require.InDelta(t, 3.0, mstWeight(edges, pts, tsp.Euclidean), epsTest)
}

func TestMST_Collinear(t *testing.T) {
	pts := collinearPts()

	edges, err := tsp.MinimumSpanningTree(pts, tsp.Euclidean)
	require.NoError(t, err)
	require.Equal(t, []tsp.MSTEdge{{U: 0, V: 1}, {U: 1, V: 2}}, edges)
}

func TestMST_SpansAllVertices(t *testing.T) {
	pts := randomPts(25, seedDet)

	edges, err := tsp.MinimumSpanningTree(pts, tsp.Euclidean)
	require.NoError(t, err)
	require.Len(t, edges, len(pts)-1)

	// Union of endpoints covers every vertex exactly once beyond the root.
	seen := make([]bool, len(pts))
	seen[0] = true
	for _, e := range edges {
		require.True(t, seen[e.U], "parent must already be in the tree")
		require.False(t, seen[e.V])
		seen[e.V] = true
	}
}

func TestMST_LowerBoundsTheClosedTour(t *testing.T) {
	// The MST weight is a classic lower bound on any closed tour.
	pts := randomPts(9, seedDet)

	edges, err := tsp.MinimumSpanningTree(pts, tsp.Euclidean)
	require.NoError(t, err)

	exact := mustSolve(t, pts, bruteOpts(true))
	require.LessOrEqual(t, mstWeight(edges, pts, tsp.Euclidean), exact.Length+epsTest)
}

func TestMST_DegenerateAndInvalid(t *testing.T) {
	edges, err := tsp.MinimumSpanningTree(nil, tsp.Euclidean)
	require.NoError(t, err)
	require.Empty(t, edges)

	edges, err = tsp.MinimumSpanningTree([]geom.Vec{geom.V(1, 1)}, tsp.Manhattan)
	require.NoError(t, err)
	require.Empty(t, edges)

	_, err = tsp.MinimumSpanningTree(collinearPts(), tsp.Metric(9))
	require.ErrorIs(t, err, tsp.ErrUnknownMetric)

	_, err = tsp.MinimumSpanningTree([]geom.Vec{geom.V(0, 0), geom.V(math.Inf(1), 0)}, tsp.Euclidean)
	require.ErrorIs(t, err, tsp.ErrNonFiniteCoordinate)
}
