// Package tsp - minimum spanning tree overlay.
//
// The visualizer draws the MST under the tour as a lower-bound hint; the
// engine computes it with Prim's algorithm on the complete metric graph.
package tsp

import (
	"math"

	"github.com/IotA-asce/TSP-visualization/geom"
)

// MinimumSpanningTree returns the MST edges of the complete graph over
// points under metric, in the order vertices join the tree (rooted at 0).
// Fewer than two points yield an empty edge list.
//
// Errors: ErrUnknownMetric, ErrNonFiniteCoordinate.
//
// Complexity: O(n²) time with Prim's dense scan, O(n) extra space.
func MinimumSpanningTree(points []geom.Vec, metric Metric) ([]MSTEdge, error) {
	switch metric {
	case Euclidean, Manhattan:
		// ok
	default:
		return nil, ErrUnknownMetric
	}

	var n = len(points)
	for i := 0; i < n; i++ {
		if !points[i].IsFinite() {
			return nil, ErrNonFiniteCoordinate
		}
	}
	if n < 2 {
		return []MSTEdge{}, nil
	}

	var (
		d = newDistMatrix(points, metric)

		inTree = make([]bool, n)
		best   = make([]float64, n)
		parent = make([]int, n)
		edges  = make([]MSTEdge, 0, n-1)

		it, u, v int
		minW     float64
	)
	for v = 0; v < n; v++ {
		best[v] = math.Inf(1)
		parent[v] = -1
	}
	best[0] = 0

	for it = 0; it < n; it++ {
		// Cheapest vertex not yet in the tree; lowest index wins ties.
		u = -1
		minW = math.Inf(1)
		for v = 0; v < n; v++ {
			if !inTree[v] && best[v] < minW {
				minW = best[v]
				u = v
			}
		}
		inTree[u] = true
		if parent[u] >= 0 {
			edges = append(edges, MSTEdge{U: parent[u], V: u})
		}

		for v = 0; v < n; v++ {
			if !inTree[v] && d.at(u, v) < best[v] {
				best[v] = d.at(u, v)
				parent[v] = u
			}
		}
	}

	return edges, nil
}
