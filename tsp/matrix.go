// Package tsp - pairwise distance prefetch.
//
// Every solver reads distances from a linearized n×n buffer built once per
// request. The flat layout keeps hot loops free of interface indirection and
// bounds-check noise; the metric is applied exactly once per pair, so all
// strategies score tours against identical numbers.
package tsp

import "github.com/IotA-asce/TSP-visualization/geom"

// distMatrix is a row-major n×n matrix of metric distances.
// Symmetric by construction: w[i*n+j] == w[j*n+i], zero diagonal.
type distMatrix struct {
	n int
	w []float64
}

// newDistMatrix computes all pairwise distances under metric.
//
// Contract: points are validated (finite) upstream.
//
// Complexity: O(n²) time and space; each unordered pair is measured once.
func newDistMatrix(points []geom.Vec, metric Metric) *distMatrix {
	var (
		n = len(points)
		d = &distMatrix{n: n, w: make([]float64, n*n)}

		i, j int
		dist float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			dist = metric.Distance(points[i], points[j])
			d.w[i*n+j] = dist
			d.w[j*n+i] = dist
		}
	}

	return d
}

// at returns the distance between point indices i and j. Hot path; no checks.
func (d *distMatrix) at(i, j int) float64 { return d.w[i*d.n+j] }

// routeLength sums the edges of route, plus the wrap-around edge iff closed.
// Routes shorter than two indices have length 0.
//
// Complexity: O(n).
func (d *distMatrix) routeLength(route []int, closed bool) float64 {
	if len(route) < 2 {
		return 0
	}

	var (
		sum float64
		i   int
		L   = len(route) - 1
	)
	for i = 0; i < L; i++ {
		sum += d.at(route[i], route[i+1])
	}
	if closed {
		sum += d.at(route[L], route[0])
	}

	return sum
}
