// Package tsp - nearest-neighbor construction heuristic.
//
// From a start vertex, repeatedly append the closest unvisited vertex; ties
// break toward the lowest index, so construction is fully deterministic.
// Never optimal in general, but a valid O(n²) starting point for 2-opt.
//
// The all-starts variant restores the visualizer's restart loop: build one
// tour per start vertex and keep the shortest. The budget is polled between
// starts only — a single construction is cheap enough to run to completion.
package tsp

// solveNearest builds a greedy tour. With allStarts it tries every start
// vertex and keeps the strictly best route (earlier start wins ties);
// otherwise it starts at vertex 0. Returns the route, the number of greedy
// selections performed, and whether all requested starts were examined.
//
// Each completed construction is emitted as a StageConstruction snapshot.
//
// Contract: d.n ≥ 2.
//
// Complexity: O(n²) per start; O(n) space.
func solveNearest(d *distMatrix, closed bool, allStarts bool, bud budget, emit emitFunc) (route []int, iters int, converged bool) {
	var (
		n      = d.n
		starts = 1

		best    []int
		bestLen float64

		cand    []int
		candLen float64
		s       int
	)
	if allStarts {
		starts = n
	}

	for s = 0; s < starts; s++ {
		if s > 0 && bud.exhausted() {
			// Remaining starts unexamined; keep the best tour so far.
			return best, iters, false
		}

		cand = greedyFrom(d, s)
		iters += n - 1
		candLen = d.routeLength(cand, closed)
		emit(StageConstruction, cand, round1e9(candLen))

		if best == nil || candLen < bestLen {
			best = cand
			bestLen = candLen
		}
	}

	return best, iters, true
}

// greedyFrom builds one nearest-neighbor route starting at vertex start.
//
// Complexity: O(n²) time (linear scan per step), O(n) space.
func greedyFrom(d *distMatrix, start int) []int {
	var (
		n       = d.n
		route   = make([]int, 0, n)
		visited = make([]bool, n)

		cur  = start
		next int
		bw   float64
		w    float64
		j    int
		step int
	)
	route = append(route, start)
	visited[start] = true

	for step = 1; step < n; step++ {
		next = -1
		for j = 0; j < n; j++ {
			if visited[j] {
				continue
			}
			w = d.at(cur, j)
			// Strict < breaks ties toward the lowest index.
			if next < 0 || w < bw {
				next = j
				bw = w
			}
		}
		route = append(route, next)
		visited[next] = true
		cur = next
	}

	return route
}
