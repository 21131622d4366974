// Package tsp - exact brute-force solver.
//
// solveBruteForce enumerates candidate permutations in lexicographic order
// and keeps the strictly best length seen, so ties resolve to the earliest
// permutation and the same input always yields the same output.
//
// For closed tours index 0 stays fixed: rotations of a cycle have identical
// length, so only the (n-1)! orderings of the remaining indices are visited.
// Open paths have no rotation invariance and require the full n! sweep.
//
// The soft budget (deadline / cancellation) is checked whenever the first
// free position advances to a new vertex — n-1 checks total for closed
// tours — keeping the hot loop branch-light while still returning the best
// tour found so far promptly.
package tsp

// solveBruteForce returns the optimal route for the prefetched distances,
// the number of permutations evaluated, and whether enumeration ran to
// completion (false ⇒ stopped by deadline or cancellation).
//
// Contract: d.n ≥ 2, size caps enforced by validateRequest.
//
// Complexity: O((n-1)!·n) closed, O(n!·n) open; O(n) space.
func solveBruteForce(d *distMatrix, closed bool, bud budget) (best []int, iters int, converged bool) {
	var (
		n   = d.n
		cur = identityPerm(n)

		bestLen float64
		curLen  float64

		// lo is the first permutable position: 1 for closed tours
		// (vertex 0 pinned), 0 for open paths.
		lo = 0

		head int // cur[lo] at the last budget check
	)
	if closed {
		lo = 1
	}

	best = copyPerm(cur)
	bestLen = d.routeLength(cur, closed)
	iters = 1
	head = cur[lo]

	for nextPermutation(cur[lo:]) {
		if cur[lo] != head {
			// A new top-level branch: the cheap place to poll the budget.
			head = cur[lo]
			if bud.exhausted() {
				return best, iters, false
			}
		}

		curLen = d.routeLength(cur, closed)
		iters++
		// Strict < keeps the lexicographically first optimum on ties.
		if curLen < bestLen {
			bestLen = curLen
			copy(best, cur)
		}
	}

	return best, iters, true
}

// nextPermutation rearranges a into its lexicographic successor, returning
// false when a is already the final (descending) permutation.
//
// Standard three-step algorithm: find the rightmost ascent a[i] < a[i+1],
// swap a[i] with the rightmost element greater than it, reverse the suffix.
//
// Complexity: O(n) worst case, O(1) amortized over a full enumeration.
func nextPermutation(a []int) bool {
	var (
		n = len(a)
		i = n - 2
		j int
	)
	for i >= 0 && a[i] >= a[i+1] {
		i--
	}
	if i < 0 {
		return false
	}

	j = n - 1
	for a[j] <= a[i] {
		j--
	}
	a[i], a[j] = a[j], a[i]
	reverseSegment(a, i+1, n-1)

	return true
}
