package bound

import (
	"math"

	"github.com/katalvlaran/vbpp/core"
)

// Sum computes LB_sum: for each dimension, sum the raw item sizes, divide
// by the bin capacity, take the ceiling; the bound is the maximum across
// dimensions. Equivalent to the original BPP_LB1 / LB_BPP.
//
// Complexity: O(n*d).
func Sum(inst *core.Instance) int {
	dim := inst.Dimensions()
	caps := inst.BinCapacities()
	sums := make([]int64, dim)
	for _, item := range inst.Items() {
		for h := 0; h < dim; h++ {
			sums[h] += item.Sizes[h]
		}
	}

	lb := 0
	for h := 0; h < dim; h++ {
		val := int(math.Ceil(float64(sums[h]) / float64(caps[h])))
		if val > lb {
			lb = val
		}
	}
	return lb
}

// Clique computes a lower bound via Johnson's greedy clique heuristic on
// the item incompatibility graph: items i,j are adjacent iff they cannot
// share a bin in some dimension (sizes sum exceeds capacity there).
// Repeatedly pick the highest-current-degree vertex (ties: lowest id), add
// it to the clique, and drop every non-adjacent vertex from the remaining
// pool, decrementing degrees accordingly. The clique size is a valid lower
// bound: greedy clique <= omega(G) <= OPT.
//
// Complexity: O(n^2*d) to build the adjacency matrix, O(n^2) for the greedy
// selection loop.
func Clique(inst *core.Instance) int {
	items := inst.Items()
	n := len(items)
	caps := inst.BinCapacities()
	if n == 0 {
		return 0
	}

	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	degrees := make([]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if incompatible(items[i].Sizes, items[j].Sizes, caps) {
				adj[i][j] = true
				adj[j][i] = true
				degrees[i]++
				degrees[j]++
			}
		}
	}

	active := make([]bool, n)
	for i := range active {
		active[i] = true
	}
	remaining := n
	cliqueSize := 0

	for remaining > 0 {
		y := argmaxDegree(degrees, active)
		if y == -1 {
			break
		}
		cliqueSize++

		// Drop from the remaining pool every active vertex not adjacent to y
		// (y itself included, since a vertex is never adjacent to itself).
		for v := 0; v < n; v++ {
			if !active[v] {
				continue
			}
			if v == y || !adj[y][v] {
				active[v] = false
				remaining--
				for j := 0; j < n; j++ {
					if adj[v][j] {
						degrees[j]--
					}
				}
				degrees[v] = -1
			}
		}
	}

	return cliqueSize
}

// incompatible reports whether items a and b cannot share any bin: there
// exists a dimension where the sum of their sizes exceeds capacity.
func incompatible(a, b, caps []int64) bool {
	for h, c := range caps {
		if a[h]+b[h] > c {
			return true
		}
	}
	return false
}

// argmaxDegree returns the active index of highest degree, breaking ties
// by lowest index (first-encountered under a strict '>' comparison), or -1
// if no active vertex remains.
func argmaxDegree(degrees []int, active []bool) int {
	max := -1
	argmax := -1
	for i, d := range degrees {
		if !active[i] {
			continue
		}
		if d > max {
			max = d
			argmax = i
		}
	}
	return argmax
}
