package algo

import "github.com/brandonshearin/graphqueryd/graph"

// HamiltonResult is the total result type for the Hamiltonian-cycle
// algorithm (§4.6, §7 AlgoNegative).
type HamiltonResult struct {
	// Cycle holds V+1 vertices with Cycle[0] == Cycle[V]. Nil when no
	// Hamiltonian cycle exists.
	Cycle []int
}

// Found reports whether a Hamiltonian cycle was produced.
func (r HamiltonResult) Found() bool { return r.Cycle != nil }

// HamiltonCycle searches for a Hamiltonian cycle with pruned backtracking
// (§4.6): start is fixed at vertex 0 to eliminate rotational symmetry,
// neighbors are tried in ascending index order, and any vertex with
// degree < 2 prunes that branch (a degree-<2 vertex can never sit on a
// cycle).
func HamiltonCycle(g *graph.Graph) HamiltonResult {
	v := g.V()
	if v < 3 || !g.ConnectedAmongNonIsolated() || anyDegreeBelow(g, 2) {
		return HamiltonResult{}
	}

	path := make([]int, 1, v)
	path[0] = 0
	used := make([]bool, v)
	used[0] = true

	if hamiltonExtend(g, path, used, v) {
		cycle := make([]int, 0, v+1)
		cycle = append(cycle, path...)
		cycle = append(cycle, 0)
		return HamiltonResult{Cycle: cycle}
	}
	return HamiltonResult{}
}

func anyDegreeBelow(g *graph.Graph, min int) bool {
	for u := 0; u < g.V(); u++ {
		if g.Degree(u) < min {
			return true
		}
	}
	return false
}

func hamiltonExtend(g *graph.Graph, path []int, used []bool, v int) bool {
	if len(path) == v {
		return g.HasEdge(path[len(path)-1], 0)
	}

	last := path[len(path)-1]
	for next := 0; next < v; next++ {
		if used[next] || !g.HasEdge(last, next) || g.Degree(next) < 2 {
			continue
		}

		used[next] = true
		path = append(path, next)
		if hamiltonExtend(g, path, used, v) {
			return true
		}
		path = path[:len(path)-1]
		used[next] = false
	}
	return false
}
