package algo

import (
	"strconv"

	"github.com/brandonshearin/graphqueryd/graph"
)

// EulerResult is the total result type for the Eulerian-circuit algorithm
// (§4.2, §7 AlgoNegative): exactly one of Circuit or Reason is populated.
type EulerResult struct {
	// Circuit holds the closed walk p[0..E] with p[0] == p[E] using every
	// edge exactly once, in traversal order. Nil when no circuit exists.
	Circuit []int
	// Reason explains why no circuit was found. Empty when Circuit != nil.
	Reason string
}

// Found reports whether an Euler circuit was produced.
func (r EulerResult) Found() bool { return r.Circuit != nil }

// EulerCircuit runs Hierholzer's algorithm over g (§4.2).
//
// Preconditions are checked in the order the spec mandates: connectivity
// among non-isolated vertices first, then all-even-degree. Each failure
// produces its own diagnostic Reason; a graph with no edges at all is
// accepted vacuously and yields a length-1 circuit at vertex 0 (the §9
// "Eulerian on an empty graph" open question, resolved as specified).
func EulerCircuit(g *graph.Graph) EulerResult {
	if !g.ConnectedAmongNonIsolated() {
		return EulerResult{Reason: "graph is not connected among non-isolated vertices"}
	}
	if !g.AllEvenDegrees() {
		n := g.OddDegreeCount()
		return EulerResult{Reason: formatOddCount(n)}
	}

	start := lowestNonIsolated(g)

	adj := g.AdjacencyMatrix()
	deg := make([]int, g.V())
	for u := 0; u < g.V(); u++ {
		deg[u] = g.Degree(u)
	}

	stack := []int{start}
	out := make([]int, 0, g.E()+1)
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		if deg[u] > 0 {
			v := lowestUnvisitedNeighbor(adj, u, g.V())
			adj[u][v]--
			adj[v][u]--
			deg[u]--
			deg[v]--
			stack = append(stack, v)
		} else {
			stack = stack[:len(stack)-1]
			out = append(out, u)
		}
	}

	return EulerResult{Circuit: out}
}

func lowestNonIsolated(g *graph.Graph) int {
	for u := 0; u < g.V(); u++ {
		if g.Degree(u) > 0 {
			return u
		}
	}
	return 0
}

// lowestUnvisitedNeighbor returns the lowest-indexed v with adj[u][v] > 0,
// the tie-break §4.2 requires for deterministic, testable traversal order.
func lowestUnvisitedNeighbor(adj [][]int, u, v int) int {
	for n := 0; n < v; n++ {
		if adj[u][n] > 0 {
			return n
		}
	}
	panic("algo: lowestUnvisitedNeighbor called with deg(u) == 0")
}

func formatOddCount(n int) string {
	if n == 1 {
		return "1 vertex has odd degree"
	}
	return strconv.Itoa(n) + " vertices have odd degree"
}
