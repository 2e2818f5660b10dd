package algo

import "github.com/brandonshearin/graphqueryd/graph"

// MSTResult is the total result type for the MST algorithm (§4.3, §7
// AlgoNegative).
type MSTResult struct {
	// Connected is false when the graph has no spanning tree, in which
	// case TotalWeight is meaningless.
	Connected   bool
	TotalWeight float64
}

// MSTWeightPrim computes the minimum spanning tree weight of g with a
// dense O(V²) Prim's algorithm (§4.3), grown from vertex 0.
//
// Preconditions: no isolated vertex, and the graph is fully connected from
// vertex 0. Either failure reports Connected == false. Ties in the key
// array resolve to the lowest vertex index, matching the tie-break §4.3
// mandates.
func MSTWeightPrim(g *graph.Graph) MSTResult {
	if g.HasIsolatedVertex() || !g.ConnectedFrom(0) {
		return MSTResult{Connected: false}
	}

	v := g.V()
	const inf = 1<<63 - 1
	key := make([]float64, v)
	included := make([]bool, v)
	for i := range key {
		key[i] = inf
	}
	key[0] = 0

	var total float64
	for iter := 0; iter < v; iter++ {
		u := -1
		for cand := 0; cand < v; cand++ {
			if included[cand] {
				continue
			}
			if u == -1 || key[cand] < key[u] {
				u = cand
			}
		}

		included[u] = true
		if iter > 0 {
			total += key[u]
		}

		for n := 0; n < v; n++ {
			if included[n] || !g.HasEdge(u, n) {
				continue
			}
			if w := g.Weight(u, n); w < key[n] {
				key[n] = w
			}
		}
	}

	return MSTResult{Connected: true, TotalWeight: total}
}
