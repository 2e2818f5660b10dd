package algo

import (
	"github.com/brandonshearin/graphqueryd/bitset"
	"github.com/brandonshearin/graphqueryd/graph"
)

// buildNeighborMasks constructs the NeighborMasks array of §3: one bitset
// per vertex, bit u set in N[v] iff v and u are adjacent. Built once per
// algorithm invocation that needs word-parallel neighborhood operations
// (the clique algorithms), then treated as read-only.
func buildNeighborMasks(g *graph.Graph) []*bitset.Set {
	v := g.V()
	n := make([]*bitset.Set, v)
	for u := 0; u < v; u++ {
		n[u] = bitset.New(v)
		row := g.AdjacencyRow(u)
		for w := 0; w < v; w++ {
			if row[w] == 1 {
				n[u].Set(w)
			}
		}
	}
	return n
}
