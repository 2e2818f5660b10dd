package algo

import (
	"github.com/brandonshearin/graphqueryd/bitset"
	"github.com/brandonshearin/graphqueryd/graph"
)

// CountCliques3Plus counts every clique (not just maximal ones) with three
// or more vertices, via plain Bron-Kerbosch *without* pivoting — pivoting
// would enumerate maximal cliques only (§4.5). Returns 0 for V <= 2, since
// no clique of size >= 3 can exist.
func CountCliques3Plus(g *graph.Graph) int {
	v := g.V()
	if v <= 2 {
		return 0
	}

	neighbors := buildNeighborMasks(g)

	p := bitset.New(v)
	for i := 0; i < v; i++ {
		p.Set(i)
	}

	count := 0
	var recurse func(r []int, p *bitset.Set)
	recurse = func(r []int, p *bitset.Set) {
		if len(r) >= 3 {
			count++
		}

		// Snapshot candidates in ascending order before mutating p, per
		// §4.5's "remove v from P before recursing, then continue the
		// iteration" rule: each candidate is only ever extended once.
		candidates := p.Bits(nil)
		for _, vtx := range candidates {
			p.Clear(vtx)
			next := append(append([]int(nil), r...), vtx)
			np := bitset.Intersect(p, neighbors[vtx])
			recurse(next, np)
		}
	}
	recurse(nil, p)

	return count
}
