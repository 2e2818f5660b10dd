package algo

import (
	"sort"

	"github.com/brandonshearin/graphqueryd/bitset"
	"github.com/brandonshearin/graphqueryd/graph"
)

// CliqueResult is the total result type for the maximum-clique algorithm
// (§4.4). Members is empty (not nil-but-rendered) precisely when k == 0.
type CliqueResult struct {
	Members []int // ascending vertex list of one maximum clique
}

// Size returns the maximum clique size k.
func (r CliqueResult) Size() int { return len(r.Members) }

// MaxClique finds a maximum clique with Bron-Kerbosch and the Tomita pivot
// (choosing u in P ∪ X maximizing |P ∩ N(u)|), over bitset neighborhoods
// (§4.4), grounded on gonum's search.BronKerbosch pivot variant.
//
// An edgeless graph is special-cased to k=0 with no members: the §9 "MAXCLIQUE
// on empty graph" open question pins this as the reference behavior, which
// differs from the textbook convention of counting every singleton vertex
// as a trivial clique of size 1.
func MaxClique(g *graph.Graph) CliqueResult {
	if g.E() == 0 {
		return CliqueResult{}
	}

	v := g.V()
	neighbors := buildNeighborMasks(g)

	p := bitset.New(v)
	for i := 0; i < v; i++ {
		p.Set(i)
	}
	x := bitset.New(v)

	var best []int

	var recurse func(r []int, p, x *bitset.Set)
	recurse = func(r []int, p, x *bitset.Set) {
		if p.IsEmpty() && x.IsEmpty() {
			if len(r) > len(best) {
				best = append([]int(nil), r...)
			}
			return
		}

		pivot := choosePivot(p, x, neighbors)
		candidates := bitset.Difference(p, neighbors[pivot]).Bits(nil)
		for _, vtx := range candidates {
			next := append(append([]int(nil), r...), vtx)
			np := bitset.Intersect(p, neighbors[vtx])
			nx := bitset.Intersect(x, neighbors[vtx])
			recurse(next, np, nx)

			p.Clear(vtx)
			x.Set(vtx)
		}
	}
	recurse(nil, p, x)

	sort.Ints(best)
	return CliqueResult{Members: best}
}

// choosePivot returns u in P ∪ X maximizing |P ∩ N(u)|, scanning P then X
// in ascending index order so ties resolve deterministically to the first
// vertex encountered.
func choosePivot(p, x *bitset.Set, neighbors []*bitset.Set) int {
	best := -1
	bestCount := -1
	for _, u := range p.Bits(nil) {
		if c := bitset.IntersectCount(p, neighbors[u]); c > bestCount {
			bestCount, best = c, u
		}
	}
	for _, u := range x.Bits(nil) {
		if c := bitset.IntersectCount(p, neighbors[u]); c > bestCount {
			bestCount, best = c, u
		}
	}
	return best
}
