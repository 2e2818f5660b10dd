// Package graphtest provides a reusable gocheck suite of structural
// invariant checks for package graph, adapted from the teacher corpus's
// SuiteBase conformance-suite pattern. It exercises Testable Properties
// 1-3 of spec.md §8 (no self-loops/duplicates/out-of-range edges, E
// matches the true edge count, symmetric matrices, connectivity) against
// graphs that each test builds for itself.
package graphtest

import (
	"math/rand"

	"github.com/brandonshearin/graphqueryd/graph"
	gc "gopkg.in/check.v1"
)

// SuiteBase runs structural property checks against freshly built graphs.
// Callers embed it in their own gocheck suite and need not set any state;
// unlike the teacher's storage-conformance SuiteBase, every test here
// constructs its own graph.Graph since graphs have no external store.
type SuiteBase struct{}

// TestAddEdgeRejectsInvalid verifies Testable Property 1: AddEdge never
// admits self-loops, duplicates, or out-of-range endpoints, and E always
// equals the number of true entries above the diagonal.
func (s *SuiteBase) TestAddEdgeRejectsInvalid(c *gc.C) {
	g, err := graph.New(4)
	c.Assert(err, gc.IsNil)

	c.Assert(g.AddEdge(0, 0, 1), gc.Equals, false, gc.Commentf("self-loop must be rejected"))
	c.Assert(g.AddEdge(-1, 2, 1), gc.Equals, false, gc.Commentf("out-of-range endpoint must be rejected"))
	c.Assert(g.AddEdge(1, 9, 1), gc.Equals, false, gc.Commentf("out-of-range endpoint must be rejected"))
	c.Assert(g.AddEdge(1, 2, 0), gc.Equals, false, gc.Commentf("non-positive weight must be rejected"))
	c.Assert(g.AddEdge(1, 2, -5), gc.Equals, false, gc.Commentf("non-positive weight must be rejected"))

	c.Assert(g.AddEdge(1, 2, 3), gc.Equals, true)
	c.Assert(g.AddEdge(1, 2, 7), gc.Equals, false, gc.Commentf("duplicate edge must be rejected"))
	c.Assert(g.AddEdge(2, 1, 7), gc.Equals, false, gc.Commentf("duplicate edge (reversed) must be rejected"))

	c.Assert(g.E(), gc.Equals, 1)
	c.Assert(countTrueAboveDiagonal(g), gc.Equals, g.E())
}

// TestSymmetry verifies Testable Property 2: adjacency and weight
// matrices are symmetric, the diagonal is zero, and weights are positive
// wherever an edge exists.
func (s *SuiteBase) TestSymmetry(c *gc.C) {
	g := randomGraph(c, 6, 8, 1)
	for u := 0; u < g.V(); u++ {
		c.Assert(g.HasEdge(u, u), gc.Equals, false)
		for v := 0; v < g.V(); v++ {
			c.Assert(g.HasEdge(u, v), gc.Equals, g.HasEdge(v, u))
			if g.HasEdge(u, v) {
				c.Assert(g.Weight(u, v), gc.Equals, g.Weight(v, u))
				c.Assert(g.Weight(u, v) > 0, gc.Equals, true)
			}
		}
	}
}

// TestConnectedAmongNonIsolated verifies Testable Property 3: an edgeless
// graph is vacuously connected-among-non-isolated, two disjoint components
// are not, and joining them makes the graph connected again.
func (s *SuiteBase) TestConnectedAmongNonIsolated(c *gc.C) {
	empty, err := graph.New(5)
	c.Assert(err, gc.IsNil)
	c.Assert(empty.ConnectedAmongNonIsolated(), gc.Equals, true)

	g, err := graph.New(5)
	c.Assert(err, gc.IsNil)
	c.Assert(g.AddEdge(0, 1, 1), gc.Equals, true)
	c.Assert(g.AddEdge(2, 3, 1), gc.Equals, true)
	// vertex 4 isolated, {0,1} and {2,3} disjoint components: disconnected
	// among the non-isolated vertices {0,1,2,3}.
	c.Assert(g.ConnectedAmongNonIsolated(), gc.Equals, false)

	c.Assert(g.AddEdge(1, 2, 1), gc.Equals, true)
	c.Assert(g.ConnectedAmongNonIsolated(), gc.Equals, true)
}

func randomGraph(c *gc.C, v, wantE int, seed int64) *graph.Graph {
	g, err := graph.New(v)
	c.Assert(err, gc.IsNil)

	r := rand.New(rand.NewSource(seed))
	placed := 0
	for attempts := 0; placed < wantE && attempts < wantE*100+100; attempts++ {
		u, vv := r.Intn(v), r.Intn(v)
		w := float64(r.Intn(20) + 1)
		if g.AddEdge(u, vv, w) {
			placed++
		}
	}
	return g
}

// countTrueAboveDiagonal recomputes E independently from the adjacency
// matrix dump, used to cross-check graph.Graph.E().
func countTrueAboveDiagonal(g *graph.Graph) int {
	n := 0
	for u := 0; u < g.V(); u++ {
		row := g.AdjacencyRow(u)
		for v := u + 1; v < g.V(); v++ {
			if row[v] == 1 {
				n++
			}
		}
	}
	return n
}
