// Package graph implements the undirected, positively weighted simple graph
// that every algorithm in package algo operates on. A Graph is a value
// object: built once per request from either a random or an explicit edge
// specification (package request), read-only for the remainder of its
// lifetime, and discarded once its algorithm result has been handed to the
// sender stage (package pipeline).
package graph

import "errors"

// ErrInvalidVertexCount is returned by New when asked to build a graph with
// fewer than one vertex.
var ErrInvalidVertexCount = errors.New("graph: V must be >= 1")

// Graph is an undirected simple graph on vertices labeled 0..V-1, with a
// symmetric adjacency matrix and a symmetric, positive weight matrix valid
// only where the adjacency bit is set.
//
// Invariants (checked by AddEdge, never violated by direct field access
// since adj/w are unexported):
//   - adj[i][i] == false for all i
//   - adj[i][j] == adj[j][i]
//   - w[i][j] == w[j][i] > 0 wherever adj[i][j] is true
//   - e == the number of true entries above the diagonal of adj
type Graph struct {
	v   int
	e   int
	adj [][]bool
	w   [][]float64
}

// New returns an empty graph on v vertices (v >= 1).
func New(v int) (*Graph, error) {
	if v < 1 {
		return nil, ErrInvalidVertexCount
	}

	adj := make([][]bool, v)
	w := make([][]float64, v)
	for i := range adj {
		adj[i] = make([]bool, v)
		w[i] = make([]float64, v)
	}

	return &Graph{v: v, adj: adj, w: w}, nil
}

// V returns the vertex count.
func (g *Graph) V() int { return g.v }

// E returns the current edge count.
func (g *Graph) E() int { return g.e }

// HasEdge reports whether u and v are adjacent. It returns false (rather
// than panicking) for out-of-range endpoints so callers can probe freely.
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	return g.adj[u][v]
}

// Weight returns the weight of edge (u,v), or 0 if the edge does not exist.
func (g *Graph) Weight(u, v int) float64 {
	if !g.inRange(u) || !g.inRange(v) {
		return 0
	}
	return g.w[u][v]
}

// AddEdge validates and inserts an edge. It silently rejects (returns false,
// adds nothing) out-of-range endpoints, self-loops, non-positive weights,
// and duplicate edges, per spec.md §3/§4.1. Successful insertion increments
// E and reports true.
func (g *Graph) AddEdge(u, v int, weight float64) bool {
	if !g.inRange(u) || !g.inRange(v) {
		return false
	}
	if u == v {
		return false
	}
	if weight <= 0 {
		return false
	}
	if g.adj[u][v] {
		return false // duplicate
	}

	g.adj[u][v] = true
	g.adj[v][u] = true
	g.w[u][v] = weight
	g.w[v][u] = weight
	g.e++
	return true
}

func (g *Graph) inRange(u int) bool { return u >= 0 && u < g.v }

// Degree returns the degree of vertex u.
func (g *Graph) Degree(u int) int {
	d := 0
	for _, adjacent := range g.adj[u] {
		if adjacent {
			d++
		}
	}
	return d
}

// AllEvenDegrees reports whether every vertex has even degree.
func (g *Graph) AllEvenDegrees() bool {
	for u := 0; u < g.v; u++ {
		if g.Degree(u)%2 != 0 {
			return false
		}
	}
	return true
}

// OddDegreeCount returns the number of vertices with odd degree, used to
// report "No Euler circuit: N vertices have odd degree." (§4.2).
func (g *Graph) OddDegreeCount() int {
	n := 0
	for u := 0; u < g.v; u++ {
		if g.Degree(u)%2 != 0 {
			n++
		}
	}
	return n
}

// ConnectedAmongNonIsolated runs a DFS from the lowest-indexed vertex with
// degree > 0 and reports whether every non-isolated vertex is reachable
// from it. A graph with no edges at all is vacuously connected (§4.1,
// and the §9 "Eulerian on an empty graph" open question).
func (g *Graph) ConnectedAmongNonIsolated() bool {
	start := -1
	for u := 0; u < g.v; u++ {
		if g.Degree(u) > 0 {
			start = u
			break
		}
	}
	if start == -1 {
		return true
	}

	visited := make([]bool, g.v)
	stack := []int{start}
	visited[start] = true
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := 0; v < g.v; v++ {
			if g.adj[u][v] && !visited[v] {
				visited[v] = true
				stack = append(stack, v)
			}
		}
	}

	for u := 0; u < g.v; u++ {
		if g.Degree(u) > 0 && !visited[u] {
			return false
		}
	}
	return true
}

// ConnectedFrom runs an iterative DFS from start and reports whether every
// vertex in the graph (isolated or not) is reachable from it. Used by MST
// (§4.3), which requires full spanning connectivity rather than the
// Euler/Hamilton "ignore isolated vertices" relaxation.
func (g *Graph) ConnectedFrom(start int) bool {
	visited := make([]bool, g.v)
	stack := []int{start}
	visited[start] = true
	count := 1
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := 0; v < g.v; v++ {
			if g.adj[u][v] && !visited[v] {
				visited[v] = true
				count++
				stack = append(stack, v)
			}
		}
	}
	return count == g.v
}

// HasIsolatedVertex reports whether any vertex has degree 0.
func (g *Graph) HasIsolatedVertex() bool {
	for u := 0; u < g.v; u++ {
		if g.Degree(u) == 0 {
			return true
		}
	}
	return false
}

// AdjacencyRow returns a copy of row u of the adjacency matrix as 0/1 ints,
// in vertex order, for assembling the "-p" adjacency-matrix prefix (§6).
func (g *Graph) AdjacencyRow(u int) []int {
	row := make([]int, g.v)
	for v := 0; v < g.v; v++ {
		if g.adj[u][v] {
			row[v] = 1
		}
	}
	return row
}

// AdjacencyMatrix builds a mutable copy of the adjacency matrix (0/1 ints)
// for algorithms that consume edges destructively, such as Hierholzer's
// algorithm in package algo (§4.2).
func (g *Graph) AdjacencyMatrix() [][]int {
	m := make([][]int, g.v)
	for u := range m {
		m[u] = make([]int, g.v)
		for v := 0; v < g.v; v++ {
			if g.adj[u][v] {
				m[u][v] = 1
			}
		}
	}
	return m
}
