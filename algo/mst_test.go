package algo_test

import (
	"testing"

	"github.com/brandonshearin/graphqueryd/algo"
	"github.com/brandonshearin/graphqueryd/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// §8 scenario 3.
func TestMSTWeightPrimChain(t *testing.T) {
	g := buildGraph(t, 5, [][3]int{
		{0, 1, 1}, {1, 2, 2}, {2, 3, 3}, {3, 4, 4}, {0, 4, 10},
	})

	res := algo.MSTWeightPrim(g)
	require.True(t, res.Connected)
	assert.Equal(t, float64(10), res.TotalWeight)
}

// §8 scenario 4: vertex 2 is isolated, so no spanning tree exists.
func TestMSTWeightPrimDisconnected(t *testing.T) {
	g, err := graph.New(3)
	require.NoError(t, err)
	require.True(t, g.AddEdge(0, 1, 5))

	res := algo.MSTWeightPrim(g)
	assert.False(t, res.Connected)
}

// The lone vertex has degree 0, so the no-isolated-vertex precondition
// fails and no spanning tree is reported.
func TestMSTWeightPrimSingleVertex(t *testing.T) {
	g, err := graph.New(1)
	require.NoError(t, err)

	res := algo.MSTWeightPrim(g)
	require.False(t, res.Connected)
	assert.Equal(t, float64(0), res.TotalWeight)
}

// Cross-check against an independent Kruskal implementation over two fixed
// connected graphs (Testable Property 5).
func TestMSTWeightPrimMatchesKruskal(t *testing.T) {
	type edge = struct{ u, v, w int }
	cases := [][]edge{
		{{0, 1, 4}, {1, 2, 1}, {0, 2, 2}, {2, 3, 7}, {1, 3, 5}},
		{{0, 1, 1}, {1, 2, 1}, {2, 0, 1}, {2, 3, 1}, {3, 0, 9}},
	}

	for _, edges := range cases {
		maxV := 0
		for _, e := range edges {
			if e.u > maxV {
				maxV = e.u
			}
			if e.v > maxV {
				maxV = e.v
			}
		}
		g, err := graph.New(maxV + 1)
		require.NoError(t, err)
		for _, e := range edges {
			require.True(t, g.AddEdge(e.u, e.v, float64(e.w)))
		}

		got := algo.MSTWeightPrim(g)
		require.True(t, got.Connected)
		want := kruskal(maxV+1, edges)
		assert.Equal(t, want, got.TotalWeight)
	}
}

func kruskal(v int, edges []struct{ u, v, w int }) float64 {
	parent := make([]int, v)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		if parent[x] != x {
			parent[x] = find(parent[x])
		}
		return parent[x]
	}

	sorted := append([]struct{ u, v, w int }(nil), edges...)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].w < sorted[i].w {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	var total float64
	for _, e := range sorted {
		ru, rv := find(e.u), find(e.v)
		if ru != rv {
			parent[ru] = rv
			total += float64(e.w)
		}
	}
	return total
}
