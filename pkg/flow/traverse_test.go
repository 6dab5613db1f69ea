package flow

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/flowreach/pkg/graph"
)

// duplicateTriangle is a triangle with a second, heavier 1-2 edge.
func duplicateTriangle() *graph.Graph {
	g := graph.New(3)
	g.Link(0, 1, 200)
	g.Link(1, 2, 350)
	g.Link(0, 2, 500)
	g.Link(1, 2, 600)
	return g
}

// shortcutTriangle is a path 0-1-2 of weight 100 per hop plus a 300 edge 0-2.
func shortcutTriangle() *graph.Graph {
	g := graph.New(3)
	g.Link(0, 1, 100)
	g.Link(1, 2, 100)
	g.Link(0, 2, 300)
	return g
}

// detour has a heavy direct edge 0-2 that the frontier settles on before the
// cheap path 0-1-3-2 is popped.
func detour() *graph.Graph {
	g := graph.New(4)
	g.Link(0, 1, 1)
	g.Link(0, 2, 10)
	g.Link(1, 3, 1)
	g.Link(3, 2, 1)
	return g
}

func TestTraverse(t *testing.T) {
	tests := []struct {
		name  string
		build func() *graph.Graph
		src   int
		want  Distances
	}{
		{"duplicate triangle from 0", duplicateTriangle, 0, Distances{0, 200, 500}},
		{"duplicate triangle from 1", duplicateTriangle, 1, Distances{200, 0, 350}},
		{"duplicate triangle from 2", duplicateTriangle, 2, Distances{500, 350, 0}},
		{"shortcut triangle from 0", shortcutTriangle, 0, Distances{0, 100, 200}},
		{"detour keeps first-popped cost", detour, 0, Distances{0, 1, 10, 2}},
		{"single node", func() *graph.Graph { return graph.New(1) }, 0, Distances{0}},
		{
			name: "isolated node",
			build: func() *graph.Graph {
				g := graph.New(3)
				g.Link(0, 1, 4)
				return g
			},
			src:  2,
			want: Distances{Unreached, Unreached, 0},
		},
		{
			name: "self loop does not move the source",
			build: func() *graph.Graph {
				g := graph.New(2)
				g.Link(0, 0, 9)
				g.Link(0, 1, 3)
				return g
			},
			src:  0,
			want: Distances{0, 3},
		},
		{
			name: "disconnected components",
			build: func() *graph.Graph {
				g := graph.New(4)
				g.Link(0, 1, 2)
				g.Link(2, 3, 5)
				return g
			},
			src:  3,
			want: Distances{Unreached, Unreached, 5, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Traverse(tt.build(), tt.src))
		})
	}
}

func TestTraverseInvalidSourcePanics(t *testing.T) {
	assert.Panics(t, func() { Traverse(graph.New(2), 2) })
	assert.Panics(t, func() { Traverse(graph.New(0), 0) })
	assert.Panics(t, func() { Shortest(graph.New(2), -1) })
}

func TestShortest(t *testing.T) {
	assert.Equal(t, Distances{0, 1, 3, 2}, Shortest(detour(), 0))
	assert.Equal(t, Distances{0, 100, 200}, Shortest(shortcutTriangle(), 0))
	assert.Equal(t, Distances{200, 0, 350}, Shortest(duplicateTriangle(), 1))
}

func TestAddCostSaturates(t *testing.T) {
	assert.Equal(t, uint64(7), addCost(3, 4))
	assert.Equal(t, maxCost, addCost(maxCost, 1))
	assert.Equal(t, maxCost, addCost(1, Unreached))
	assert.Equal(t, maxCost, addCost(maxCost-1, 1))

	g := graph.New(3)
	g.Link(0, 1, maxCost)
	g.Link(1, 2, maxCost)
	d := Traverse(g, 0)
	assert.Equal(t, Distances{0, maxCost, maxCost}, d)
	assert.True(t, d.Reached(2), "saturated costs stay finite")
}

func TestTraverseProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		g := randomGraph(rng, 1+rng.Intn(12), rng.Intn(20))
		n := g.Size()

		frontier := make([]Distances, n)
		shortest := make([]Distances, n)
		for src := 0; src < n; src++ {
			frontier[src] = Traverse(g, src)
			shortest[src] = Shortest(g, src)

			require.Len(t, frontier[src], n)
			assert.Zero(t, frontier[src][src], "source must be at cost 0")
			assert.Zero(t, shortest[src][src], "source must be at cost 0")
		}

		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				assert.Equal(t, frontier[u].Reached(v), frontier[v].Reached(u),
					"reachability must be symmetric (round %d, %d<->%d)", round, u, v)
				assert.Equal(t, shortest[u].Reached(v), frontier[u].Reached(v),
					"both modes must reach the same nodes (round %d)", round)
				assert.GreaterOrEqual(t, frontier[u][v], shortest[u][v],
					"frontier costs are real path costs (round %d)", round)
			}
		}
	}
}

func randomGraph(rng *rand.Rand, n, edges int) *graph.Graph {
	g := graph.New(n)
	for i := 0; i < edges; i++ {
		g.Link(rng.Intn(n), rng.Intn(n), uint64(rng.Intn(1000)))
	}
	return g
}
