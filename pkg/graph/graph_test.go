package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		n    int
	}{
		{"Empty", 0},
		{"Single", 1},
		{"Several", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.n)
			assert.Equal(t, tt.n, g.Size())
			assert.Zero(t, g.EdgeCount())
			for i := 0; i < tt.n; i++ {
				assert.Empty(t, g.Peers(i))
			}
		})
	}
}

func TestNewNegativePanics(t *testing.T) {
	assert.Panics(t, func() { New(-1) })
}

func TestZeroValue(t *testing.T) {
	var g Graph
	assert.Zero(t, g.Size())
	assert.False(t, g.Contains(0))
}

func TestLinkIsSymmetric(t *testing.T) {
	g := New(3)
	g.Link(0, 1, 200)
	g.Link(1, 2, 350)

	assert.Equal(t, []Peer{{Node: 1, Weight: 200}}, g.Peers(0))
	assert.Equal(t, []Peer{{Node: 0, Weight: 200}, {Node: 2, Weight: 350}}, g.Peers(1))
	assert.Equal(t, []Peer{{Node: 1, Weight: 350}}, g.Peers(2))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestLinkKeepsParallelEdgesAndLoops(t *testing.T) {
	g := New(2)
	g.Link(0, 1, 5)
	g.Link(0, 1, 7)
	g.Link(1, 1, 3)

	require.Len(t, g.Peers(0), 2)
	assert.Equal(t, []Peer{{0, 5}, {0, 7}, {1, 3}, {1, 3}}, g.Peers(1))
	assert.Equal(t, []Edge{{0, 1, 5}, {0, 1, 7}, {1, 1, 3}}, g.Edges())
}

func TestLinkZeroAndLargeWeights(t *testing.T) {
	g := New(2)
	g.Link(0, 1, 0)
	g.Link(1, 0, ^uint64(0))

	assert.Equal(t, []Peer{{1, 0}, {1, ^uint64(0)}}, g.Peers(0))
}

func TestOutOfRangePanics(t *testing.T) {
	g := New(3)

	tests := []struct {
		name string
		fn   func()
	}{
		{"link src", func() { g.Link(3, 0, 1) }},
		{"link dst", func() { g.Link(0, 3, 1) }},
		{"link negative", func() { g.Link(-1, 0, 1) }},
		{"peers", func() { g.Peers(3) }},
		{"peers negative", func() { g.Peers(-1) }},
		{"empty graph", func() { New(0).Peers(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Panics(t, tt.fn)
		})
	}
	assert.Zero(t, g.EdgeCount(), "failed links must not leave partial state")
}

func TestContains(t *testing.T) {
	g := New(2)
	assert.True(t, g.Contains(0))
	assert.True(t, g.Contains(1))
	assert.False(t, g.Contains(2))
	assert.False(t, g.Contains(-1))
}
