package graph

import "fmt"

// Graph is an adjacency-list representation of a weighted undirected graph.
//
// The zero value is an empty graph with no nodes. Use [New] to create a graph
// with a fixed node count.
type Graph struct {
	nodes int
	peers [][]Peer
	edges []Edge
}

// New creates a graph with n nodes and no edges. A zero n yields a valid
// empty graph. New panics if n is negative.
func New(n int) *Graph {
	if n < 0 {
		panic(fmt.Sprintf("graph: negative node count %d", n))
	}
	return &Graph{
		nodes: n,
		peers: make([][]Peer, n),
	}
}

// Size returns the number of nodes.
func (g *Graph) Size() int { return g.nodes }

// EdgeCount returns the number of edges added with [Graph.Link].
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Contains reports whether node is a valid index in g.
func (g *Graph) Contains(node int) bool {
	return node >= 0 && node < g.nodes
}

// Link adds a weighted bidirectional edge between src and dst.
// Both endpoints receive an adjacency entry, so a self-loop shows up twice in
// Peers(src). Link panics if either index is out of range.
func (g *Graph) Link(src, dst int, weight uint64) {
	if !g.Contains(src) || !g.Contains(dst) {
		panic(fmt.Sprintf("graph: invalid edge %d-%d (size %d)", src, dst, g.nodes))
	}
	g.peers[src] = append(g.peers[src], Peer{Node: dst, Weight: weight})
	g.peers[dst] = append(g.peers[dst], Peer{Node: src, Weight: weight})
	g.edges = append(g.edges, Edge{Src: src, Dst: dst, Weight: weight})
}

// Peers returns the adjacency entries of node in insertion order.
// The returned slice is a view into g and must not be modified.
// Peers panics if node is out of range.
func (g *Graph) Peers(node int) []Peer {
	if !g.Contains(node) {
		panic(fmt.Sprintf("graph: invalid node %d (size %d)", node, g.nodes))
	}
	return g.peers[node]
}

// Edges returns the edges in the order they were linked, each exactly once.
// The returned slice must not be modified.
func (g *Graph) Edges() []Edge { return g.edges }
