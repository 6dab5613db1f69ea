// Package graph provides the weighted undirected graph that flowreach
// traverses.
//
// # Overview
//
// A [Graph] has a fixed number of integer-indexed nodes in [0, Size()) and an
// adjacency list per node. Every call to [Graph.Link] stores the edge on both
// endpoints, so the graph is undirected by construction. Self-loops and
// parallel edges are kept exactly as given; nothing is deduplicated.
//
// # Basic Usage
//
//	g := graph.New(3)
//	g.Link(0, 1, 200)
//	g.Link(1, 2, 350)
//
//	for _, p := range g.Peers(1) {
//	    fmt.Println(p.Node, p.Weight)
//	}
//
// # Contract Violations
//
// Node indices outside [0, Size()) are programming errors, not input errors.
// [Graph.Link] and [Graph.Peers] panic on them rather than clamping or
// ignoring the edge. Code that handles untrusted input (see pkg/io) must
// check indices with [Graph.Contains] first and report a proper error.
//
// # Concurrency
//
// A Graph is not safe for concurrent mutation. Once construction is done it
// is read-only, and any number of goroutines may traverse it.
package graph
