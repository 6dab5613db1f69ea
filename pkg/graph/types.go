package graph

// Peer is one adjacency entry: the node on the other end of an edge and the
// edge weight.
type Peer struct {
	Node   int
	Weight uint64
}

// Edge is an undirected weighted edge as it was passed to [Graph.Link].
type Edge struct {
	Src    int    `json:"src"`
	Dst    int    `json:"dst"`
	Weight uint64 `json:"weight"`
}
