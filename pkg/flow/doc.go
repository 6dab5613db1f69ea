// Package flow computes per-node reachability metrics over a [graph.Graph].
//
// # Overview
//
// For every node, flow runs a single-source traversal and reduces the
// resulting [Distances] into a [Metric]: the largest finite distance to any
// reached node and the number of nodes reached. [Compute] does this for all
// nodes in index order and returns a [Report].
//
// # Traversal Modes
//
// [ModeFrontier] (the default) is [Traverse]: a FIFO frontier expansion that
// processes nodes in the order they were first enqueued. Each popped node
// takes the minimum of its own best value and the costs it was enqueued
// with; the edge weights of its peers are folded into the popped node, not
// into the peer. A node is expanded at most once per enqueued copy and is
// never enqueued after it has been popped. Results can therefore differ from
// true shortest paths and may depend on edge insertion order:
//
//	    300
//	 _________
//	/         \
//	0 --- 1 --- 2
//	  100   100
//
// From node 0, node 2 is enqueued twice (cost 300 directly, cost 200 via 1)
// before it is popped, so both candidates are seen and the result is
// [0 100 200]. Existing outputs depend on this behaviour; do not replace it
// with a textbook relaxation.
//
// [ModeShortest] is [Shortest]: a priority-queue relaxation that updates the
// neighbour's tentative distance. It yields true minimum-weight distances and
// must be selected explicitly.
//
// # Aggregation
//
// [Reduce] drops unreached entries and zero entries. Any node at distance 0
// is dropped, not only the source, so nodes reached solely through
// zero-weight edges are not counted.
//
// # Limits
//
// Because a node can be enqueued once per neighbour popped before it, the
// frontier of [Traverse] grows exponentially with depth on densely layered
// graphs. [WithFrontierLimit] makes [Compute] give up with LIMIT_EXCEEDED
// instead; Compute also honours ctx inside long traversals.
//
// # Concurrency
//
// Compute runs every traversal sequentially on the calling goroutine. Each
// traversal allocates its own working storage; the graph is only read.
package flow
