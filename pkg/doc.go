// Package pkg provides the core libraries for flowreach.
//
// # Overview
//
// Flowreach reads an undirected weighted graph and reports, for every node,
// the largest distance to any node it reaches and how many nodes it reaches.
// The pkg directory is organized into these areas:
//
//  1. [graph] - The adjacency-list graph the engine walks
//  2. [flow] - Single-source traversals and the per-node report
//  3. [io] - Text input parsing and text/JSON report output
//  4. [render] - Graphviz drawings of a graph annotated with its report
//  5. [errors], [observability], [buildinfo] - Shared infrastructure
//
// # Architecture
//
// The typical data flow:
//
//	Text input ("<nodes> <edges>" + edge lines)
//	         ↓
//	    [io] package (ReadText / ImportText)
//	         ↓
//	    [graph] package (adjacency lists)
//	         ↓
//	    [flow] package (Traverse or Shortest per source, then Reduce)
//	         ↓
//	    Text/JSON report, or DOT/SVG via [render]
//
// # Quick Start
//
//	g, err := io.ReadText(os.Stdin)
//	if err != nil {
//	    return err
//	}
//	report, err := flow.Compute(ctx, g)
//	if err != nil {
//	    return err
//	}
//	return io.WriteText(os.Stdout, report)
//
// # Main Packages
//
// [graph] - Nodes are dense indices 0..n-1. Every edge is recorded in the
// adjacency list of both endpoints, so parallel edges and self-loops are
// kept as given.
//
// [flow] - [flow.Traverse] is the default FIFO frontier expansion: it keeps
// the first cost with which a node is settled, which is not always the
// shortest path. [flow.Shortest] is the priority-queue alternative, selected
// with [flow.ModeShortest]. [flow.Compute] runs one traversal per source and
// reduces each to a [flow.Metric].
//
// [io] - The text format is strict: the header must declare exactly as many
// edge lines as follow it, and every endpoint must be in range. Errors carry
// codes from [errors] and name the offending line.
//
// [render] - Builds DOT text and renders SVG with an embedded Graphviz, so no
// external binary is required.
//
// ## Infrastructure
//
// [errors] - Coded errors (INVALID_INPUT, OUT_OF_RANGE, ...) shared by the
// CLI and the HTTP API.
//
// [observability] - Hook interfaces for the engine and HTTP layer. The server
// installs Prometheus-backed hooks; everything else sees no-ops.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/flow/...               # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/matzehuels/flowreach/pkg/graph
// [flow]: https://pkg.go.dev/github.com/matzehuels/flowreach/pkg/flow
// [io]: https://pkg.go.dev/github.com/matzehuels/flowreach/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/flowreach/pkg/render
// [errors]: https://pkg.go.dev/github.com/matzehuels/flowreach/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/flowreach/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/flowreach/pkg/buildinfo
package pkg
