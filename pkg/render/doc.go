// Package render draws a graph and its flow report as a node-link diagram.
//
// # Overview
//
// [ToDOT] converts a [graph.Graph] into an undirected Graphviz DOT document.
// Each node is labelled with its index and, when a [flow.Report] is given,
// with its maximum distance and reachable count. Edges are labelled with
// their weights; parallel edges and self-loops are drawn as they were
// linked.
//
//	dot := render.ToDOT(g, report, render.Options{})
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Highlighting
//
// The node with the largest maximum distance is filled with the accent
// colour; nodes that reach nothing are drawn dashed and grey.
//
// # Formats
//
// [RenderSVG] runs Graphviz in-process through
// [github.com/goccy/go-graphviz], so no external binary is required.
// [Render] picks DOT or SVG output by name.
package render
