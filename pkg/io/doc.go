// Package io reads graph descriptions and writes flow reports.
//
// # Input Format
//
// The input is plain text. The first line holds the node count and the edge
// count; each following line holds one undirected edge:
//
//	3 4
//	0 1 200
//	1 2 350
//	0 2 500
//	1 2 600
//
// All values are non-negative decimal integers separated by whitespace. The
// input must contain exactly edgeCount lines after the header; a final
// newline is optional, but a blank trailing line counts as a line. Any
// deviation is fatal: [ReadText] returns an error and no graph. Errors carry
// the code errors.ErrCodeInvalidInput, or errors.ErrCodeOutOfRange when an
// edge names a node outside [0, nodeCount).
//
// # Output Formats
//
// [WriteText] prints one line per node in ascending order:
//
//	node 0: time 500, nodes 2
//	node 1: time 350, nodes 2
//	node 2: time 500, nodes 2
//
// [WriteJSON] writes the same report as an indented JSON document:
//
//	{
//	  "nodes": [
//	    {"node": 0, "max_distance": 500, "reachable": 2},
//	    ...
//	  ]
//	}
//
// [Write] dispatches on a format name ([FormatText] or [FormatJSON]).
package io
