package io

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/matzehuels/flowreach/pkg/errors"
	"github.com/matzehuels/flowreach/pkg/graph"
)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// ReadOption configures [ReadText].
type ReadOption func(*readOptions)

type readOptions struct {
	maxNodes uint64
	maxEdges uint64
}

// WithMaxNodes rejects inputs declaring more than n nodes with
// LIMIT_EXCEEDED. n == 0 means unlimited, the default.
func WithMaxNodes(n uint64) ReadOption {
	return func(o *readOptions) { o.maxNodes = n }
}

// WithMaxEdges rejects inputs declaring more than n edges with
// LIMIT_EXCEEDED. n == 0 means unlimited, the default.
func WithMaxEdges(n uint64) ReadOption {
	return func(o *readOptions) { o.maxEdges = n }
}

// ReadText reads the whole of r and builds a graph from it.
//
// The header is validated first (including any limits), then the number of
// edge lines, then each edge line in order. The first problem found is
// returned; the graph is only returned when the entire input is valid.
// ReadText does not close r.
func ReadText(r io.Reader, opts ...ReadOption) (*graph.Graph, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(lines) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "missing header line")
	}

	header, err := parseFields(lines[0], 1, "nodeCount", "edgeCount")
	if err != nil {
		return nil, err
	}
	nodes, edges := header[0], header[1]

	if o.maxNodes > 0 && nodes > o.maxNodes {
		return nil, errors.New(errors.ErrCodeLimitExceeded, "line 1: %d nodes exceeds the limit of %d", nodes, o.maxNodes)
	}
	if o.maxEdges > 0 && edges > o.maxEdges {
		return nil, errors.New(errors.ErrCodeLimitExceeded, "line 1: %d edges exceeds the limit of %d", edges, o.maxEdges)
	}

	if got := uint64(len(lines) - 1); got != edges {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"header declares %d edges but %d edge lines follow", edges, got)
	}
	if nodes > uint64(maxInt) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "line 1: node count %d too large", nodes)
	}

	g := graph.New(int(nodes))
	for i, line := range lines[1:] {
		lineNo := i + 2
		edge, err := parseFields(line, lineNo, "src", "dst", "weight")
		if err != nil {
			return nil, err
		}
		src, dst, weight := edge[0], edge[1], edge[2]
		if src >= nodes || dst >= nodes {
			return nil, errors.New(errors.ErrCodeOutOfRange,
				"line %d: edge %d-%d references a node outside [0, %d)", lineNo, src, dst, nodes)
		}
		g.Link(int(src), int(dst), weight)
	}

	return g, nil
}

// ImportText reads a graph description from the file at path.
// It returns the same errors as [ReadText], plus open failures.
func ImportText(path string, opts ...ReadOption) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadText(f, opts...)
}

const maxInt = int(^uint(0) >> 1)

func readLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// parseFields splits line on whitespace and parses exactly len(names)
// non-negative integers.
func parseFields(line string, lineNo int, names ...string) ([]uint64, error) {
	tokens := strings.Fields(line)
	if len(tokens) != len(names) {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"line %d: expected %d tokens (%s), got %d", lineNo, len(names), strings.Join(names, " "), len(tokens))
	}

	values := make([]uint64, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.ParseUint(tok, 10, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d: invalid %s", lineNo, names[i])
		}
		values[i] = v
	}
	return values, nil
}
