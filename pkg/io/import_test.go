package io

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/flowreach/pkg/errors"
	"github.com/matzehuels/flowreach/pkg/graph"
)

func TestReadText(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantNodes int
		wantEdges []graph.Edge
	}{
		{
			name:      "duplicate triangle",
			input:     "3 4\n0 1 200\n1 2 350\n0 2 500\n1 2 600\n",
			wantNodes: 3,
			wantEdges: []graph.Edge{{Src: 0, Dst: 1, Weight: 200}, {Src: 1, Dst: 2, Weight: 350}, {Src: 0, Dst: 2, Weight: 500}, {Src: 1, Dst: 2, Weight: 600}},
		},
		{
			name:      "no trailing newline",
			input:     "2 1\n0 1 5",
			wantNodes: 2,
			wantEdges: []graph.Edge{{Src: 0, Dst: 1, Weight: 5}},
		},
		{
			name:      "crlf and extra spaces",
			input:     "2 1\r\n  0\t1   5  \r\n",
			wantNodes: 2,
			wantEdges: []graph.Edge{{Src: 0, Dst: 1, Weight: 5}},
		},
		{
			name:      "empty graph",
			input:     "0 0\n",
			wantNodes: 0,
		},
		{
			name:      "nodes without edges",
			input:     "4 0",
			wantNodes: 4,
		},
		{
			name:      "self loop and zero weight",
			input:     "1 1\n0 0 0\n",
			wantNodes: 1,
			wantEdges: []graph.Edge{{Src: 0, Dst: 0, Weight: 0}},
		},
		{
			name:      "max weight",
			input:     "2 1\n0 1 18446744073709551615\n",
			wantNodes: 2,
			wantEdges: []graph.Edge{{Src: 0, Dst: 1, Weight: ^uint64(0)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadText(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.wantNodes, g.Size())
			if len(tt.wantEdges) == 0 {
				assert.Empty(t, g.Edges())
				return
			}
			assert.Equal(t, tt.wantEdges, g.Edges())
		})
	}
}

func TestReadTextErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
		wantMsg  string
	}{
		{"empty input", "", errors.ErrCodeInvalidInput, "missing header"},
		{"header one token", "3\n", errors.ErrCodeInvalidInput, "line 1: expected 2 tokens"},
		{"header three tokens", "3 0 1\n", errors.ErrCodeInvalidInput, "line 1: expected 2 tokens"},
		{"header not a number", "three 0\n", errors.ErrCodeInvalidInput, "line 1: invalid nodeCount"},
		{"negative count", "-1 0\n", errors.ErrCodeInvalidInput, "line 1: invalid nodeCount"},
		{"fewer edge lines", "3 2\n0 1 5\n", errors.ErrCodeInvalidInput, "declares 2 edges but 1"},
		{"more edge lines", "3 1\n0 1 5\n1 2 5\n", errors.ErrCodeInvalidInput, "declares 1 edges but 2"},
		{"blank trailing line", "2 1\n0 1 5\n\n", errors.ErrCodeInvalidInput, "declares 1 edges but 2"},
		{"edge two tokens", "2 1\n0 1\n", errors.ErrCodeInvalidInput, "line 2: expected 3 tokens"},
		{"edge bad weight", "2 1\n0 1 x\n", errors.ErrCodeInvalidInput, "line 2: invalid weight"},
		{"weight overflow", "2 1\n0 1 18446744073709551616\n", errors.ErrCodeInvalidInput, "line 2: invalid weight"},
		{"src out of range", "2 2\n0 1 5\n2 0 5\n", errors.ErrCodeOutOfRange, "line 3: edge 2-0"},
		{"dst out of range", "2 1\n0 9 5\n", errors.ErrCodeOutOfRange, "line 2: edge 0-9"},
		{"edge in empty graph", "0 1\n0 0 1\n", errors.ErrCodeOutOfRange, "line 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadText(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, g)
			assert.Equal(t, tt.wantCode, errors.GetCode(err), "error: %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestImportText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte("2 1\n0 1 3\n"), 0644))

	g, err := ImportText(path)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())

	_, err = ImportText(filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadTextLimits(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		opts    []ReadOption
		wantMsg string
	}{
		{"huge node count", "3000000000 0\n", []ReadOption{WithMaxNodes(1000)}, "3000000000 nodes exceeds the limit of 1000"},
		{"too many edges", "3 4\n0 1 1\n1 2 1\n0 2 1\n1 2 1\n", []ReadOption{WithMaxEdges(3)}, "4 edges exceeds the limit of 3"},
		{"limits checked before line count", "5 9\n", []ReadOption{WithMaxEdges(3)}, "9 edges"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadText(strings.NewReader(tt.input), tt.opts...)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.Equal(t, errors.ErrCodeLimitExceeded, errors.GetCode(err), "error: %v", err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestReadTextWithinLimits(t *testing.T) {
	g, err := ReadText(strings.NewReader("3 2\n0 1 1\n1 2 1\n"), WithMaxNodes(3), WithMaxEdges(2))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, 2, g.EdgeCount())

	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte("4 0\n"), 0644))
	_, err = ImportText(path, WithMaxNodes(3))
	assert.True(t, errors.Is(err, errors.ErrCodeLimitExceeded))
}
