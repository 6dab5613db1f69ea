package io

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/flowreach/pkg/errors"
	"github.com/matzehuels/flowreach/pkg/flow"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Formats lists the accepted output format names.
var Formats = []string{FormatText, FormatJSON}

// ValidateFormat returns an INVALID_FORMAT error for unknown format names.
func ValidateFormat(format string) error {
	return errors.ValidateChoice(errors.ErrCodeInvalidFormat, "format", format, Formats...)
}

type report struct {
	Nodes []nodeReport `json:"nodes"`
}

type nodeReport struct {
	Node int `json:"node"`
	flow.Metric
}

// WriteText writes one line per node: "node <i>: time <max>, nodes <count>".
func WriteText(w io.Writer, r flow.Report) error {
	bw := bufio.NewWriter(w)
	for node, m := range r {
		if _, err := fmt.Fprintf(bw, "node %d: time %d, nodes %d\n", node, m.MaxDistance, m.Reachable); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteJSON encodes the report as an indented JSON object with a "nodes"
// array in node order. An empty report encodes as {"nodes": []}.
func WriteJSON(w io.Writer, r flow.Report) error {
	out := report{Nodes: make([]nodeReport, len(r))}
	for node, m := range r {
		out.Nodes[node] = nodeReport{Node: node, Metric: m}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// Write writes r to w in the named format.
func Write(w io.Writer, format string, r flow.Report) error {
	switch format {
	case FormatText:
		return WriteText(w, r)
	case FormatJSON:
		return WriteJSON(w, r)
	default:
		return ValidateFormat(format)
	}
}

// ExportFile writes r to the file at path in the named format.
func ExportFile(path, format string, r flow.Report) error {
	if err := ValidateFormat(format); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(f, format, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
