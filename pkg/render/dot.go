package render

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/flowreach/pkg/errors"
	"github.com/matzehuels/flowreach/pkg/flow"
	"github.com/matzehuels/flowreach/pkg/graph"
)

// Output formats.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// Formats lists the accepted render format names.
var Formats = []string{FormatDOT, FormatSVG}

// Options configures node-link rendering.
type Options struct {
	// HideWeights omits edge weight labels.
	HideWeights bool
	// Layout is the Graphviz layout engine attribute; empty means "neato".
	Layout string
}

// ToDOT converts g to Graphviz DOT format. When report is non-nil it must
// hold one metric per node; metrics are added to the node labels.
func ToDOT(g *graph.Graph, report flow.Report, opts Options) string {
	layout := opts.Layout
	if layout == "" {
		layout = "neato"
	}

	farthest := -1
	if len(report) > 0 {
		if s := report.Summary(); s.MaxDistance > 0 {
			farthest = s.Farthest
		}
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	fmt.Fprintf(&buf, "  layout=%q;\n", layout)
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=10, color=\"#555555\"];\n")
	buf.WriteString("\n")

	for node := 0; node < g.Size(); node++ {
		attrs := []string{fmt.Sprintf("label=%q", fmtLabel(node, report))}
		attrs = append(attrs, fmtAttrs(node, report, farthest)...)
		fmt.Fprintf(&buf, "  %d [%s];\n", node, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if opts.HideWeights {
			fmt.Fprintf(&buf, "  %d -- %d;\n", e.Src, e.Dst)
			continue
		}
		fmt.Fprintf(&buf, "  %d -- %d [label=%q];\n", e.Src, e.Dst, strconv.FormatUint(e.Weight, 10))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(node int, report flow.Report) string {
	if node >= len(report) {
		return strconv.Itoa(node)
	}
	m := report[node]
	return fmt.Sprintf("%d\nmax %d\nreach %d", node, m.MaxDistance, m.Reachable)
}

func fmtAttrs(node int, report flow.Report, farthest int) []string {
	switch {
	case node == farthest:
		return []string{"fillcolor=\"#5fafaf\"", "fontcolor=white"}
	case node < len(report) && report[node].Reachable == 0:
		return []string{"style=\"filled,dashed\"", "fillcolor=lightgrey"}
	}
	return nil
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

// Render produces the named format for g and report.
func Render(ctx context.Context, format string, g *graph.Graph, report flow.Report, opts Options) ([]byte, error) {
	dot := ToDOT(g, report, opts)
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return RenderSVG(ctx, dot)
	default:
		return nil, errors.ValidateChoice(errors.ErrCodeInvalidFormat, "render format", format, Formats...)
	}
}

// FormatFromPath infers the render format from a file extension,
// defaulting to SVG.
func FormatFromPath(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".dot") || strings.HasSuffix(strings.ToLower(path), ".gv") {
		return FormatDOT
	}
	return FormatSVG
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the drawing scales with its
// container and starts at the origin.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(root))
}
