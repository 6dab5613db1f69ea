package flow

import (
	"context"
	"time"

	"github.com/matzehuels/flowreach/pkg/graph"
	"github.com/matzehuels/flowreach/pkg/observability"
)

// Metric summarises one traversal.
type Metric struct {
	// MaxDistance is the largest finite non-zero cost, or 0 if none.
	MaxDistance uint64 `json:"max_distance"`
	// Reachable counts the nodes with a finite non-zero cost.
	Reachable int `json:"reachable"`
}

// Report holds one Metric per source node, indexed by node.
type Report []Metric

// Reduce folds a distance vector into a Metric. Unreached entries and zero
// entries (the source, and anything reached at no cost) are ignored.
func Reduce(d Distances) Metric {
	var m Metric
	for _, cost := range d {
		if cost == Unreached || cost == 0 {
			continue
		}
		m.Reachable++
		if cost > m.MaxDistance {
			m.MaxDistance = cost
		}
	}
	return m
}

// Option configures [Compute].
type Option func(*options)

type options struct {
	mode          Mode
	frontierLimit int
}

// WithMode selects the traversal. Unknown modes fall back to [ModeFrontier];
// validate user input with [ParseMode] first.
func WithMode(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// WithFrontierLimit caps the number of items a single traversal may
// enqueue. A traversal that goes past it makes [Compute] fail with
// LIMIT_EXCEEDED. n <= 0 means unlimited, the default.
//
// The FIFO frontier can enqueue a node once per neighbour popped before it,
// so on densely layered graphs its size grows exponentially with depth.
func WithFrontierLimit(n int) Option {
	return func(o *options) { o.frontierLimit = n }
}

// Compute traverses g from every node in index order and returns the
// resulting report. An empty graph yields an empty, non-nil report.
//
// Compute checks ctx between traversals and periodically within them, and
// returns ctx.Err() once it is cancelled.
func Compute(ctx context.Context, g *graph.Graph, opts ...Option) (Report, error) {
	o := options{mode: ModeFrontier}
	for _, opt := range opts {
		opt(&o)
	}
	if o.mode != ModeShortest {
		o.mode = ModeFrontier
	}
	walk := o.mode.traversal()
	b := bounds{ctx: ctx, limit: o.frontierLimit}
	hooks := observability.Engine()
	mode := string(o.mode)

	start := time.Now()
	hooks.OnReportStart(ctx, mode, g.Size())

	report := make(Report, g.Size())
	for src := range report {
		if err := ctx.Err(); err != nil {
			hooks.OnReportComplete(ctx, mode, g.Size(), time.Since(start), err)
			return nil, err
		}
		t := time.Now()
		d, err := walk(g, src, b)
		if err != nil {
			hooks.OnReportComplete(ctx, mode, g.Size(), time.Since(start), err)
			return nil, err
		}
		report[src] = Reduce(d)
		hooks.OnTraversal(ctx, mode, src, report[src].Reachable, time.Since(t))
	}

	hooks.OnReportComplete(ctx, mode, g.Size(), time.Since(start), nil)
	return report, nil
}

// Summary describes a whole report.
type Summary struct {
	Nodes int
	// Farthest is the node with the largest MaxDistance (lowest index on
	// ties), or -1 for an empty report.
	Farthest    int
	MaxDistance uint64
	// Isolated counts nodes that reach no other node.
	Isolated int
}

// Summary computes aggregate figures over the report.
func (r Report) Summary() Summary {
	s := Summary{Nodes: len(r), Farthest: -1}
	for i, m := range r {
		if m.Reachable == 0 {
			s.Isolated++
		}
		if s.Farthest < 0 || m.MaxDistance > s.MaxDistance {
			s.Farthest = i
			s.MaxDistance = m.MaxDistance
		}
	}
	return s
}
