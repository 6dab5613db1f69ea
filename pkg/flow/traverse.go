package flow

import (
	"context"
	"fmt"
	"math"

	"github.com/matzehuels/flowreach/pkg/errors"
	"github.com/matzehuels/flowreach/pkg/graph"
)

// Unreached marks a node that a traversal never reached.
const Unreached uint64 = math.MaxUint64

// maxCost is the largest finite cost. Sums that would exceed it saturate.
const maxCost = Unreached - 1

// Distances holds one cost per node, indexed by node. Entries are finite
// costs or [Unreached]; the entry for the traversal source is always 0.
type Distances []uint64

// Reached reports whether node has a finite cost.
func (d Distances) Reached(node int) bool {
	return d[node] != Unreached
}

type item struct {
	node int
	cost uint64
}

// Traverse runs the FIFO frontier expansion from src and returns the best
// cost recorded for every node. See the package documentation for how this
// differs from a shortest-path search.
//
// Traverse panics if src is not a node of g.
func Traverse(g *graph.Graph, src int) Distances {
	d, _ := traverse(g, src, bounds{}) // unbounded walks cannot fail
	return d
}

func traverse(g *graph.Graph, src int, b bounds) (Distances, error) {
	if !g.Contains(src) {
		panic(fmt.Sprintf("flow: invalid source %d (size %d)", src, g.Size()))
	}

	best := newDistances(g.Size(), src)

	seen := make([]bool, g.Size())
	seen[src] = true

	frontier := []item{{node: src, cost: 0}}
	for head := 0; head < len(frontier); head++ {
		if err := b.interrupted(head); err != nil {
			return nil, err
		}
		cur := frontier[head]
		seen[cur.node] = true
		best.relax(cur.node, cur.cost)

		for _, p := range g.Peers(cur.node) {
			cost := addCost(cur.cost, p.Weight)
			// The popped node, not the peer, takes the edge-extended candidate.
			best.relax(cur.node, cost)
			if !seen[p.Node] {
				frontier = append(frontier, item{node: p.Node, cost: cost})
				if err := b.exceeded(src, len(frontier)); err != nil {
					return nil, err
				}
			}
		}
	}

	return best, nil
}

// bounds limits a single traversal. The zero value imposes no limits.
type bounds struct {
	ctx context.Context
	// limit caps the items a traversal may enqueue; 0 means unlimited.
	limit int
}

// checkEvery is how many pops pass between context checks.
const checkEvery = 1 << 10

func (b bounds) interrupted(popped int) error {
	if b.ctx == nil || popped%checkEvery != 0 {
		return nil
	}
	return b.ctx.Err()
}

func (b bounds) exceeded(src, enqueued int) error {
	if b.limit <= 0 || enqueued <= b.limit {
		return nil
	}
	return errors.New(errors.ErrCodeLimitExceeded,
		"traversal from node %d exceeded the frontier limit of %d", src, b.limit)
}

func newDistances(n, src int) Distances {
	d := make(Distances, n)
	for i := range d {
		d[i] = Unreached
	}
	d[src] = 0
	return d
}

// relax lowers d[node] to cost if cost is smaller.
func (d Distances) relax(node int, cost uint64) bool {
	if cost < d[node] {
		d[node] = cost
		return true
	}
	return false
}

func addCost(a, b uint64) uint64 {
	if b > maxCost || a > maxCost-b {
		return maxCost
	}
	return a + b
}
