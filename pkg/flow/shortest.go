package flow

import (
	"container/heap"
	"fmt"

	"github.com/matzehuels/flowreach/pkg/graph"
)

// Shortest computes minimum-weight distances from src with a binary-heap
// Dijkstra search. Unlike [Traverse] it relaxes the neighbour of each
// settled node, so every finite entry is a true shortest-path cost.
//
// Shortest panics if src is not a node of g.
func Shortest(g *graph.Graph, src int) Distances {
	d, _ := shortest(g, src, bounds{}) // unbounded walks cannot fail
	return d
}

func shortest(g *graph.Graph, src int, b bounds) (Distances, error) {
	if !g.Contains(src) {
		panic(fmt.Sprintf("flow: invalid source %d (size %d)", src, g.Size()))
	}

	dist := newDistances(g.Size(), src)
	done := make([]bool, g.Size())

	pq := &queue{{node: src, cost: 0}}
	pushed := 1
	for popped := 0; pq.Len() > 0; popped++ {
		if err := b.interrupted(popped); err != nil {
			return nil, err
		}
		cur := heap.Pop(pq).(item)
		if done[cur.node] {
			continue
		}
		done[cur.node] = true

		for _, p := range g.Peers(cur.node) {
			if done[p.Node] {
				continue
			}
			cost := addCost(cur.cost, p.Weight)
			if dist.relax(p.Node, cost) {
				heap.Push(pq, item{node: p.Node, cost: cost})
				pushed++
				if err := b.exceeded(src, pushed); err != nil {
					return nil, err
				}
			}
		}
	}

	return dist, nil
}

// queue is a min-heap of items ordered by cost, then node index.
type queue []item

func (q queue) Len() int { return len(q) }

func (q queue) Less(i, j int) bool {
	if q[i].cost != q[j].cost {
		return q[i].cost < q[j].cost
	}
	return q[i].node < q[j].node
}

func (q queue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *queue) Push(x any) { *q = append(*q, x.(item)) }

func (q *queue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}
