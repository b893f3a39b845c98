package johnson

import (
	"container/heap"

	"github.com/vk/stnsched/internal/digraph"
)

// frontierItem is a tentative distance in the Dijkstra priority queue.
type frontierItem struct {
	node int
	dist float64
}

// frontier implements heap.Interface with lazy deletion of stale entries.
type frontier []frontierItem

func (f frontier) Len() int           { return len(f) }
func (f frontier) Less(i, j int) bool { return f[i].dist < f[j].dist }
func (f frontier) Swap(i, j int)      { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any) {
	*f = append(*f, x.(frontierItem))
}
func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	x := old[n-1]
	*f = old[0 : n-1]
	return x
}

// shortestFrom computes reweighted distances from src and writes the
// recovered true distances into row.
func shortestFrom(g *digraph.Graph, h []float64, src int, row []float64) {
	reweighted := make([]float64, g.Len())
	for i := range reweighted {
		reweighted[i] = Unbounded
	}
	done := make([]bool, g.Len())

	reweighted[src] = 0
	open := &frontier{{node: src, dist: 0}}
	for open.Len() > 0 {
		cur := heap.Pop(open).(frontierItem)
		if done[cur.node] {
			continue
		}
		done[cur.node] = true

		u := cur.node
		g.Successors(u, func(v int, w float64) {
			if done[v] {
				return
			}
			if d := cur.dist + w + h[u] - h[v]; d < reweighted[v] {
				reweighted[v] = d
				heap.Push(open, frontierItem{node: v, dist: d})
			}
		})
	}

	for v, d := range reweighted {
		switch {
		case d == Unbounded:
			row[v] = Unbounded
		case v == src:
			row[v] = d
		default:
			row[v] = d + h[v] - h[src]
		}
	}
}
