package johnson

import "github.com/vk/stnsched/internal/digraph"

// potentials runs Bellman-Ford from a virtual source connected to every node
// with weight 0. It returns false if a negative cycle is reachable.
func potentials(g *digraph.Graph, edges []digraph.Edge) ([]float64, bool) {
	n := g.Len()
	h := make([]float64, n) // Distance from the virtual source, initially 0.
	if n == 0 {
		return h, true
	}

	// With the virtual source there are n+1 nodes, so every shortest path has
	// at most n edges and n rounds are enough for a quiet round to appear.
	for round := 0; round < n; round++ {
		changed := false
		for _, e := range edges {
			if d := h[e.From] + e.Weight; d < h[e.To] {
				h[e.To] = d
				changed = true
			}
		}
		if !changed {
			return h, true
		}
	}
	return nil, false
}
