package digraph

import "sort"

// New creates a graph with n isolated nodes.
func New(n int) *Graph {
	out := make([]map[int]float64, n)
	for i := range out {
		out[i] = make(map[int]float64)
	}
	return &Graph{out: out}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.out)
}

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}

// Set stores w as the weight of from -> to, replacing any previous weight.
// Node indices must be in [0, Len()).
func (g *Graph) Set(from, to int, w float64) {
	if _, ok := g.out[from][to]; !ok {
		g.edges++
	}
	g.out[from][to] = w
}

// Tighten stores w for from -> to only if no edge exists yet or w is
// smaller than the stored weight. It reports whether the graph changed.
func (g *Graph) Tighten(from, to int, w float64) bool {
	old, ok := g.out[from][to]
	if ok && old <= w {
		return false
	}
	if !ok {
		g.edges++
	}
	g.out[from][to] = w
	return true
}

// Weight returns the weight of from -> to and whether the edge exists.
func (g *Graph) Weight(from, to int) (float64, bool) {
	w, ok := g.out[from][to]
	return w, ok
}

// Has reports whether the edge from -> to exists.
func (g *Graph) Has(from, to int) bool {
	_, ok := g.out[from][to]
	return ok
}

// Successors calls fn for every outgoing edge of u, in no particular order.
func (g *Graph) Successors(u int, fn func(v int, w float64)) {
	for v, w := range g.out[u] {
		fn(v, w)
	}
}

// Edges returns every edge sorted by (From, To).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for u, succ := range g.out {
		for v, w := range succ {
			edges = append(edges, Edge{From: u, To: v, Weight: w})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})
	return edges
}

// Clone returns a deep copy that shares no state with g.
func (g *Graph) Clone() *Graph {
	out := make([]map[int]float64, len(g.out))
	for u, succ := range g.out {
		cp := make(map[int]float64, len(succ))
		for v, w := range succ {
			cp[v] = w
		}
		out[u] = cp
	}
	return &Graph{out: out, edges: g.edges}
}
