package digraph

// Graph is a weighted digraph with nodes 0..n-1.
type Graph struct {
	// out[u][v] holds the weight of edge u -> v.
	out []map[int]float64
	// edges counts stored edges across all nodes.
	edges int
}

// Edge is a single weighted arc, used for enumeration and export.
type Edge struct {
	From   int
	To     int
	Weight float64
}
