package johnson

import "math"

// Unbounded marks a pair of nodes with no path between them.
var Unbounded = math.Inf(1)

// Result is the outcome of Solve. When Feasible is false no distances are
// available.
type Result struct {
	Feasible bool
	// dist[u][v] is the shortest distance from u to v, Unbounded if none.
	dist [][]float64
	// potential is the Bellman-Ford potential h per node.
	potential []float64
}

// Infeasible is the result for a network with a negative cycle.
func Infeasible() Result {
	return Result{Feasible: false}
}

// Len returns the number of nodes covered by the result.
func (r Result) Len() int {
	return len(r.dist)
}

// Distance returns the shortest distance from u to v. ok is false when the
// result is infeasible or v is unreachable from u.
func (r Result) Distance(u, v int) (float64, bool) {
	if !r.Feasible {
		return 0, false
	}
	d := r.dist[u][v]
	if math.IsInf(d, 1) {
		return 0, false
	}
	return d, true
}

// Potential returns the node potentials computed in the relaxation pass.
// They form one feasible assignment of times to events.
func (r Result) Potential() []float64 {
	out := make([]float64, len(r.potential))
	copy(out, r.potential)
	return out
}
