// Package johnson computes all-pairs shortest distances over a graph of
// difference constraints, or reports that the constraints are contradictory.
//
// # Algorithm
//
// Solve follows Johnson's method, extended to return the recovered distances
// rather than only shortest-path trees:
//
//  1. Bellman-Ford from a virtual source joined to every node by a zero-weight
//     edge yields a potential h(v) per node. If relaxation still improves a
//     node after |V| rounds, a negative cycle exists and the result is
//     infeasible.
//  2. Every edge (u, v, w) is reweighted to w + h(u) - h(v) >= 0.
//  3. Dijkstra runs from every node over the reweighted edges.
//  4. True distances are recovered as d(u, v) = d'(u, v) + h(v) - h(u) for
//     u != v; d(v, v) keeps the Dijkstra value.
//
// Unreachable pairs have no distance: Result.Distance reports ok=false for
// them, which callers read as "unbounded".
//
// # Cost and parallelism
//
// One solve costs O(V*E) for the potentials plus V Dijkstra passes. The
// per-source passes only read the graph and the potentials, so Options.Workers
// may spread them across goroutines; the result is identical either way.
package johnson
