// Package digraph is a small weighted directed graph over dense integer node
// indices. It is the storage layer under the temporal network: every edge
// (u, v, w) stands for the difference constraint `t(v) - t(u) <= w`.
//
// Parallel constraints between the same ordered pair collapse into one edge.
// Two write primitives cover every caller:
//
//   - Tighten keeps the smallest weight ever offered for a pair, so repeated
//     or looser bounds never overwrite a tighter one.
//   - Set replaces the stored weight unconditionally, used when a bound
//     becomes an exact, known value.
//
// A Graph is not safe for concurrent mutation. Clone produces an independent
// deep copy for what-if probing.
package digraph
