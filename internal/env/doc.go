// Package env runs one scheduling episode over a problem instance.
//
// An Env owns the canonical temporal constraint network and the partial
// solution. Insert is the only mutating operation: it places a task at the end
// of a robot's sequence, re-solves the network, and reports feasibility, the
// shaped reward, the new makespan estimate and whether the episode is over.
// An infeasible insertion is a terminal outcome, not an error.
//
// Query methods never modify the canonical state; what-if evaluations such as
// RobotNetwork work on private copies.
package env
