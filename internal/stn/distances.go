package stn

import (
	"context"

	"github.com/vk/stnsched/internal/event"
	"github.com/vk/stnsched/internal/johnson"
)

// Distances is the all-pairs shortest-path snapshot of a network.
type Distances struct {
	numTasks int
	res      johnson.Result
}

// Solve runs the distance-graph algorithm over the current network.
func (n *Network) Solve(ctx context.Context, opts johnson.Options) (Distances, error) {
	res, err := johnson.Solve(ctx, n.g, opts)
	if err != nil {
		return Distances{}, err
	}
	return Distances{numTasks: n.numTasks, res: res}, nil
}

// Feasible reports whether the network had no negative cycle.
func (d Distances) Feasible() bool {
	return d.res.Feasible
}

// NumTasks returns the number of real tasks in the solved network.
func (d Distances) NumTasks() int {
	return d.numTasks
}

// Between returns the shortest distance from one event to another. ok is
// false when the target is unreachable or the snapshot is infeasible.
func (d Distances) Between(from, to event.Event) (float64, bool) {
	if !d.res.Feasible {
		return 0, false
	}
	return d.res.Distance(from.Index(), to.Index())
}

// EarliestStart returns the earliest time task can start, -d(s_task, s000).
func (d Distances) EarliestStart(task int) float64 {
	return d.earliest(event.Start(task))
}

// EarliestFinish returns the earliest time task can finish, -d(f_task, s000).
func (d Distances) EarliestFinish(task int) float64 {
	return d.earliest(event.Finish(task))
}

func (d Distances) earliest(e event.Event) float64 {
	w, ok := d.Between(e, event.Origin)
	if !ok {
		return 0
	}
	return -w
}
