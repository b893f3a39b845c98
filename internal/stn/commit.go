package stn

import (
	"fmt"

	"github.com/vk/stnsched/internal/event"
)

// Commitment describes placing Task at the end of a robot's sequence.
type Commitment struct {
	Task int
	// After is the robot's previous last task, 0 if the robot was idle.
	After int
	// Duration is the committing robot's time for Task.
	Duration float64
	// Pending lists the tasks not yet committed, Task excluded.
	Pending []int
	// Nearby is the subset of Pending located within the proximity
	// threshold of Task.
	Nearby []int
}

// Commit applies a commitment to the network:
//
//  1. Task starts no earlier than After finishes (s_task -> f_after, 0).
//  2. Task's duration is pinned to Duration in both directions.
//  3. Every pending task starts no earlier than Task starts.
//  4. Every nearby pending task starts no earlier than Task finishes.
//
// Edges from rules 1, 3 and 4 only ever tighten existing constraints.
func (n *Network) Commit(c Commitment) error {
	if err := n.checkReal(c.Task); err != nil {
		return err
	}
	if err := n.checkAny(c.After); err != nil {
		return err
	}
	if c.After == c.Task {
		return fmt.Errorf("task %d cannot follow itself", c.Task)
	}

	t := c.Task
	if c.After != 0 {
		n.tighten(event.Start(t), event.Finish(c.After), 0)
	}

	n.set(event.Start(t), event.Finish(t), c.Duration)
	n.set(event.Finish(t), event.Start(t), -c.Duration)

	for _, k := range c.Pending {
		if err := n.checkReal(k); err != nil {
			return err
		}
		n.tighten(event.Start(k), event.Start(t), 0)
	}
	for _, k := range c.Nearby {
		if err := n.checkReal(k); err != nil {
			return err
		}
		n.tighten(event.Start(k), event.Finish(t), 0)
	}
	return nil
}

// WithDurations returns a copy of the network in which each listed task's
// duration is pinned to the given value. The receiver is not modified.
func (n *Network) WithDurations(durations map[int]float64) (*Network, error) {
	c := n.Clone()
	for task, d := range durations {
		if err := c.FixDuration(task, d); err != nil {
			return nil, err
		}
	}
	return c, nil
}
