package stn

import (
	"github.com/vk/stnsched/internal/config"
)

// Build constructs the initial network for an instance: the skeleton from
// New, every task's duration range across the team, the deadlines and the
// waits. The instance is assumed to have passed config validation.
func Build(inst *config.Instance, horizon float64) (*Network, error) {
	n := New(inst.NumTasks(), horizon)

	for t := 1; t <= inst.NumTasks(); t++ {
		lo, hi := inst.DurationRange(t)
		if err := n.SetDurationRange(t, float64(lo), float64(hi)); err != nil {
			return nil, err
		}
	}
	for _, d := range inst.Deadlines {
		if err := n.AddDeadline(d.Task, float64(d.Bound)); err != nil {
			return nil, err
		}
	}
	for _, w := range inst.Waits {
		if err := n.AddWait(w.Task, w.After, float64(w.Gap)); err != nil {
			return nil, err
		}
	}
	return n, nil
}
