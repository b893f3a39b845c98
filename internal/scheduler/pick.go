package scheduler

import (
	"slices"

	"github.com/vk/stnsched/internal/stn"
)

// PickRobot returns the free, non-excluded robot that minimizes the policy's
// duration statistic, preferring the lowest id on ties. ok is false when no
// robot is free or there are no tasks to measure against.
func (t *Team) PickRobot(e Environment, at float64, policy Policy, exclude []int) (robot int, ok bool, err error) {
	var tasks []int
	if policy == PolicyValid {
		tasks = e.ValidTasksAt(at)
	} else {
		tasks = e.UnscheduledTasks()
	}
	if len(tasks) == 0 {
		return 0, false, nil
	}

	best := 0.0
	for _, id := range t.Available(at) {
		if slices.Contains(exclude, id) {
			continue
		}
		durs, err := e.DurationsOn(id, tasks)
		if err != nil {
			return 0, false, err
		}
		score := statistic(policy, durs)
		if !ok || score < best {
			robot, best, ok = id, score, true
		}
	}
	return robot, ok, nil
}

func statistic(policy Policy, durs []int) float64 {
	if policy == PolicyMin {
		return float64(slices.Min(durs))
	}
	sum := 0
	for _, d := range durs {
		sum += d
	}
	return float64(sum) / float64(len(durs))
}

// PickTask applies earliest-deadline-first: among tasks it picks the one
// with the smallest earliest finish in dn, first listed on ties. ok is false
// when tasks is empty or the chosen task cannot start by the time point.
func PickTask(dn *stn.DistanceNetwork, tasks []int, at float64) (task int, ok bool) {
	if len(tasks) == 0 {
		return 0, false
	}

	best := 0.0
	for i, k := range tasks {
		ef, _ := dn.EarliestFinish(k)
		if i == 0 || ef < best {
			task, best = k, ef
		}
	}

	es, _ := dn.EarliestStart(task)
	if es > at {
		return 0, false
	}
	return task, true
}
