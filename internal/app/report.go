package app

import (
	"github.com/vk/stnsched/internal/env"
	"github.com/vk/stnsched/internal/replay"
	"github.com/vk/stnsched/internal/scheduler"
	"github.com/vk/stnsched/internal/stn"
)

// Report is the outcome of one instance, written to the trace as one YAML
// document.
type Report struct {
	Instance        string             `yaml:"instance"`
	Source          string             `yaml:"source"`
	Mode            string             `yaml:"mode"`
	Policy          string             `yaml:"policy,omitempty"`
	Feasible        bool               `yaml:"feasible"`
	Done            bool               `yaml:"done"`
	InitialMakespan float64            `yaml:"initial_makespan"`
	Makespan        float64            `yaml:"makespan"`
	TotalReward     float64            `yaml:"total_reward"`
	Steps           []StepRecord       `yaml:"steps,omitempty"`
	Sequences       [][]int            `yaml:"sequences,omitempty"`
	Schedules       [][]scheduler.Slot `yaml:"schedules,omitempty"`
	Network         []stn.Constraint   `yaml:"network,omitempty"`
	Error           string             `yaml:"error,omitempty"`
}

// StepRecord is one insertion in a report.
type StepRecord struct {
	Step     int      `yaml:"step"`
	Task     int      `yaml:"task"`
	Robot    int      `yaml:"robot"`
	Feasible bool     `yaml:"feasible"`
	Reward   float64  `yaml:"reward"`
	Return   *float64 `yaml:"return,omitempty"`
	Makespan float64  `yaml:"makespan"`
	Done     bool     `yaml:"done"`
}

func fromSteps(steps []env.Step) []StepRecord {
	out := make([]StepRecord, len(steps))
	for i, s := range steps {
		out[i] = StepRecord{
			Step:     i,
			Task:     s.Task,
			Robot:    s.Robot,
			Feasible: s.Feasible,
			Reward:   s.Reward,
			Makespan: s.Makespan,
			Done:     s.Done,
		}
	}
	return out
}

func fromTransitions(ts []replay.Transition) []StepRecord {
	out := make([]StepRecord, len(ts))
	for i, t := range ts {
		ret := t.Return
		out[i] = StepRecord{
			Step:     t.Step,
			Task:     t.Task,
			Robot:    t.Robot,
			Feasible: t.Feasible,
			Reward:   t.Reward,
			Return:   &ret,
			Makespan: t.Makespan,
			Done:     t.Done,
		}
	}
	return out
}

func (r *Report) sumRewards() {
	r.TotalReward = 0
	for _, s := range r.Steps {
		r.TotalReward += s.Reward
	}
}
