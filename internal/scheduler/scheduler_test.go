package scheduler

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/stnsched/internal/config"
	"github.com/vk/stnsched/internal/ctxlog"
	"github.com/vk/stnsched/internal/env"
	"github.com/vk/stnsched/internal/testutil"
)

func testContext() context.Context {
	return ctxlog.Discard(context.Background())
}

func newEnv(t *testing.T, inst *config.Instance) *env.Env {
	t.Helper()
	if inst.Locations == nil {
		inst.Locations = testutil.NewInstance(t.Name(), inst.Durations...).Build().Locations
	}
	inst.Name = t.Name()
	e, err := env.New(testContext(), inst, env.DefaultOptions())
	require.NoError(t, err)
	return e
}

func TestParsePolicy(t *testing.T) {
	testCases := []struct {
		in      string
		want    Policy
		wantErr bool
	}{
		{in: "average", want: PolicyAverage},
		{in: "min", want: PolicyMin},
		{in: "valid", want: PolicyValid},
		{in: "v1", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePolicy(tc.in)
			if tc.wantErr {
				assert.ErrorContains(t, err, "unknown robot policy")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.in, got.String())
		})
	}
	assert.Equal(t, "Policy(9)", Policy(9).String())
}

func TestTeam_AvailabilityAndUpdate(t *testing.T) {
	team := NewTeam(3)
	assert.Equal(t, []int{0, 1, 2}, team.Available(0))

	team.Update(4, 1, 5, 2)
	assert.Equal(t, []int{0, 2}, team.Available(6))
	assert.Equal(t, []int{0, 1, 2}, team.Available(7))
	assert.Equal(t, 7.0, team.Robot(1).NextAvailable)

	want := [][]Slot{nil, {{Task: 4, Start: 2, End: 7}}, nil}
	if diff := cmp.Diff(want, team.Schedules()); diff != "" {
		t.Errorf("Schedules() mismatch (-want +got):\n%s", diff)
	}
}

func TestPickRobot_Policies(t *testing.T) {
	// Task 2 waits for task 1, so only task 1 is valid at time 0.
	inst := &config.Instance{
		Durations: [][]int{{4, 5, 3}, {4, 1, 3}},
		Waits:     []config.Wait{{Task: 2, After: 1, Gap: 5}},
	}

	testCases := []struct {
		name    string
		policy  Policy
		exclude []int
		busy    []int
		want    int
		wantOK  bool
	}{
		{name: "average ties break on lowest id", policy: PolicyAverage, want: 1, wantOK: true},
		{name: "min", policy: PolicyMin, want: 1, wantOK: true},
		{name: "valid tasks only", policy: PolicyValid, want: 2, wantOK: true},
		{name: "excluded robot skipped", policy: PolicyAverage, exclude: []int{1}, want: 2, wantOK: true},
		{name: "busy robot skipped", policy: PolicyMin, busy: []int{1}, want: 2, wantOK: true},
		{name: "nobody free", policy: PolicyAverage, busy: []int{0, 1, 2}, wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			e := newEnv(t, inst)
			team := NewTeam(3)
			for _, r := range tc.busy {
				team.Update(0, r, 10, 0)
			}

			got, ok, err := team.PickRobot(e, 0, tc.policy, tc.exclude)
			require.NoError(t, err)
			require.Equal(t, tc.wantOK, ok)
			if ok {
				assert.Equal(t, tc.want, got)
			}
		})
	}
}

func TestPickRobot_NoTasks(t *testing.T) {
	e := newEnv(t, &config.Instance{Durations: [][]int{{1}}})
	_, err := e.Insert(testContext(), 1, 0)
	require.NoError(t, err)

	_, ok, err := NewTeam(1).PickRobot(e, 0, PolicyAverage, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPickTask_EarliestFinishFirst(t *testing.T) {
	// Task 2 cannot start before 3 but finishes before task 1.
	e := newEnv(t, &config.Instance{
		Durations: [][]int{{10}, {1}, {1}},
		Waits:     []config.Wait{{Task: 2, After: 3, Gap: 2}},
	})
	dn, err := e.RobotNetwork(testContext(), 0, []int{1, 2, 3})
	require.NoError(t, err)
	require.NotNil(t, dn)

	testCases := []struct {
		name   string
		tasks  []int
		at     float64
		want   int
		wantOK bool
	}{
		{name: "no candidates", tasks: nil, at: 0},
		{name: "tightest task not yet startable", tasks: []int{1, 2}, at: 0},
		{name: "tightest task startable", tasks: []int{1, 2}, at: 3, want: 2, wantOK: true},
		{name: "global minimum", tasks: []int{1, 2, 3}, at: 0, want: 3, wantOK: true},
		{name: "single candidate", tasks: []int{1}, at: 0, want: 1, wantOK: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PickTask(dn, tc.tasks, tc.at)
			require.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRollout_SingleRobot(t *testing.T) {
	e := newEnv(t, &config.Instance{Durations: [][]int{{3}, {5}}})

	res, err := Rollout(testContext(), e, PolicyAverage)
	require.NoError(t, err)

	assert.True(t, res.Feasible)
	assert.True(t, res.Done)
	assert.Equal(t, 8.0, res.Makespan)
	require.Len(t, res.Steps, 2)
	assert.Equal(t, 1, res.Steps[0].Task)
	assert.Equal(t, 2, res.Steps[1].Task)

	want := [][]Slot{{{Task: 1, Start: 0, End: 3}, {Task: 2, Start: 3, End: 8}}}
	if diff := cmp.Diff(want, res.Schedules); diff != "" {
		t.Errorf("Schedules mismatch (-want +got):\n%s", diff)
	}
}

func TestRollout_SpecialistRobots(t *testing.T) {
	e := newEnv(t, &config.Instance{Durations: [][]int{{2, 9}, {9, 2}}})

	res, err := Rollout(testContext(), e, PolicyAverage)
	require.NoError(t, err)

	assert.True(t, res.Feasible)
	assert.True(t, res.Done)
	assert.Equal(t, 2.0, res.Makespan)
	assert.Equal(t, [][]int{{0, 1}, {0, 2}}, e.Sequences())
}

func TestRollout_DeadlineMiss(t *testing.T) {
	// Task 1 finishes first, so EDF schedules it first and task 2 then
	// misses its deadline behind it on the only robot.
	e := newEnv(t, &config.Instance{
		Durations: [][]int{{2}, {3}},
		Deadlines: []config.Deadline{{Task: 2, Bound: 4}},
	})

	res, err := Rollout(testContext(), e, PolicyMin)
	require.NoError(t, err)

	assert.True(t, res.Done)
	assert.False(t, res.Feasible)
	assert.Equal(t, 20.0, res.Makespan)
	require.Len(t, res.Steps, 2)
	assert.True(t, res.Steps[0].Feasible)
	assert.False(t, res.Steps[1].Feasible)
	assert.Equal(t, [][]int{{0, 1, 2}}, e.Sequences())
	assert.Equal(t, env.StatusFailure, e.Status())
}
