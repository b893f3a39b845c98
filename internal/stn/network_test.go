package stn

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/stnsched/internal/config"
	"github.com/vk/stnsched/internal/event"
)

func s(t int) event.Event { return event.Start(t) }
func f(t int) event.Event { return event.Finish(t) }

func TestNew_Skeleton(t *testing.T) {
	n := New(2, 20)

	want := []Constraint{
		{From: event.Origin, To: event.Terminal, Weight: 20},
		{From: event.Terminal, To: f(1), Weight: 0},
		{From: event.Terminal, To: f(2), Weight: 0},
		{From: s(1), To: event.Origin, Weight: 0},
		{From: s(2), To: event.Origin, Weight: 0},
	}
	if diff := cmp.Diff(want, n.Constraints()); diff != "" {
		t.Errorf("Constraints() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 6, n.Len())
	assert.Equal(t, 2, n.NumTasks())
}

func TestBuild_AppliesInstanceConstraints(t *testing.T) {
	inst := &config.Instance{
		Durations: [][]int{{3, 6}, {5, 4}},
		Deadlines: []config.Deadline{{Task: 2, Bound: 15}},
		Waits:     []config.Wait{{Task: 2, After: 1, Gap: 2}},
		Locations: []config.Location{{X: 0, Y: 0}, {X: 5, Y: 5}},
	}

	n, err := Build(inst, 20)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		from, to event.Event
		want     float64
	}{
		{"task 1 max duration", s(1), f(1), 6},
		{"task 1 min duration", f(1), s(1), -3},
		{"task 2 max duration", s(2), f(2), 5},
		{"task 2 min duration", f(2), s(2), -4},
		{"deadline", event.Origin, f(2), 15},
		{"wait", s(2), f(1), -2},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, ok := n.Weight(tc.from, tc.to)
			require.True(t, ok)
			assert.Equal(t, tc.want, w)
		})
	}
}

func TestAddDeadline_KeepsTighterBound(t *testing.T) {
	n := New(1, 10)
	require.NoError(t, n.AddDeadline(1, 4))
	require.NoError(t, n.AddDeadline(1, 7))

	w, ok := n.Weight(event.Origin, f(1))
	require.True(t, ok)
	assert.Equal(t, 4.0, w)
}

func TestRangeErrors(t *testing.T) {
	n := New(2, 20)

	assert.ErrorIs(t, n.SetDurationRange(0, 1, 2), ErrTaskRange)
	assert.ErrorIs(t, n.AddDeadline(3, 1), ErrTaskRange)
	assert.ErrorIs(t, n.AddWait(1, 0, 1), ErrTaskRange)
	assert.ErrorIs(t, n.Commit(Commitment{Task: 1, After: 5}), ErrTaskRange)
	assert.ErrorIs(t, n.Commit(Commitment{Task: 1, Pending: []int{9}}), ErrTaskRange)
	assert.Error(t, n.Commit(Commitment{Task: 1, After: 1}))
}

func TestCommit_Rules(t *testing.T) {
	n := New(4, 40)
	require.NoError(t, n.SetDurationRange(3, 2, 9))

	err := n.Commit(Commitment{
		Task:     3,
		After:    1,
		Duration: 4,
		Pending:  []int{2, 4},
		Nearby:   []int{4},
	})
	require.NoError(t, err)

	testCases := []struct {
		name     string
		from, to event.Event
		want     float64
	}{
		{"follows previous task", s(3), f(1), 0},
		{"duration upper pinned", s(3), f(3), 4},
		{"duration lower pinned", f(3), s(3), -4},
		{"pending task 2 starts later", s(2), s(3), 0},
		{"pending task 4 starts later", s(4), s(3), 0},
		{"nearby task waits for finish", s(4), f(3), 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w, ok := n.Weight(tc.from, tc.to)
			require.True(t, ok)
			assert.Equal(t, tc.want, w)
		})
	}

	_, ok := n.Weight(s(2), f(3))
	assert.False(t, ok, "task 2 is not nearby")
}

func TestCommit_IdleRobotAddsNoPredecessorEdge(t *testing.T) {
	n := New(2, 20)
	before := len(n.Constraints())

	require.NoError(t, n.Commit(Commitment{Task: 1, Duration: 3}))

	// Only the two duration edges are new.
	assert.Len(t, n.Constraints(), before+2)
	_, ok := n.Weight(s(1), f(0))
	assert.False(t, ok)
}

func TestCommit_DoesNotLoosenExistingEdge(t *testing.T) {
	n := New(2, 20)
	require.NoError(t, n.AddWait(2, 1, 3))

	require.NoError(t, n.Commit(Commitment{Task: 2, After: 1, Duration: 1}))

	w, ok := n.Weight(s(2), f(1))
	require.True(t, ok)
	assert.Equal(t, -3.0, w)
}

func TestWithDurations_LeavesReceiverUntouched(t *testing.T) {
	n := New(2, 20)
	require.NoError(t, n.SetDurationRange(1, 2, 8))

	c, err := n.WithDurations(map[int]float64{1: 5})
	require.NoError(t, err)

	w, _ := c.Weight(s(1), f(1))
	assert.Equal(t, 5.0, w)
	w, _ = n.Weight(s(1), f(1))
	assert.Equal(t, 8.0, w)

	_, err = n.WithDurations(map[int]float64{7: 1})
	assert.ErrorIs(t, err, ErrTaskRange)
}

func TestClone_IsIndependent(t *testing.T) {
	n := New(1, 10)
	c := n.Clone()
	require.NoError(t, c.AddDeadline(1, 3))

	_, ok := n.Weight(event.Origin, f(1))
	assert.False(t, ok)
}
