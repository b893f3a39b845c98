package stn

import (
	"errors"
	"fmt"

	"github.com/vk/stnsched/internal/digraph"
	"github.com/vk/stnsched/internal/event"
)

// ErrTaskRange is returned when a task number falls outside 0..NumTasks.
var ErrTaskRange = errors.New("task out of range")

// Constraint is a single edge of the network, keyed by events.
type Constraint struct {
	From   event.Event `yaml:"from"`
	To     event.Event `yaml:"to"`
	Weight float64     `yaml:"weight"`
}

func (c Constraint) String() string {
	return fmt.Sprintf("%s -> %s (%g)", c.From, c.To, c.Weight)
}

// Network is the mutable constraint graph over 2*(N+1) events.
type Network struct {
	numTasks int
	g        *digraph.Graph
}

// New returns the skeleton network for numTasks tasks: the horizon edge
// s000 -> f000 and, for every real task, s_i -> s000 (no task starts before
// the origin) and f000 -> f_i (no task finishes after the horizon).
func New(numTasks int, horizon float64) *Network {
	n := &Network{
		numTasks: numTasks,
		g:        digraph.New(event.Count(numTasks)),
	}
	n.set(event.Origin, event.Terminal, horizon)
	for t := 1; t <= numTasks; t++ {
		n.set(event.Start(t), event.Origin, 0)
		n.set(event.Terminal, event.Finish(t), 0)
	}
	return n
}

// NumTasks returns the number of real tasks.
func (n *Network) NumTasks() int {
	return n.numTasks
}

// Len returns the number of events.
func (n *Network) Len() int {
	return n.g.Len()
}

// Clone returns an independent deep copy of the network.
func (n *Network) Clone() *Network {
	return &Network{numTasks: n.numTasks, g: n.g.Clone()}
}

// Weight reports the direct edge between two events, if any.
func (n *Network) Weight(from, to event.Event) (float64, bool) {
	return n.g.Weight(from.Index(), to.Index())
}

// Constraints lists every edge, ordered by source then target event.
func (n *Network) Constraints() []Constraint {
	edges := n.g.Edges()
	out := make([]Constraint, len(edges))
	for i, e := range edges {
		out[i] = Constraint{From: event.FromIndex(e.From), To: event.FromIndex(e.To), Weight: e.Weight}
	}
	return out
}

// SetDurationRange constrains task to take between lo and hi time units.
func (n *Network) SetDurationRange(task int, lo, hi float64) error {
	if err := n.checkReal(task); err != nil {
		return err
	}
	n.set(event.Start(task), event.Finish(task), hi)
	n.set(event.Finish(task), event.Start(task), -lo)
	return nil
}

// FixDuration pins task to exactly d time units.
func (n *Network) FixDuration(task int, d float64) error {
	return n.SetDurationRange(task, d, d)
}

// AddDeadline requires task to finish no later than bound.
func (n *Network) AddDeadline(task int, bound float64) error {
	if err := n.checkReal(task); err != nil {
		return err
	}
	n.tighten(event.Origin, event.Finish(task), bound)
	return nil
}

// AddWait requires task to start at least gap units after after finishes.
func (n *Network) AddWait(task, after int, gap float64) error {
	if err := n.checkReal(task); err != nil {
		return err
	}
	if err := n.checkReal(after); err != nil {
		return err
	}
	n.tighten(event.Start(task), event.Finish(after), -gap)
	return nil
}

func (n *Network) set(from, to event.Event, w float64) {
	n.g.Set(from.Index(), to.Index(), w)
}

func (n *Network) tighten(from, to event.Event, w float64) {
	n.g.Tighten(from.Index(), to.Index(), w)
}

func (n *Network) checkReal(task int) error {
	if task < 1 || task > n.numTasks {
		return fmt.Errorf("%w: %d not in 1..%d", ErrTaskRange, task, n.numTasks)
	}
	return nil
}

func (n *Network) checkAny(task int) error {
	if task < 0 || task > n.numTasks {
		return fmt.Errorf("%w: %d not in 0..%d", ErrTaskRange, task, n.numTasks)
	}
	return nil
}
