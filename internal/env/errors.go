package env

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRobot is returned for a robot index outside the team.
	ErrInvalidRobot = errors.New("invalid robot")
	// ErrInvalidTask is returned for a task index outside 1..N.
	ErrInvalidTask = errors.New("invalid task")
	// ErrTaskCommitted is returned when inserting an already committed task.
	ErrTaskCommitted = errors.New("task already committed")
	// ErrEpisodeDone is returned when inserting after the episode ended.
	ErrEpisodeDone = errors.New("episode is done")
	// ErrInfeasibleInstance is returned by New when the initial network has
	// no consistent assignment.
	ErrInfeasibleInstance = errors.New("initial network is infeasible")
)

// ValidationError reports a caller mistake such as an out-of-range index.
// It unwraps to one of the package sentinels.
type ValidationError struct {
	Field string
	Value int
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %d: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
