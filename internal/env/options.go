package env

import "fmt"

// Options tunes the environment.
type Options struct {
	// Proximity is the distance threshold under which two tasks share a
	// location and must not overlap.
	Proximity float64
	// Discount is the constant C that scales the previous makespan in the
	// shaped reward.
	Discount float64
	// PenaltyPerTask times N gives the infeasibility makespan M.
	PenaltyPerTask float64
	// HorizonPerTask times N gives the origin to terminal bound.
	HorizonPerTask float64
	// Workers bounds parallel per-source passes of each solve.
	Workers int
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		Proximity:      1.0,
		Discount:       3.0,
		PenaltyPerTask: 10,
		HorizonPerTask: 10,
		Workers:        1,
	}
}

// Validate checks that every option is usable.
func (o Options) Validate() error {
	switch {
	case o.Proximity < 0:
		return fmt.Errorf("proximity must not be negative, got %g", o.Proximity)
	case o.Discount <= 0:
		return fmt.Errorf("discount must be positive, got %g", o.Discount)
	case o.PenaltyPerTask <= 0:
		return fmt.Errorf("penalty per task must be positive, got %g", o.PenaltyPerTask)
	case o.HorizonPerTask <= 0:
		return fmt.Errorf("horizon per task must be positive, got %g", o.HorizonPerTask)
	case o.Workers < 0:
		return fmt.Errorf("workers must not be negative, got %d", o.Workers)
	}
	return nil
}
