package scheduler

import "fmt"

// Policy selects the duration statistic PickRobot minimizes.
type Policy int

const (
	// PolicyAverage uses the mean duration over unscheduled tasks.
	PolicyAverage Policy = iota
	// PolicyMin uses the shortest duration over unscheduled tasks.
	PolicyMin
	// PolicyValid uses the mean duration over tasks valid at the time point.
	PolicyValid
)

var policyNames = map[Policy]string{
	PolicyAverage: "average",
	PolicyMin:     "min",
	PolicyValid:   "valid",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy converts a policy name to a Policy.
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if name == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown robot policy %q (want average, min or valid)", s)
}
