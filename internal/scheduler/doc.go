// Package scheduler holds the robot-team heuristics used to drive an
// episode without a learned policy.
//
// A Team tracks when each robot becomes free. PickRobot chooses the robot
// with the smallest duration statistic under a Policy, PickTask applies
// earliest-deadline-first over a robot's what-if distance network, and
// Rollout combines them into the EDF baseline that steps time forward until
// the episode ends or the horizon passes.
package scheduler
