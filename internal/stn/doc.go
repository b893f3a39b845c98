// Package stn holds the temporal constraint network of a scheduling episode.
//
// Every task i contributes a start event s_i and a finish event f_i; the
// sentinel task 0 provides the schedule origin s000 and the horizon f000. A
// directed edge (u, v, w) encodes t(v) - t(u) <= w. The network starts from
// the instance's duration ranges, deadlines and waits, and is tightened by
// Commit as tasks are placed on robots. Solve turns it into a Distances
// snapshot; Reduce and Full project that snapshot into a DistanceNetwork for
// downstream consumers.
package stn
