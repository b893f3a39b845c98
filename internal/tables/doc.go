// Package tables reads instances stored as plain whitespace-separated
// integer tables, one file per table, sharing a common prefix:
//
//	<prefix>_dur.txt   task x robot durations, one row per task
//	<prefix>_ddl.txt   "task bound" rows
//	<prefix>_wait.txt  "task after gap" rows
//	<prefix>_loc.txt   "x y" rows, one per task
//
// An expert solution, when present, lives under the same prefix (or the same
// base name in a separate solution directory): <prefix>_w.txt holds the
// commitment order and <prefix>_<r>.txt robot r's sequence. Lines starting
// with '#' are comments.
package tables
