// internal/event/doc.go

/*
Package event provides a structured, type-safe representation for the time
points of a simple temporal network.

Every task owns two events, its start and its finish. Task 0 is reserved: its
start is the global origin (time zero) and its finish is the global terminal
event that bounds the scheduling horizon.

Events map onto a dense integer index, `2*task + kind`, so graph code can use
plain slices instead of string keys. The canonical text form, used in logs
and traces, is a kind letter followed by a zero-padded task number, e.g.
`s000`, `f003`, `s012`.
*/
package event
