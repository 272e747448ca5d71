package model

import "time"

// SearchStats summarises one search run.
type SearchStats struct {
	Multisets int64 // combinations with repetition visited
	Orderings int64 // distinct orderings evaluated
	Rejected  int64 // orderings cut short by a non-integral register
	Solutions int
	Stopped   bool // enumeration ended early on the first solution
	Elapsed   time.Duration
}
