package model

import (
	"math/big"
	"sort"
	"sync"
)

// Solution is a sequence that reaches the goal, keyed by its canonical form.
type Solution struct {
	Key      string
	Sequence Sequence
	// Trace holds the register after each action, starting with the initial value.
	Trace []*big.Int
}

// NewSolution copies seq and derives its key.
func NewSolution(seq Sequence, trace []*big.Int) Solution {
	return Solution{
		Key:      seq.String(),
		Sequence: seq.Clone(),
		Trace:    trace,
	}
}

// SolutionSet is a set of solutions unique by canonical string.
// It is safe for concurrent use and remembers discovery order.
type SolutionSet struct {
	mu    sync.RWMutex
	index map[string]int
	items []Solution
}

// NewSolutionSet returns an empty set.
func NewSolutionSet() *SolutionSet {
	return &SolutionSet{index: make(map[string]int)}
}

// Add inserts sol unless its key is already present. It reports whether the
// key was new; a duplicate is a no-op.
func (s *SolutionSet) Add(sol Solution) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[sol.Key]; ok {
		return false
	}

	s.index[sol.Key] = len(s.items)
	s.items = append(s.items, sol)

	return true
}

// Contains reports whether key is in the set.
func (s *SolutionSet) Contains(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.index[key]

	return ok
}

// Len returns the number of distinct solutions.
func (s *SolutionSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.items)
}

// Solutions returns the solutions in discovery order.
func (s *SolutionSet) Solutions() []Solution {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]Solution(nil), s.items...)
}

// Keys returns the canonical strings in discovery order.
func (s *SolutionSet) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, len(s.items))
	for i, sol := range s.items {
		keys[i] = sol.Key
	}

	return keys
}

// Sorted returns the solutions ordered by canonical string.
func (s *SolutionSet) Sorted() []Solution {
	out := s.Solutions()
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}
