// Package model defines the data structures shared by the solver layers.
package model

import "math/big"

// State is the single register transformed by successive actions during one
// evaluation. Current is rational so that true division can be detected as
// non-integral instead of being truncated.
type State struct {
	Current *big.Rat
	Valid   bool
}

// NewState returns a fresh register seeded at initial.
func NewState(initial *big.Int) *State {
	return &State{Current: new(big.Rat).SetInt(initial), Valid: true}
}

// Integral reports whether the register holds a usable integer value.
func (s *State) Integral() bool {
	return s.Valid && s.Current.IsInt()
}

// Int returns a copy of the register as an integer.
// The result is only meaningful when Integral is true.
func (s *State) Int() *big.Int {
	return new(big.Int).Set(s.Current.Num())
}

// SetInt replaces the register with v.
func (s *State) SetInt(v *big.Int) {
	s.Current.SetInt(v)
}

// Invalidate marks the register as out of domain.
func (s *State) Invalidate() {
	s.Valid = false
}

func (s *State) String() string {
	if !s.Valid {
		return "invalid"
	}

	return s.Current.RatString()
}
