package model

import "strings"

// SequenceSeparator joins canonical action forms in a rendered sequence.
const SequenceSeparator = ", "

// Action is a single button press. Implementations are stateless and safe for
// concurrent use: Apply depends only on the register it is given.
type Action interface {
	// Apply transforms the register in place.
	Apply(state *State)
	// String returns the canonical form used for display and deduplication.
	String() string
}

// Sequence is an ordered list of actions.
type Sequence []Action

// String returns the canonical form of the sequence. Two sequences rendering
// to the same string are the same solution.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, action := range s {
		parts[i] = action.String()
	}

	return strings.Join(parts, SequenceSeparator)
}

// Clone returns a copy that does not share the backing array.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}
