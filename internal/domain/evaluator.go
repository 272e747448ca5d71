package domain

import (
	"math/big"

	m "github.com/mouse-blink/calcsolve/internal/model"
)

type outcome int

const (
	missed outcome = iota
	reached
	rejected // a step left the register non-integral or invalid
)

// Evaluate replays seq against a fresh register seeded at initial and reports
// whether it ends on goal. Evaluation stops at the first step that leaves the
// register non-integral. Safe for concurrent use.
func Evaluate(initial, goal *big.Int, seq m.Sequence) bool {
	return evaluate(initial, goal, seq) == reached
}

func evaluate(initial, goal *big.Int, seq m.Sequence) outcome {
	state := m.NewState(initial)

	for _, action := range seq {
		action.Apply(state)

		if !state.Integral() {
			return rejected
		}
	}

	if state.Current.Num().Cmp(goal) == 0 {
		return reached
	}

	return missed
}

// Replay returns the register after every step, starting with initial.
// ok is false if a step left the register non-integral; the trace then ends
// at the last integral value.
func Replay(initial *big.Int, seq m.Sequence) ([]*big.Int, bool) {
	state := m.NewState(initial)
	trace := make([]*big.Int, 0, len(seq)+1)
	trace = append(trace, new(big.Int).Set(initial))

	for _, action := range seq {
		action.Apply(state)

		if !state.Integral() {
			return trace, false
		}

		trace = append(trace, state.Int())
	}

	return trace, true
}
