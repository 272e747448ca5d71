// Package actions provides the calculator buttons that transform the register.
package actions

import (
	"math/big"

	m "github.com/mouse-blink/calcsolve/internal/model"
)

// decimal renders an integral register as a decimal string.
func decimal(state *m.State) (string, bool) {
	if !state.Integral() {
		return "", false
	}

	return state.Current.Num().String(), true
}

// setDecimal reparses s into the register. Empty and sign-only strings
// collapse to zero; anything else that is not an integer invalidates the
// register.
func setDecimal(state *m.State, s string) {
	if s == "" || s == "-" || s == "+" {
		state.SetInt(new(big.Int))
		return
	}

	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		state.Invalidate()
		return
	}

	state.SetInt(v)
}

// transformDecimal applies fn to the decimal form of the register.
func transformDecimal(state *m.State, fn func(string) string) {
	s, ok := decimal(state)
	if !ok {
		state.Invalidate()
		return
	}

	setDecimal(state, fn(s))
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
