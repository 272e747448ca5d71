package actions

import (
	"math/big"
	"strings"

	m "github.com/mouse-blink/calcsolve/internal/model"
)

// Canonical forms of the parameterless buttons.
const (
	DeleteForm  = "<<"
	ReverseForm = "reverse"
	NegateForm  = "+/-"
	SumForm     = "sum"
)

// Append concatenates Digits to the decimal form of the register.
type Append struct {
	Digits string
}

// NewAppend creates an append button. ok is false unless digits is a
// non-empty unsigned digit string.
func NewAppend(digits string) (*Append, bool) {
	if !isDigits(digits) {
		return nil, false
	}

	return &Append{Digits: digits}, true
}

// Apply implements model.Action.
func (a *Append) Apply(state *m.State) {
	transformDecimal(state, func(s string) string { return s + a.Digits })
}

func (a *Append) String() string { return a.Digits }

// Delete removes the last decimal digit, keeping the sign.
type Delete struct{}

// Apply implements model.Action.
func (Delete) Apply(state *m.State) {
	transformDecimal(state, func(s string) string {
		if s == "0" {
			return s
		}

		return s[:len(s)-1]
	})
}

func (Delete) String() string { return DeleteForm }

// Reverse reverses the digits of the absolute value and reapplies the sign.
type Reverse struct{}

// Apply implements model.Action.
func (Reverse) Apply(state *m.State) {
	transformDecimal(state, func(s string) string {
		sign, digits := splitSign(s)
		runes := []rune(digits)

		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}

		return sign + string(runes)
	})
}

func (Reverse) String() string { return ReverseForm }

// Swap replaces every occurrence of From with To in the decimal form.
type Swap struct {
	From string
	To   string
}

// NewSwap creates a swap button. From must be a non-empty digit string and To
// a possibly empty digit string.
func NewSwap(from, to string) (*Swap, bool) {
	if !isDigits(from) || (to != "" && !isDigits(to)) {
		return nil, false
	}

	return &Swap{From: from, To: to}, true
}

// Apply implements model.Action.
func (sw *Swap) Apply(state *m.State) {
	transformDecimal(state, func(s string) string { return strings.ReplaceAll(s, sw.From, sw.To) })
}

func (sw *Swap) String() string { return sw.From + "=>" + sw.To }

// Negate flips the sign of the register.
type Negate struct{}

// Apply implements model.Action.
func (Negate) Apply(state *m.State) {
	if !state.Valid {
		return
	}

	state.Current.Neg(state.Current)
}

func (Negate) String() string { return NegateForm }

// SumDigits replaces the register with the sum of its decimal digits.
type SumDigits struct{}

// Apply implements model.Action.
func (SumDigits) Apply(state *m.State) {
	s, ok := decimal(state)
	if !ok {
		state.Invalidate()
		return
	}

	var sum int64

	for _, r := range s {
		if r >= '0' && r <= '9' {
			sum += int64(r - '0')
		}
	}

	state.SetInt(big.NewInt(sum))
}

func (SumDigits) String() string { return SumForm }

func splitSign(s string) (string, string) {
	if strings.HasPrefix(s, "-") {
		return "-", s[1:]
	}

	return "", s
}

var (
	_ m.Action = (*Append)(nil)
	_ m.Action = Delete{}
	_ m.Action = Reverse{}
	_ m.Action = (*Swap)(nil)
	_ m.Action = Negate{}
	_ m.Action = SumDigits{}
)
