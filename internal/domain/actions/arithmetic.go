package actions

import (
	"fmt"
	"math/big"

	m "github.com/mouse-blink/calcsolve/internal/model"
)

// Operator is the symbol of an arithmetic button.
type Operator string

// Supported operators. MulAlias is rendered as typed but behaves like Mul.
const (
	Add      Operator = "+"
	Sub      Operator = "-"
	Mul      Operator = "*"
	MulAlias Operator = "x"
	Div      Operator = "/"
	Pow      Operator = "^"
)

// MaxExponent bounds the magnitude of a Pow operand.
const MaxExponent = 1024

// MaxBits bounds the numerator and denominator size of a Pow result.
// Chained powers past it invalidate the register.
const MaxBits = 1 << 16

// Operators lists the arithmetic symbols in matching order.
var Operators = []Operator{Add, Sub, Mul, MulAlias, Div, Pow}

// Arithmetic applies current = current OP operand. Division is true division;
// a fractional result is left in the register for the evaluator to reject.
type Arithmetic struct {
	Op      Operator
	Operand *big.Int
}

var _ m.Action = (*Arithmetic)(nil)

// NewArithmetic creates an arithmetic button.
func NewArithmetic(op Operator, operand *big.Int) *Arithmetic {
	return &Arithmetic{Op: op, Operand: new(big.Int).Set(operand)}
}

// Apply implements model.Action.
func (a *Arithmetic) Apply(state *m.State) {
	if !state.Valid {
		return
	}

	operand := new(big.Rat).SetInt(a.Operand)

	switch a.Op {
	case Add:
		state.Current.Add(state.Current, operand)
	case Sub:
		state.Current.Sub(state.Current, operand)
	case Mul, MulAlias:
		state.Current.Mul(state.Current, operand)
	case Div:
		if a.Operand.Sign() == 0 {
			state.Invalidate()
			return
		}

		state.Current.Quo(state.Current, operand)
	case Pow:
		a.pow(state)
	default:
		state.Invalidate()
	}
}

func (a *Arithmetic) pow(state *m.State) {
	if !a.Operand.IsInt64() || abs64(a.Operand.Int64()) > MaxExponent {
		state.Invalidate()
		return
	}

	exp := a.Operand.Int64()

	bits := int64(max(state.Current.Num().BitLen(), state.Current.Denom().BitLen()))
	if bits*abs64(exp) > MaxBits {
		state.Invalidate()
		return
	}

	num := new(big.Int).Exp(state.Current.Num(), big.NewInt(abs64(exp)), nil)
	den := new(big.Int).Exp(state.Current.Denom(), big.NewInt(abs64(exp)), nil)

	if exp < 0 {
		num, den = den, num
	}

	if den.Sign() == 0 {
		state.Invalidate()
		return
	}

	state.Current.SetFrac(num, den)
}

func (a *Arithmetic) String() string {
	return fmt.Sprintf("%s%s", a.Op, a.Operand)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
