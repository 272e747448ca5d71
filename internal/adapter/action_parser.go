// Package adapter provides the boundaries between the solver and the outside
// world: textual button parsing and games files.
package adapter

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/mouse-blink/calcsolve/internal/domain/actions"
	m "github.com/mouse-blink/calcsolve/internal/model"
)

// ErrUnknownAction is wrapped by every UnknownActionError.
var ErrUnknownAction = errors.New("unknown action")

// UnknownActionError reports a token that matches no button grammar.
type UnknownActionError struct {
	Token string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action: %q", e.Token)
}

func (e *UnknownActionError) Unwrap() error { return ErrUnknownAction }

// Matcher recognises one textual button form.
type Matcher interface {
	Name() string
	Usage() string
	Match(raw string) (m.Action, bool)
}

type matcher struct {
	name  string
	usage string
	match func(raw string) (m.Action, bool)
}

func (mt matcher) Name() string                      { return mt.name }
func (mt matcher) Usage() string                     { return mt.usage }
func (mt matcher) Match(raw string) (m.Action, bool) { return mt.match(raw) }

// DefaultMatchers returns a fresh, ordered list of the built-in grammars.
// The first matcher that accepts a token wins.
func DefaultMatchers() []Matcher {
	return []Matcher{
		matcher{"arithmetic", "<op><int> where op is one of + - * x / ^", matchArithmetic},
		matcher{"delete", "< or <<", matchDelete},
		matcher{"append", "digits, e.g. 42", matchAppend},
		matcher{"swap", "<digits>=><digits> or <digits>><digits>", matchSwap},
		matcher{"negate", "+/- or +-", matchNegate},
		matcher{"sum", "sum or s", matchSum},
		matcher{"reverse", strings.Join(reverseAliases, ", "), matchReverse},
	}
}

// ActionParser turns raw button tokens into actions.
type ActionParser interface {
	Parse(raw ...string) ([]m.Action, error)
	Matchers() []Matcher
}

type actionParser struct {
	matchers []Matcher
}

// NewActionParser builds a parser trying matchers in the given order.
// With no matchers the default grammar is used.
func NewActionParser(matchers ...Matcher) ActionParser {
	if len(matchers) == 0 {
		matchers = DefaultMatchers()
	}

	return &actionParser{matchers: append([]Matcher(nil), matchers...)}
}

// Parse converts every token or fails on the first unknown one.
func (p *actionParser) Parse(raw ...string) ([]m.Action, error) {
	parsed := make([]m.Action, 0, len(raw))

	for _, token := range raw {
		action, err := p.parseOne(token)
		if err != nil {
			return nil, err
		}

		parsed = append(parsed, action)
	}

	return parsed, nil
}

// Matchers returns a copy of the matcher list.
func (p *actionParser) Matchers() []Matcher {
	return append([]Matcher(nil), p.matchers...)
}

func (p *actionParser) parseOne(token string) (m.Action, error) {
	trimmed := strings.TrimSpace(token)

	for _, mt := range p.matchers {
		if action, ok := mt.Match(trimmed); ok {
			return action, nil
		}
	}

	return nil, &UnknownActionError{Token: token}
}

func matchArithmetic(raw string) (m.Action, bool) {
	if len(raw) < 2 {
		return nil, false
	}

	op := actions.Operator(raw[:1])
	if !isOperator(op) {
		return nil, false
	}

	operand, ok := new(big.Int).SetString(raw[1:], 10)
	if !ok {
		return nil, false
	}

	return actions.NewArithmetic(op, operand), true
}

func isOperator(op actions.Operator) bool {
	for _, known := range actions.Operators {
		if op == known {
			return true
		}
	}

	return false
}

func matchDelete(raw string) (m.Action, bool) {
	if raw == "<" || raw == "<<" {
		return actions.Delete{}, true
	}

	return nil, false
}

func matchAppend(raw string) (m.Action, bool) {
	a, ok := actions.NewAppend(raw)
	if !ok {
		return nil, false
	}

	return a, true
}

func matchSwap(raw string) (m.Action, bool) {
	for _, sep := range []string{"=>", ">"} {
		from, to, found := strings.Cut(raw, sep)
		if !found {
			continue
		}

		sw, ok := actions.NewSwap(from, to)
		if !ok {
			return nil, false
		}

		return sw, true
	}

	return nil, false
}

func matchNegate(raw string) (m.Action, bool) {
	if raw == "+/-" || raw == "+-" {
		return actions.Negate{}, true
	}

	return nil, false
}

func matchSum(raw string) (m.Action, bool) {
	switch strings.ToLower(raw) {
	case "sum", "s":
		return actions.SumDigits{}, true
	}

	return nil, false
}

var reverseAliases = []string{"rvs", "rvrs", "reverse", "rev", "r", "rv", "revs"}

func matchReverse(raw string) (m.Action, bool) {
	lower := strings.ToLower(raw)

	for _, alias := range reverseAliases {
		if lower == alias {
			return actions.Reverse{}, true
		}
	}

	return nil, false
}
