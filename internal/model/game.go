package model

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrInvalidGame is returned when a game descriptor violates its invariants.
var ErrInvalidGame = errors.New("invalid game")

// Path represents a file system path.
type Path string

// Game is the immutable descriptor of one puzzle.
type Game struct {
	Name    string
	Moves   int      `validate:"gte=0"`
	Initial *big.Int `validate:"required"`
	Goal    *big.Int `validate:"required"`
	// Catalog order only affects display and enumeration order.
	Catalog []Action
}

// NewGame builds and validates a game. The catalog slice is copied.
func NewGame(name string, moves int, initial, goal *big.Int, catalog []Action) (Game, error) {
	game := Game{
		Name:    name,
		Moves:   moves,
		Initial: initial,
		Goal:    goal,
		Catalog: append([]Action(nil), catalog...),
	}

	if err := game.Validate(); err != nil {
		return Game{}, err
	}

	return game, nil
}

// Validate checks moves >= 0, both endpoints set and a non-empty catalog
// whenever at least one move is required.
func (g Game) Validate() error {
	if err := validate.Struct(g); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGame, describeValidation(err))
	}

	return nil
}

func (g Game) String() string {
	names := make([]string, len(g.Catalog))
	for i, action := range g.Catalog {
		names[i] = action.String()
	}

	prefix := ""
	if g.Name != "" {
		prefix = g.Name + " "
	}

	return fmt.Sprintf("%s%s -> %s: {%s} * %d", prefix, g.Initial, g.Goal, strings.Join(names, ", "), g.Moves)
}

// RawGame is a game whose numbers and buttons are still textual, as read from
// the command line or a games file.
type RawGame struct {
	Name    string   `yaml:"name"`
	Moves   int      `yaml:"moves" validate:"gte=0"`
	Goal    string   `yaml:"goal" validate:"required"`
	Initial string   `yaml:"initial" validate:"required"`
	Actions []string `yaml:"actions" validate:"dive,required"`
}

// Validate checks the textual descriptor before parsing.
func (r RawGame) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidGame, describeValidation(err))
	}

	return nil
}
