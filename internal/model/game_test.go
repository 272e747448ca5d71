package model

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	catalog := []Action{label("+5"), label("*2")}

	game, err := NewGame("level 3", 2, big.NewInt(1), big.NewInt(12), catalog)
	require.NoError(t, err)
	assert.Equal(t, "level 3 1 -> 12: {+5, *2} * 2", game.String())

	catalog[0] = label("-1")
	assert.Equal(t, "+5", game.Catalog[0].String())
}

func TestGame_Validate(t *testing.T) {
	tests := []struct {
		name string
		game Game
		want string
	}{
		{"negative moves", Game{Moves: -1, Initial: big.NewInt(0), Goal: big.NewInt(0)}, "moves must be >= 0"},
		{"missing initial", Game{Moves: 0, Goal: big.NewInt(0)}, "initial is required"},
		{"empty catalog", Game{Moves: 1, Initial: big.NewInt(0), Goal: big.NewInt(1)}, "at least one action is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.game.Validate()
			require.ErrorIs(t, err, ErrInvalidGame)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestGame_ZeroMovesNeedsNoCatalog(t *testing.T) {
	game, err := NewGame("", 0, big.NewInt(5), big.NewInt(5), nil)
	require.NoError(t, err)
	assert.Equal(t, "5 -> 5: {} * 0", game.String())
}

func TestRawGame_Validate(t *testing.T) {
	valid := RawGame{Moves: 1, Goal: "8", Initial: "5", Actions: []string{"+3"}}
	assert.NoError(t, valid.Validate())

	missingGoal := valid
	missingGoal.Goal = ""
	assert.ErrorIs(t, missingGoal.Validate(), ErrInvalidGame)

	blankAction := valid
	blankAction.Actions = []string{"+3", ""}
	assert.ErrorIs(t, blankAction.Validate(), ErrInvalidGame)
}
