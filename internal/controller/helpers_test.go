package controller

import (
	"math/big"
	"testing"

	"github.com/mouse-blink/calcsolve/internal/domain/actions"
	m "github.com/mouse-blink/calcsolve/internal/model"
)

func testGame(t *testing.T) m.Game {
	t.Helper()

	game, err := m.NewGame("level", 2, big.NewInt(1), big.NewInt(12), []m.Action{
		actions.NewArithmetic(actions.Add, big.NewInt(5)),
		actions.NewArithmetic(actions.Mul, big.NewInt(2)),
	})
	if err != nil {
		t.Fatalf("NewGame() error = %v", err)
	}

	return game
}

func testSolutions(game m.Game) *m.SolutionSet {
	set := m.NewSolutionSet()
	set.Add(m.NewSolution(m.Sequence{game.Catalog[0], game.Catalog[1]}, []*big.Int{big.NewInt(1), big.NewInt(6), big.NewInt(12)}))
	set.Add(m.NewSolution(m.Sequence{game.Catalog[1], game.Catalog[0]}, []*big.Int{big.NewInt(1), big.NewInt(2), big.NewInt(7)}))

	return set
}
