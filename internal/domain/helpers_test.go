package domain

import (
	"math/big"
	"testing"

	"github.com/mouse-blink/calcsolve/internal/adapter"
	m "github.com/mouse-blink/calcsolve/internal/model"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, moves int, goal, initial int64, tokens ...string) m.Game {
	t.Helper()

	catalog, err := adapter.NewActionParser().Parse(tokens...)
	require.NoError(t, err)

	game, err := m.NewGame("", moves, big.NewInt(initial), big.NewInt(goal), catalog)
	require.NoError(t, err)

	return game
}

func sequenceOf(t *testing.T, tokens ...string) m.Sequence {
	t.Helper()

	parsed, err := adapter.NewActionParser().Parse(tokens...)
	require.NoError(t, err)

	return m.Sequence(parsed)
}

func sortedKeys(set *m.SolutionSet) []string {
	keys := []string{}
	for _, solution := range set.Sorted() {
		keys = append(keys, solution.Key)
	}

	return keys
}
