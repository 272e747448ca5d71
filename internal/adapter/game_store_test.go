package adapter

import (
	"os"
	"path/filepath"
	"testing"

	m "github.com/mouse-blink/calcsolve/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleGames = `version: 1
games:
  - name: level 1
    moves: 1
    goal: 8
    initial: 5
    actions: ["+3"]
  - moves: 2
    goal: -11
    initial: 0
    actions: ["+5", "*2", "+/-"]
`

func TestGameStore_LoadGames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleGames), 0o600))

	games, err := NewGameStore().LoadGames(m.Path(path))
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, m.RawGame{Name: "level 1", Moves: 1, Goal: "8", Initial: "5", Actions: []string{"+3"}}, games[0])
	assert.Equal(t, "-11", games[1].Goal)
	assert.Equal(t, []string{"+5", "*2", "+/-"}, games[1].Actions)
}

func TestGameStore_MissingFile(t *testing.T) {
	_, err := NewGameStore().LoadGames(m.Path(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestDecodeGames_Errors(t *testing.T) {
	t.Run("unsupported version", func(t *testing.T) {
		_, err := DecodeGames([]byte("version: 2\ngames: []\n"))
		assert.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := DecodeGames([]byte("version: [1\n"))
		assert.Error(t, err)
	})

	t.Run("negative moves", func(t *testing.T) {
		_, err := DecodeGames([]byte("version: 1\ngames:\n  - moves: -1\n    goal: 1\n    initial: 1\n    actions: [\"+1\"]\n"))
		assert.ErrorIs(t, err, m.ErrInvalidGame)
	})

	t.Run("missing goal", func(t *testing.T) {
		_, err := DecodeGames([]byte("version: 1\ngames:\n  - moves: 1\n    initial: 1\n    actions: [\"+1\"]\n"))
		assert.ErrorIs(t, err, m.ErrInvalidGame)
	})

	t.Run("empty action token", func(t *testing.T) {
		_, err := DecodeGames([]byte("version: 1\ngames:\n  - moves: 1\n    goal: 1\n    initial: 1\n    actions: [\"\"]\n"))
		assert.ErrorIs(t, err, m.ErrInvalidGame)
	})
}
