package adapter

import (
	"errors"
	"fmt"
	"os"

	m "github.com/mouse-blink/calcsolve/internal/model"
	"gopkg.in/yaml.v3"
)

// GamesFileVersion is the only supported games file layout.
const GamesFileVersion = 1

// ErrUnsupportedVersion is returned for games files of an unknown layout.
var ErrUnsupportedVersion = errors.New("unsupported games file version")

// GamesFile is the YAML layout of a batch of games:
//
//	version: 1
//	games:
//	  - name: level 12
//	    moves: 2
//	    goal: 11
//	    initial: 1
//	    actions: ["+5", "*2"]
type GamesFile struct {
	Version int         `yaml:"version"`
	Games   []m.RawGame `yaml:"games"`
}

// GameStore loads textual game descriptors.
type GameStore interface {
	LoadGames(path m.Path) ([]m.RawGame, error)
}

type gameStore struct{}

// NewGameStore constructs a GameStore reading YAML files from disk.
func NewGameStore() GameStore {
	return &gameStore{}
}

func (gs *gameStore) LoadGames(path m.Path) ([]m.RawGame, error) {
	b, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read games file %s: %w", path, err)
	}

	return DecodeGames(b)
}

// DecodeGames parses and validates a games file body.
func DecodeGames(b []byte) ([]m.RawGame, error) {
	var file GamesFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("failed to decode games file: %w", err)
	}

	if file.Version != GamesFileVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, file.Version)
	}

	for i, game := range file.Games {
		if err := game.Validate(); err != nil {
			return nil, fmt.Errorf("game #%d %q: %w", i+1, game.Name, err)
		}
	}

	return file.Games, nil
}
