// Package controller provides output adapters for displaying solver results.
package controller

import (
	"fmt"

	m "github.com/mouse-blink/calcsolve/internal/model"
)

// Format selects how solutions are rendered.
type Format string

// Available Format values.
const (
	FormatAuto  Format = "auto"
	FormatPlain Format = "plain"
	FormatTable Format = "table"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatAuto, FormatPlain, FormatTable:
		return f, nil
	case "":
		return FormatAuto, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of auto, plain, table", s)
	}
}

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeSolve StartMode = iota
	ModeLive
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithLiveMode tells the UI that solutions are streamed through
// DisplaySolution as they are found.
func WithLiveMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeLive
	}
}

func newStartConfig(options ...StartOption) StartConfig {
	cfg := StartConfig{mode: ModeSolve}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI defines the interface for displaying games and their solutions.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayGame(game m.Game)
	// DisplaySolution is called once per new solution in live mode.
	DisplaySolution(solution m.Solution)
	DisplaySolutions(game m.Game, set *m.SolutionSet, stats m.SearchStats) error
}
