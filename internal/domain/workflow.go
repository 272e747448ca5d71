// Package domain contains the calculator game search and the workflow that
// drives it.
package domain

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/mouse-blink/calcsolve/internal/adapter"
	"github.com/mouse-blink/calcsolve/internal/controller"
	m "github.com/mouse-blink/calcsolve/internal/model"
)

// SearchOptions are the knobs shared by every entry point.
type SearchOptions struct {
	Live        bool // stream solutions as they are found
	StopAtFirst bool
	Threads     int
}

// SolveArgs describes a single game given on the command line.
type SolveArgs struct {
	Game m.RawGame
	SearchOptions
}

// BatchArgs describes a games file.
type BatchArgs struct {
	Path m.Path
	SearchOptions
}

// Workflow defines the interface for solving operations.
type Workflow interface {
	Solve(ctx context.Context, args SolveArgs) error
	Batch(ctx context.Context, args BatchArgs) error
}

type workflow struct {
	parser adapter.ActionParser
	store  adapter.GameStore
	ui     controller.UI
	engine Engine
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	parser adapter.ActionParser,
	store adapter.GameStore,
	ui controller.UI,
	engine Engine,
) Workflow {
	return &workflow{
		parser: parser,
		store:  store,
		ui:     ui,
		engine: engine,
	}
}

// Solve parses and solves one game. Parse and validation errors abort before
// anything is displayed; an empty solution set is a successful run.
func (w *workflow) Solve(ctx context.Context, args SolveArgs) error {
	game, err := w.buildGame(args.Game)
	if err != nil {
		return err
	}

	return w.run(ctx, []m.Game{game}, args.SearchOptions)
}

// Batch solves every game of a games file in order. All games are parsed
// before the first search starts.
func (w *workflow) Batch(ctx context.Context, args BatchArgs) error {
	raws, err := w.store.LoadGames(args.Path)
	if err != nil {
		return err
	}

	games := make([]m.Game, 0, len(raws))

	for i, raw := range raws {
		game, err := w.buildGame(raw)
		if err != nil {
			return fmt.Errorf("game #%d: %w", i+1, err)
		}

		games = append(games, game)
	}

	return w.run(ctx, games, args.SearchOptions)
}

func (w *workflow) run(ctx context.Context, games []m.Game, opts SearchOptions) error {
	var startOptions []controller.StartOption
	if opts.Live {
		startOptions = append(startOptions, controller.WithLiveMode())
	}

	if err := w.ui.Start(startOptions...); err != nil {
		return fmt.Errorf("failed to start ui: %w", err)
	}
	defer w.ui.Close()

	for _, game := range games {
		w.ui.DisplayGame(game)

		set, stats, err := w.engine.Solve(ctx, game, w.solveOptions(opts)...)
		if err != nil {
			return fmt.Errorf("search interrupted for %s: %w", game, err)
		}

		if err := w.ui.DisplaySolutions(game, set, stats); err != nil {
			return err
		}
	}

	return nil
}

func (w *workflow) solveOptions(opts SearchOptions) []SolveOption {
	solveOptions := []SolveOption{WithWorkers(opts.Threads)}

	if opts.Live {
		solveOptions = append(solveOptions, WithLive(w.ui.DisplaySolution))
	}

	if opts.StopAtFirst {
		solveOptions = append(solveOptions, WithStopAtFirst())
	}

	return solveOptions
}

// buildGame turns a textual descriptor into a validated game.
func (w *workflow) buildGame(raw m.RawGame) (m.Game, error) {
	if err := raw.Validate(); err != nil {
		return m.Game{}, err
	}

	initial, err := parseInteger("initial", raw.Initial)
	if err != nil {
		return m.Game{}, err
	}

	goal, err := parseInteger("goal", raw.Goal)
	if err != nil {
		return m.Game{}, err
	}

	catalog, err := w.parser.Parse(raw.Actions...)
	if err != nil {
		return m.Game{}, fmt.Errorf("failed to parse actions: %w", err)
	}

	return m.NewGame(raw.Name, raw.Moves, initial, goal, catalog)
}

func parseInteger(field, s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s %q is not an integer", m.ErrInvalidGame, field, s)
	}

	return v, nil
}
