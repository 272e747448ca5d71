package domain

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	m "github.com/mouse-blink/calcsolve/internal/model"
	"golang.org/x/sync/errgroup"
)

// Engine enumerates every ordered sequence of game.Moves buttons and collects
// the distinct ones that reach the goal.
type Engine interface {
	// Solve always returns a set, empty when nothing reaches the goal. The
	// error is non-nil only when ctx ends before enumeration completes; the
	// set then holds what was found so far.
	Solve(ctx context.Context, game m.Game, opts ...SolveOption) (*m.SolutionSet, m.SearchStats, error)
}

// SolveOption configures a single Solve call.
type SolveOption func(*solveConfig)

type solveConfig struct {
	live        func(m.Solution)
	stopAtFirst bool
	workers     int
}

// WithLive reports every newly discovered distinct solution as soon as it is
// inserted. Calls are serialised. With more than one worker the call order
// is best effort rather than global discovery order.
func WithLive(fn func(m.Solution)) SolveOption {
	return func(c *solveConfig) {
		c.live = fn
	}
}

// WithStopAtFirst ends enumeration once one solution is found.
func WithStopAtFirst() SolveOption {
	return func(c *solveConfig) {
		c.stopAtFirst = true
	}
}

// WithWorkers fans multisets out to n goroutines. n <= 0 uses one worker per CPU.
func WithWorkers(n int) SolveOption {
	return func(c *solveConfig) {
		if n <= 0 {
			n = runtime.NumCPU()
		}

		c.workers = n
	}
}

type engine struct {
	logger *slog.Logger
}

// NewEngine creates an Engine. If logger is nil, slog.Default() is used.
func NewEngine(logger *slog.Logger) Engine {
	if logger == nil {
		logger = slog.Default()
	}

	return &engine{logger: logger}
}

func (e *engine) Solve(ctx context.Context, game m.Game, opts ...SolveOption) (*m.SolutionSet, m.SearchStats, error) {
	cfg := solveConfig{workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &search{game: game, cfg: cfg, set: m.NewSolutionSet()}
	start := time.Now()

	e.logger.Debug("search started",
		slog.String("game", game.String()),
		slog.Int("workers", cfg.workers),
		slog.Bool("stop_at_first", cfg.stopAtFirst),
	)

	var err error
	if cfg.workers <= 1 {
		err = s.sequential(ctx)
	} else {
		err = s.parallel(ctx)
	}

	stats := s.stats()
	stats.Elapsed = time.Since(start)

	if err != nil {
		e.logger.Warn("search interrupted", slog.String("game", game.String()), slog.Any("error", err))
		return s.set, stats, err
	}

	e.logger.Debug("search finished",
		slog.String("game", game.String()),
		slog.Int("solutions", stats.Solutions),
		slog.Int64("orderings", stats.Orderings),
		slog.Int64("rejected", stats.Rejected),
		slog.Bool("stopped", stats.Stopped),
		slog.Duration("elapsed", stats.Elapsed),
	)

	return s.set, stats, nil
}

// search holds the state of one Solve call.
type search struct {
	game m.Game
	cfg  solveConfig
	set  *m.SolutionSet

	mu      sync.Mutex // serialises insert and live reporting
	stopped atomic.Bool

	multisets atomic.Int64
	orderings atomic.Int64
	rejected  atomic.Int64
}

func (s *search) stats() m.SearchStats {
	return m.SearchStats{
		Multisets: s.multisets.Load(),
		Orderings: s.orderings.Load(),
		Rejected:  s.rejected.Load(),
		Solutions: s.set.Len(),
		Stopped:   s.stopped.Load(),
	}
}

// feasible reports whether the game has anything to enumerate. Games built
// without NewGame may carry negative moves; they yield an empty set.
func (s *search) feasible() bool {
	if s.game.Moves < 0 {
		return false
	}

	return s.game.Moves == 0 || len(s.game.Catalog) > 0
}

func (s *search) sequential(ctx context.Context) error {
	if !s.feasible() {
		return nil
	}

	idx := make([]int, s.game.Moves)

	for {
		if s.visit(ctx, idx) {
			return ctx.Err()
		}

		if !nextMultiset(idx, len(s.game.Catalog)) {
			return nil
		}
	}
}

func (s *search) parallel(ctx context.Context) error {
	if !s.feasible() {
		return nil
	}

	workCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gCtx := errgroup.WithContext(workCtx)
	g.SetLimit(s.cfg.workers)

	idx := make([]int, s.game.Moves)

	for {
		if s.stopped.Load() || gCtx.Err() != nil {
			break
		}

		multiset := append([]int(nil), idx...)

		g.Go(func() error {
			if s.visit(gCtx, multiset) && s.stopped.Load() {
				cancel()
			}

			return nil
		})

		if !nextMultiset(idx, len(s.game.Catalog)) {
			break
		}
	}

	_ = g.Wait()

	return ctx.Err()
}

// visit evaluates every distinct ordering of the sorted multiset. It returns
// true when enumeration must end, either because the first solution was
// found under WithStopAtFirst or because ctx is done.
func (s *search) visit(ctx context.Context, multiset []int) bool {
	s.multisets.Add(1)

	perm := append([]int(nil), multiset...)
	seq := make(m.Sequence, len(perm))

	for {
		if s.stopped.Load() || ctx.Err() != nil {
			return true
		}

		for i, ai := range perm {
			seq[i] = s.game.Catalog[ai]
		}

		s.orderings.Add(1)

		switch evaluate(s.game.Initial, s.game.Goal, seq) {
		case reached:
			if s.record(seq) {
				return true
			}
		case rejected:
			s.rejected.Add(1)
		case missed:
		}

		if !nextPermutation(perm) {
			return false
		}
	}
}

// record inserts seq by canonical string and reports whether enumeration
// must stop.
func (s *search) record(seq m.Sequence) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopped.Load() {
		return true
	}

	if key := seq.String(); !s.set.Contains(key) {
		trace, _ := Replay(s.game.Initial, seq)
		sol := m.NewSolution(seq, trace)

		s.set.Add(sol)

		if s.cfg.live != nil {
			s.cfg.live(sol)
		}
	}

	if s.cfg.stopAtFirst && s.set.Len() > 0 {
		s.stopped.Store(true)
		return true
	}

	return false
}
