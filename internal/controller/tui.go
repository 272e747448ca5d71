package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/calcsolve/internal/model"
	"golang.org/x/term"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	cancel  context.CancelFunc
	options []tea.ProgramOption

	program *tea.Program
	done    chan struct{}
	once    sync.Once
	err     error
}

// NewTUI creates a new TUI. cancel, if not nil, is called when the user
// quits the program so that the running search stops as well.
func NewTUI(output io.Writer, cancel context.CancelFunc, options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, cancel: cancel, options: options}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	model := newSolveModel(cfg.mode == ModeLive)

	// Get initial terminal size
	if f, ok := t.output.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil {
			model.width = width
		}
	}

	programOptions := append([]tea.ProgramOption{tea.WithOutput(t.output)}, t.options...)
	t.program = tea.NewProgram(model, programOptions...)
	t.done = make(chan struct{})

	go func() {
		defer close(t.done)

		final, err := t.program.Run()
		t.err = err

		if sm, ok := final.(solveModel); ok && sm.interrupted && t.cancel != nil {
			t.cancel()
		}
	}()

	return nil
}

// Close stops the program and waits for its final render.
func (t *TUI) Close() {
	t.once.Do(func() {
		if t.program == nil {
			return
		}

		t.program.Send(closeMsg{})
		<-t.done

		if t.err != nil {
			_, _ = fmt.Fprintf(t.output, "ui error: %v\n", t.err)
		}
	})
}

// DisplayGame starts a new section for game.
func (t *TUI) DisplayGame(game m.Game) {
	t.send(gameMsg{title: game.String(), moves: game.Moves})
}

// DisplaySolution appends a live solution to the current section.
func (t *TUI) DisplaySolution(solution m.Solution) {
	t.send(toSolutionMsg(solution))
}

// DisplaySolutions completes the current section.
func (t *TUI) DisplaySolutions(_ m.Game, set *m.SolutionSet, stats m.SearchStats) error {
	sorted := set.Sorted()

	solutions := make([]solutionMsg, 0, len(sorted))
	for _, solution := range sorted {
		solutions = append(solutions, toSolutionMsg(solution))
	}

	t.send(resultMsg{solutions: solutions, summary: summary(stats)})

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	if t.program == nil {
		return
	}

	t.program.Send(msg)
}

func toSolutionMsg(solution m.Solution) solutionMsg {
	return solutionMsg{key: solution.Key, trace: formatTrace(solution.Trace)}
}
