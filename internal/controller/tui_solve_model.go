package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// gameView is one solved (or in progress) game in the TUI.
type gameView struct {
	title     string
	moves     int
	solutions []solutionMsg
	summary   string
	done      bool
}

// solveModel shows games as they are searched, with a spinner while the
// current search runs.
type solveModel struct {
	spinner  spinner.Model
	live     bool
	games    []gameView
	width    int // 0 means unknown, lines are not clipped
	quitting bool
	// interrupted is set when the user quits before the workflow closes the UI.
	interrupted bool
}

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)
	keyStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	traceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	summaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(0, 0, 1, 0)
)

func newSolveModel(live bool) solveModel {
	return solveModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("6"))),
		),
		live: live,
	}
}

func (sm solveModel) Init() tea.Cmd {
	return sm.spinner.Tick
}

func (sm solveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			sm.quitting = true
			sm.interrupted = true

			return sm, tea.Quit
		}

	case tea.WindowSizeMsg:
		sm.width = msg.Width

	case gameMsg:
		sm.games = append(sm.games, gameView{title: msg.title, moves: msg.moves})

	case solutionMsg:
		if current := sm.current(); current != nil && sm.live {
			current.solutions = append(current.solutions, msg)
		}

	case resultMsg:
		if current := sm.current(); current != nil {
			if !sm.live {
				current.solutions = msg.solutions
			}

			current.summary = msg.summary
			current.done = true
		}

	case closeMsg:
		sm.quitting = true
		return sm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd

		sm.spinner, cmd = sm.spinner.Update(msg)

		return sm, cmd
	}

	return sm, nil
}

// current returns the game being searched, or nil before the first game.
func (sm *solveModel) current() *gameView {
	if len(sm.games) == 0 {
		return nil
	}

	return &sm.games[len(sm.games)-1]
}

func (sm solveModel) clip(line string) string {
	if sm.width <= 0 {
		return line
	}

	return lipgloss.NewStyle().MaxWidth(sm.width).Render(line)
}

func (sm solveModel) View() string {
	var b strings.Builder

	for _, game := range sm.games {
		b.WriteString(titleStyle.Render("🧮 "+game.title) + "\n")

		for i, solution := range game.solutions {
			line := fmt.Sprintf("  %3d. %s  %s", i+1, keyStyle.Render(solution.key), traceStyle.Render(solution.trace))
			b.WriteString(sm.clip(line) + "\n")
		}

		if !game.done {
			if !sm.quitting {
				fmt.Fprintf(&b, "  %s searching…\n", sm.spinner.View())
			}

			continue
		}

		if len(game.solutions) == 0 {
			b.WriteString("  " + emptyStyle.Render(fmt.Sprintf("No solution within %d move(s)", game.moves)) + "\n")
		}

		b.WriteString(summaryStyle.Render("  "+game.summary) + "\n")
	}

	return b.String()
}
