package controller

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"
	"time"

	m "github.com/mouse-blink/calcsolve/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra command's writers. Solutions go to
// stdout, game headers and statistics to stderr so that plain output stays
// one sequence per line.
type SimpleUI struct {
	cmd    *cobra.Command
	format Format
	cfg    StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, format Format) *SimpleUI {
	return &SimpleUI{cmd: cmd, format: format, cfg: newStartConfig()}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	s.cfg = newStartConfig(options...)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// DisplayGame prints the game being solved.
func (s *SimpleUI) DisplayGame(game m.Game) {
	s.errorf("%s\n", game)
}

// DisplaySolution prints a freshly found solution in plain live mode.
func (s *SimpleUI) DisplaySolution(solution m.Solution) {
	if s.format == FormatTable {
		return
	}

	s.printf("%s\n", solution.Key)
}

// DisplaySolutions prints the final solution set and a summary line.
func (s *SimpleUI) DisplaySolutions(game m.Game, set *m.SolutionSet, stats m.SearchStats) error {
	switch {
	case s.format == FormatTable:
		s.renderTable(game, set.Sorted())
	case s.cfg.mode != ModeLive:
		for _, solution := range set.Sorted() {
			s.printf("%s\n", solution.Key)
		}
	}

	s.errorf("%s\n", summary(stats))

	return nil
}

func (s *SimpleUI) renderTable(game m.Game, solutions []m.Solution) {
	if len(solutions) == 0 {
		s.printf("No solution within %d move(s)\n", game.Moves)
		return
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Sequence", "Trace"})
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for i, solution := range solutions {
		table.Append([]string{fmt.Sprintf("%d", i+1), solution.Key, formatTrace(solution.Trace)})
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total %d", len(solutions)), ""})
	table.Render()

	s.printf("%s", tableBuffer.String())
}

func formatTrace(trace []*big.Int) string {
	parts := make([]string, len(trace))
	for i, v := range trace {
		parts[i] = v.String()
	}

	return strings.Join(parts, " -> ")
}

func summary(stats m.SearchStats) string {
	line := fmt.Sprintf("%d solution(s), %d ordering(s) evaluated, %d rejected in %s",
		stats.Solutions, stats.Orderings, stats.Rejected, stats.Elapsed.Round(time.Microsecond))
	if stats.Stopped {
		line += " (stopped at first)"
	}

	return line
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errorf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
