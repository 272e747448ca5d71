// Package cmd provides the root command and CLI setup for calcsolve.
package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/mouse-blink/calcsolve/internal/adapter"
	"github.com/mouse-blink/calcsolve/internal/controller"
	"github.com/mouse-blink/calcsolve/internal/domain"
	m "github.com/mouse-blink/calcsolve/internal/model"
	"github.com/spf13/cobra"
)

// workflow is wired on first use so that output flags are known. Tests
// replace it with a mock.
var workflow domain.Workflow

var liveFlag bool
var firstFlag bool
var parallelFlag int
var formatFlag string
var nameFlag string
var verboseFlag bool
var noTTYFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calcsolve [flags] MOVES GOAL INITIAL [ACTION...]",
		Short: "Calculator game solver",
		Long: `calcsolve finds every sequence of exactly MOVES button presses that turns
INITIAL into GOAL on a calculator with the given buttons.

Flags go before the positional arguments so that negative numbers such as
-10 are read as values:

  calcsolve 3 21 0 +1 2 reverse
  calcsolve --live 3 -10 0 +5 +/-

Run "calcsolve buttons" to list the recognised button grammar.`,
		Args:              cobra.MinimumNArgs(3),
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			moves, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: moves %q is not an integer", m.ErrInvalidGame, args[0])
			}

			return workflow.Solve(cmd.Context(), domain.SolveArgs{
				Game: m.RawGame{
					Name:    nameFlag,
					Moves:   moves,
					Goal:    args[1],
					Initial: args[2],
					Actions: args[3:],
				},
				SearchOptions: searchOptions(),
			})
		},
	}

	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVar(&nameFlag, "name", "", "label shown with the game")

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&liveFlag, "live", "l", false, "print solutions as soon as they are found")
	flags.BoolVarP(&firstFlag, "first", "f", false, "stop after the first solution")
	flags.IntVarP(&parallelFlag, "parallel", "p", 1, "number of search workers (0 uses every CPU)")
	flags.StringVar(&formatFlag, "format", string(controller.FormatAuto), "output format: auto, plain or table")
	flags.BoolVarP(&verboseFlag, "verbose", "v", false, "log search progress to stderr")
	flags.BoolVar(&noTTYFlag, "no-tty", false, "never start the interactive terminal UI")

	return cmd
}

func searchOptions() domain.SearchOptions {
	return domain.SearchOptions{
		Live:        liveFlag,
		StopAtFirst: firstFlag,
		Threads:     parallelFlag,
	}
}

// setup validates output flags and wires the workflow unless one is
// already installed.
func setup(cmd *cobra.Command, _ []string) error {
	format, err := controller.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	if parallelFlag < 0 {
		return fmt.Errorf("invalid --parallel %d: must not be negative", parallelFlag)
	}

	if workflow != nil {
		return nil
	}

	logger := newLogger(cmd.ErrOrStderr(), verboseFlag)
	useTTY := !noTTYFlag && controller.IsTTY(cmd.OutOrStdout())

	// The TUI reads ctrl+c as a key, so quitting it must stop the search.
	ctx, cancel := context.WithCancel(cmd.Context())
	cmd.SetContext(ctx)

	workflow = domain.NewWorkflow(
		adapter.NewActionParser(),
		adapter.NewGameStore(),
		controller.NewUI(cmd, useTTY, format, cancel),
		domain.NewEngine(logger),
	)

	return nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}
