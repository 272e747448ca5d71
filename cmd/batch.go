package cmd

import (
	"github.com/mouse-blink/calcsolve/internal/domain"
	m "github.com/mouse-blink/calcsolve/internal/model"
	"github.com/spf13/cobra"
)

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

const batchLongDescription = `Solve every game listed in a YAML file, in order.

  version: 1
  games:
    - name: level 12
      moves: 3
      goal: 21
      initial: 0
      actions: ["+1", "2", "reverse"]

All games are parsed before the first search starts.`

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Solve the games listed in a YAML file",
		Long:  batchLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Batch(cmd.Context(), domain.BatchArgs{
				Path:          m.Path(args[0]),
				SearchOptions: searchOptions(),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
