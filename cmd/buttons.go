package cmd

import (
	"github.com/mouse-blink/calcsolve/internal/adapter"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// buttonsCmd represents the buttons command.
var buttonsCmd = newButtonsCmd()

func newButtonsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buttons",
		Short: "List the recognised button grammar",
		Long:  "List the button kinds in the order tokens are matched against them.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Button", "Syntax"})
			table.SetAutoWrapText(false)
			table.SetBorder(false)
			table.SetCenterSeparator("")

			for _, matcher := range adapter.NewActionParser().Matchers() {
				table.Append([]string{matcher.Name(), matcher.Usage()})
			}

			table.Render()

			return nil
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(buttonsCmd)
}
