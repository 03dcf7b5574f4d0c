package cmd

import (
	"github.com/spf13/cobra"

	"sabot.dev/pkg/sabot/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "Preview which modes would mutate the given patches",
		Long:  listLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Preview(cmd.Context(), domain.PreviewArgs{
				Paths: parsePaths(args),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
