package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sabot.dev/pkg/sabot/internal/domain"
	m "sabot.dev/pkg/sabot/internal/model"
)

var batchParallelFlag int
var batchModeFlag string

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [paths...]",
		Short: "Mutate every patch file under the given paths",
		Long:  batchLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := m.ParseMode(batchModeFlag)
			if err != nil {
				return err
			}

			return workflow.Batch(cmd.Context(), domain.BatchArgs{
				Paths:   parsePaths(args),
				Mode:    mode,
				Output:  m.Path(viper.GetString(outputFlagName)),
				Threads: viper.GetInt(runParallelConfigKey),
			})
		},
	}

	configureBatchFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func configureBatchFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&batchParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringVarP(&batchModeFlag, modeFlagName, "m", "", "mutation mode (unwrap, unsafe, panic)")
	cobra.CheckErr(cmd.MarkFlagRequired(modeFlagName))
}
