package cmd

import (
	"github.com/spf13/cobra"

	"sabot.dev/pkg/sabot/internal/domain"
	m "sabot.dev/pkg/sabot/internal/model"
)

var mutateInPatchFlag string
var mutateOutPatchFlag string
var mutateModeFlag string

// mutateCmd represents the mutate command.
var mutateCmd = newMutateCmd()

func newMutateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutate",
		Short: "Mutate a single patch file",
		Long:  mutateLongDescription,
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode, err := m.ParseMode(mutateModeFlag)
			if err != nil {
				return err
			}

			return workflow.Mutate(cmd.Context(), domain.MutateArgs{
				Input:  m.Path(mutateInPatchFlag),
				Output: m.Path(mutateOutPatchFlag),
				Mode:   mode,
			})
		},
	}

	configureMutateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(mutateCmd)
}

func configureMutateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&mutateInPatchFlag, "in-patch", "", "input patch file")
	cmd.Flags().StringVar(&mutateOutPatchFlag, "out-patch", "", "output path for the mutated patch")
	cmd.Flags().StringVarP(&mutateModeFlag, modeFlagName, "m", "", "mutation mode (unwrap, unsafe, panic)")

	cobra.CheckErr(cmd.MarkFlagRequired("in-patch"))
	cobra.CheckErr(cmd.MarkFlagRequired("out-patch"))
	cobra.CheckErr(cmd.MarkFlagRequired(modeFlagName))
}
