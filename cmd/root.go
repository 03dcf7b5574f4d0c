// Package cmd provides the root command and CLI setup for sabot.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"sabot.dev/pkg/sabot/internal/adapter"
	"sabot.dev/pkg/sabot/internal/controller"
	"sabot.dev/pkg/sabot/internal/domain"
	m "sabot.dev/pkg/sabot/internal/model"
)

var patchFS adapter.PatchFSAdapter
var reportStore adapter.ReportStore
var mutator domain.Mutator
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that write mutated
// patches and reports.
var outputDirFlag string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	patchFS = adapter.NewLocalPatchFSAdapter()
	reportStore = adapter.NewReportStore()
	mutator = domain.NewMutator()
	workflow = domain.NewWorkflow(patchFS, reportStore, ui, mutator)
}

const modesHelp = `Mutation modes:
  - unwrap   replace error propagation (?) with .unwrap() calls
  - unsafe   wrap calls in unsafe blocks without SAFETY comments
  - panic    replace control flow with panic!() invocations`

const rootLongDescription = `Sabot rewrites the added lines of a unified-diff patch so the patch still
plausibly compiles but carries exactly one policy violation. The mutated
patch is then fed to an external build/test harness to check whether
violation detectors (lint, review, or model-based) catch the defect.

` + modesHelp

const mutateLongDescription = `Mutate a single unified-diff patch file.

When no structural rewrite applies, a marker comment is appended to the
first eligible added line instead; if even that fails, the patch is written
unchanged and a warning is printed (the exit code stays 0).

` + modesHelp

const batchLongDescription = `Mutate every *.patch and *.diff file under the given paths.

Mutated patches keep their base name under the output directory, next to a
manifest.yaml recording the per-patch mutation counts.

` + modesHelp

const listLongDescription = `List the file sections of the given patches with their added-line counts
and, per mode, whether a structural mutation would apply.

` + modesHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sabot",
		Short: "Patch sabotage tool for policy-violation detectors",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for mutated patches and reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
