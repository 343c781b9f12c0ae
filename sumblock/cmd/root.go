// Package cmd provides the command-line interface of sumblock.
package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// NewRootCommand creates the sumblock command with all its subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sumblock",
		Short: "sumblock runs add/subtract/sum blocks in a simulator.",
		Long: `sumblock runs add/subtract/sum blocks in a discrete event ` +
			`simulator. A scenario file describes the block and the operand ` +
			`values of every step.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("env-file", DefaultEnvFile,
		"dotenv file that provides SUMBLOCK_* defaults")

	rootCmd.AddCommand(newRunCommand())
	rootCmd.AddCommand(newParamsCommand())
	rootCmd.AddCommand(newReportCommand())

	return rootCmd
}

// Execute runs the command line and returns the exit code.
func Execute(ctx context.Context) int {
	err := NewRootCommand().ExecuteContext(ctx)
	if err != nil {
		return 1
	}

	return 0
}

func overrideBool(flags *pflag.FlagSet, name string, v *bool) {
	if flags.Changed(name) {
		*v, _ = flags.GetBool(name)
	}
}

func overrideString(flags *pflag.FlagSet, name string, v *string) {
	if flags.Changed(name) {
		*v, _ = flags.GetString(name)
	}
}

func overrideInt(flags *pflag.FlagSet, name string, v *int) {
	if flags.Changed(name) {
		*v, _ = flags.GetInt(name)
	}
}
