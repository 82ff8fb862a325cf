package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	seed       int64
	logFile    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "kindred",
		Short:         "Kindred composes two-layer logos from a palette and a shape catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, launch the composer
			return runComposer(cmd, flags)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a kindred YAML config")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().Int64Var(&flags.seed, "seed", 0, "Seed for reproducible randomize")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Append JSON logs to this file")

	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newShapesCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
