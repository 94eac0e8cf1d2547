package main

import (
	"github.com/spf13/cobra"

	"fyne-decor/internal/logger"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:           "decor",
		Short:         "Demo and tooling for the fyne-decor decoration library",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logger.SetLevel("debug")
			} else {
				logger.SetLevel("info")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGalleryCmd())
	cmd.AddCommand(newExportCmd())

	return cmd
}
