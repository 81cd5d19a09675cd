package main

import (
	"os"

	"github.com/spf13/cobra"

	"superapp/config"
	"superapp/pkg/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "superapp",
		Short:         "State layer for the dishcovery, skyflow and assistant features",
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), config.Load())
		},
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runServe(cmd.Context(), config.Load())
			},
		},
		&cobra.Command{
			Use:   "routes",
			Short: "Print the navigation table",
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg := config.Load()
				return printRoutes(cmd.OutOrStdout(), cfg.BasePath, logger.NewNop())
			},
		},
	)

	return root
}
