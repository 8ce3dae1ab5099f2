package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// configPath is the config file given with --config; empty searches ./ and ./config.
var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "reconciler",
		Short: "Adyen notification reconciler",
		Long:  `Receives Adyen webhook notifications and reconciles payment, refund and order state.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")

	rootCmd.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newHashPasswordCommand(),
	)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
