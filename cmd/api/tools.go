package main

import (
	"bufio"
	"fmt"
	"strings"

	"adyen-notification-reconciler/config"
	pgStorage "adyen-notification-reconciler/internal/adapter/storage/postgres"
	"adyen-notification-reconciler/internal/service"
	"adyen-notification-reconciler/pkg/logger"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

				pool, err := pgStorage.NewPool(cmd.Context(), cfg.Database, log)
				if err != nil {
					return fmt.Errorf("connect postgres: %w", err)
				}
				defer pool.Close()

				return pgStorage.Migrate(cmd.Context(), pool, log)
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show the applied schema version",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

				pool, err := pgStorage.NewPool(cmd.Context(), cfg.Database, log)
				if err != nil {
					return fmt.Errorf("connect postgres: %w", err)
				}
				defer pool.Close()

				v, err := pgStorage.SchemaVersion(cmd.Context(), pool)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "schema version: %d\n", v)
				return nil
			},
		},
	)
	return cmd
}

// newHashPasswordCommand prints the argon2id hash to put in
// merchants.<code>.password_hash. The password is read from stdin.
func newHashPasswordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Hash a notification Basic auth password read from stdin",
		RunE: func(cmd *cobra.Command, _ []string) error {
			line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read password: %w", err)
			}
			password := strings.TrimRight(line, "\r\n")
			if password == "" {
				return fmt.Errorf("empty password")
			}

			hash, err := service.NewArgon2HashService().Hash(password)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
