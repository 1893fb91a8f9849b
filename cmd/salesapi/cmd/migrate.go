package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/salesdesk/sales-api/internal/infrastructure/db/postgres"
	"github.com/salesdesk/sales-api/pkg/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the credential store schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, closeDB, err := openMigrator(cmd)
		if err != nil {
			return err
		}
		defer closeDB()

		log := logger.Get()
		applied, err := m.Up(cmd.Context())
		if err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		if len(applied) == 0 {
			log.Info().Msg("no new migrations to apply")
			return nil
		}
		for _, name := range applied {
			log.Info().Str("migration", name).Msg("applied")
		}
		return nil
	},
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, closeDB, err := openMigrator(cmd)
		if err != nil {
			return err
		}
		defer closeDB()

		log := logger.Get()
		name, err := m.Down(cmd.Context())
		if err != nil {
			return fmt.Errorf("rollback failed: %w", err)
		}
		if name == "" {
			log.Info().Msg("nothing to roll back")
			return nil
		}
		log.Info().Str("migration", name).Msg("rolled back")
		return nil
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List applied migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, closeDB, err := openMigrator(cmd)
		if err != nil {
			return err
		}
		defer closeDB()

		applied, err := m.Status(cmd.Context())
		if err != nil {
			return err
		}
		for _, name := range applied {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
		return nil
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd)
}

func openMigrator(cmd *cobra.Command) (*postgres.Migrator, func(), error) {
	db, err := postgres.Open(cmd.Context(), postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	return postgres.NewMigrator(db), func() { _ = db.Close() }, nil
}
