package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"hilla/internal/infrastructure/config"
	"hilla/internal/infrastructure/database"
	"hilla/internal/infrastructure/migration"
	"hilla/internal/infrastructure/persistence/seeds"
	"hilla/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Demo data management",
		Long:  `Load or clear the demo dataset used for local development and screenshots.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newDemoCommand(), newClearCommand())

	return cmd
}

func newDemoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Load demo categories and tickets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func() error {
				if err := seeds.SeedDemoData(database.Get()); err != nil {
					return err
				}
				logger.Info("demo data loaded")
				return nil
			})
		},
	}
}

func newClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all tickets, comments, and ratings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func() error {
				if err := seeds.ClearTickets(database.Get()); err != nil {
					return err
				}
				logger.Info("tickets cleared")
				return nil
			})
		},
	}
}

func withDatabase(fn func() error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return err
	}

	return fn()
}
