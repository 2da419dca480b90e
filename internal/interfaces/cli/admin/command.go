package admin

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"hilla/internal/infrastructure/bootstrap"
	"hilla/internal/infrastructure/config"
	"hilla/internal/infrastructure/database"
	"hilla/internal/infrastructure/migration"
	sharedconfig "hilla/internal/shared/config"
	"hilla/internal/shared/logger"
)

var (
	env      string
	username string
	email    string
	password string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administrative account tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(newEnsureCommand())

	return cmd
}

func newEnsureCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ensure",
		Short: "Create the admin account if it does not exist",
		Long:  `Idempotently create the admin staff account. An existing account keeps its password and is promoted to admin if needed.`,
		RunE:  runEnsure,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "admin", "Admin username")
	cmd.Flags().StringVar(&email, "email", "admin@hilla.local", "Admin email address")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Admin password (prompted when omitted)")

	return cmd
}

func runEnsure(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if password == "" {
		password = cfg.Admin.Password
	}
	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		password = strings.TrimSpace(string(raw))
	}
	if password == "" {
		return fmt.Errorf("password must not be empty")
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return err
	}

	return bootstrap.EnsureDefaultAdmin(database.Get(), &sharedconfig.AdminConfig{
		Username: username,
		Password: password,
		Email:    email,
	})
}
