package main

import (
	"os"

	"github.com/spf13/cobra"

	"hilla/internal/interfaces/cli/admin"
	"hilla/internal/interfaces/cli/migrate"
	"hilla/internal/interfaces/cli/seed"
	"hilla/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hilla",
		Short: "Hilla - campus support desk",
		Long:  `Hilla is the campus support desk: ticket intake, staff queue, dashboard aggregation, and AI-assisted text tools.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		admin.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
