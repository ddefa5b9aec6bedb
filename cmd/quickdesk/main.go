package main

import (
	"os"

	"github.com/spf13/cobra"

	"quickdesk/internal/interfaces/cli/migrate"
	"quickdesk/internal/interfaces/cli/seed"
	"quickdesk/internal/interfaces/cli/server"
	"quickdesk/internal/interfaces/cli/user"
)

//	@title						QuickDesk API
//	@version					1.0
//	@description				Helpdesk ticketing with end-user, agent and admin roles.
//	@BasePath					/
//	@securityDefinitions.apikey	Bearer
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and the JWT.
func main() {
	rootCmd := &cobra.Command{
		Use:   "quickdesk",
		Short: "QuickDesk - helpdesk ticketing service",
		Long:  `QuickDesk serves the helpdesk HTTP API and ships migration, seeding and operator commands.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
