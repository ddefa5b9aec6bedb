package user

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"quickdesk/internal/application/user/usecases"
	"quickdesk/internal/infrastructure/config"
	"quickdesk/internal/infrastructure/database"
	"quickdesk/internal/infrastructure/repository"
	"quickdesk/internal/shared/logger"
)

var (
	env   string
	email string
	role  string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Operator account tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.AddCommand(newSetRoleCommand())

	return cmd
}

func newSetRoleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set-role",
		Short: "Assign any role to an existing account",
		Long:  `Assign end-user, agent or admin to the account with the given email. This is how the first admin is created.`,
		RunE:  runSetRole,
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email (required)")
	cmd.Flags().StringVar(&role, "role", "", "end-user, agent or admin (required)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("role")

	return cmd
}

func runSetRole(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	uc := usecases.NewAssignRoleUseCase(repository.NewUserRepository(database.Get(), log), log)
	result, err := uc.Execute(context.Background(), usecases.AssignRoleCommand{Email: email, Role: role})
	if err != nil {
		return fmt.Errorf("failed to set role: %w", err)
	}

	fmt.Printf("User %s (id %d) now has role %s\n", result.Email, result.ID, result.Role)
	return nil
}
