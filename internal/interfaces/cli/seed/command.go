package seed

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"quickdesk/internal/infrastructure/auth"
	"quickdesk/internal/infrastructure/config"
	"quickdesk/internal/infrastructure/database"
	"quickdesk/internal/infrastructure/repository"
	infraSeed "quickdesk/internal/infrastructure/seed"
	shareddb "quickdesk/internal/shared/db"
	"quickdesk/internal/shared/logger"
)

var (
	env      string
	seedFile string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load categories and admin accounts from a YAML file",
		Long:  `Create missing categories and admin accounts. Running the same file twice changes nothing.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&seedFile, "file", "f", "configs/seed.yaml", "Path to the seed file")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	file, err := infraSeed.LoadFile(seedFile)
	if err != nil {
		return err
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	db := database.Get()
	seeder := infraSeed.NewSeeder(
		repository.NewCategoryRepository(db),
		repository.NewUserRepository(db, log),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		shareddb.NewTransactionManager(db),
		log,
	)

	result, err := seeder.Apply(context.Background(), file)
	if err != nil {
		log.Errorw("seeding failed", "file", seedFile, "error", err)
		return fmt.Errorf("seeding failed: %w", err)
	}

	fmt.Printf("Seed applied: %d categories created, %d admins created or promoted\n", result.Categories, result.Admins)
	return nil
}
