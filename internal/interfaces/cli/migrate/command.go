package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cruzetta/kitpay/internal/infrastructure/config"
	"github.com/cruzetta/kitpay/internal/infrastructure/database"
	"github.com/cruzetta/kitpay/internal/infrastructure/migration"
	"github.com/cruzetta/kitpay/internal/shared/logger"
)

var (
	env   string
	steps int
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including applying, rolling back, and checking status.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newVersionCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show current migration version",
		RunE:  runVersion,
	}
}

func initRunner() (*migration.Runner, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return migration.NewRunner(database.Get()), nil
}

func runUp(cmd *cobra.Command, args []string) error {
	runner, err := initRunner()
	if err != nil {
		return err
	}
	defer database.Close()

	return runner.Up()
}

func runDown(cmd *cobra.Command, args []string) error {
	runner, err := initRunner()
	if err != nil {
		return err
	}
	defer database.Close()

	return runner.Down(steps)
}

func runVersion(cmd *cobra.Command, args []string) error {
	runner, err := initRunner()
	if err != nil {
		return err
	}
	defer database.Close()

	version, dirty, err := runner.Version()
	if err != nil {
		return err
	}

	fmt.Printf("version: %d dirty: %t\n", version, dirty)
	return nil
}
