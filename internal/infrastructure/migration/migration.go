package migration

import (
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"

	"github.com/cruzetta/kitpay/internal/shared/logger"
)

//go:embed scripts/*.sql
var scriptsFS embed.FS

// Runner applies versioned SQL migrations embedded in the binary.
type Runner struct {
	db     *gorm.DB
	logger logger.Interface
}

// NewRunner creates a migration runner bound to the given database.
func NewRunner(db *gorm.DB) *Runner {
	return &Runner{
		db:     db,
		logger: logger.NewLogger().With("component", "migration"),
	}
}

// Up applies all pending migrations.
func (r *Runner) Up() error {
	m, err := r.createMigrateInstance()
	if err != nil {
		return err
	}
	defer m.Close()

	currentVersion, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get current migration version: %w", err)
	}

	if dirty {
		r.logger.Warnw("database is in dirty state, please fix manually",
			"version", currentVersion)
		return fmt.Errorf("database is in dirty state at version %d", currentVersion)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		r.logger.Errorw("migration failed", "error", err)
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	finalVersion, _, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		return fmt.Errorf("failed to get final migration version: %w", err)
	}

	r.logger.Infow("migration completed successfully",
		"from_version", currentVersion,
		"to_version", finalVersion)

	return nil
}

// Down rolls back the given number of migrations.
func (r *Runner) Down(steps int) error {
	m, err := r.createMigrateInstance()
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Steps(-steps); err != nil && err != migrate.ErrNoChange {
		r.logger.Errorw("down migration failed", "error", err)
		return fmt.Errorf("failed to run down migrations: %w", err)
	}

	r.logger.Infow("down migration completed successfully", "steps", steps)
	return nil
}

// Version returns the current migration version and dirty flag.
func (r *Runner) Version() (uint, bool, error) {
	m, err := r.createMigrateInstance()
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if err == migrate.ErrNilVersion {
		return 0, false, nil
	}
	return version, dirty, err
}

func (r *Runner) createMigrateInstance() (*migrate.Migrate, error) {
	sqlDB, err := r.db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	driver, err := mysql.WithInstance(sqlDB, &mysql.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create MySQL driver: %w", err)
	}

	source, err := iofs.New(scriptsFS, "scripts")
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded migration scripts: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "mysql", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return m, nil
}
