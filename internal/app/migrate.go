package app

import (
	"context"
	"database/sql"
	"fmt"

	"finance-ledger/internal/config"
	"finance-ledger/internal/database"

	_ "github.com/lib/pq"
)

// MigrateOptions are the migrate command's settings.
type MigrateOptions struct {
	Seed   bool
	Status bool
}

// RunMigrate applies pending SQL migrations, optionally loads seed files,
// or only reports the schema version when Status is set.
func RunMigrate(ctx context.Context, cfg *config.Config, opts MigrateOptions) error {
	logger := cfg.NewLogger()

	sqlDB, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer sqlDB.Close()

	dbCfg := cfg.Database
	dbCfg.SeedDatabase = dbCfg.SeedDatabase || opts.Seed
	runner := database.NewMigrationRunner(sqlDB, &dbCfg, logger)

	if opts.Status {
		if err := runner.WaitForDatabase(ctx); err != nil {
			return err
		}
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return fmt.Errorf("failed to read migration status: %w", err)
		}
		logger.Info("migration status", "version", version, "dirty", dirty)
		return nil
	}

	if err := runner.Run(ctx); err != nil {
		return err
	}

	logger.Info("migrations complete")
	return nil
}
