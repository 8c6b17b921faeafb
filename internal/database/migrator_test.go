package database

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"finance-ledger/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRunner(t *testing.T, cfg config.DatabaseConfig) (*MigrationRunner, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewMigrationRunner(db, &cfg, slog.New(slog.NewTextHandler(io.Discard, nil))), mock
}

func fastRetries(t *testing.T, retries int) {
	t.Helper()

	originalRetries, originalInterval := maxRetries, retryInterval
	maxRetries, retryInterval = retries, 10*time.Millisecond
	t.Cleanup(func() {
		maxRetries, retryInterval = originalRetries, originalInterval
	})
}

func writeSeed(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestNewMigrationRunner(t *testing.T) {
	runner, _ := newTestRunner(t, config.DatabaseConfig{
		MigrationsPath: "db/migrations",
		SeedsPath:      "db/seeds",
		AutoMigrate:    true,
		SeedDatabase:   true,
	})

	assert.Equal(t, "db/migrations", runner.migrationsPath)
	assert.Equal(t, "db/seeds", runner.seedsPath)
	assert.True(t, runner.autoMigrate)
	assert.True(t, runner.seed)
}

func TestWaitForDatabase_RetriesUntilReady(t *testing.T) {
	fastRetries(t, 3)
	runner, mock := newTestRunner(t, config.DatabaseConfig{})

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	require.NoError(t, runner.WaitForDatabase(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_GivesUp(t *testing.T) {
	fastRetries(t, 2)
	runner, mock := newTestRunner(t, config.DatabaseConfig{})

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	err := runner.WaitForDatabase(context.Background())
	assert.ErrorContains(t, err, "database not ready after 2 attempts")
}

func TestWaitForDatabase_StopsOnCancel(t *testing.T) {
	fastRetries(t, 50)
	runner, mock := newTestRunner(t, config.DatabaseConfig{})
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, runner.WaitForDatabase(ctx), context.Canceled)
}

func TestRunMigrations_MissingDirectoryIsSkipped(t *testing.T) {
	runner, _ := newTestRunner(t, config.DatabaseConfig{MigrationsPath: "/nonexistent/migrations"})
	assert.NoError(t, runner.RunMigrations())
}

func TestRunIfEnabled_Disabled(t *testing.T) {
	runner, mock := newTestRunner(t, config.DatabaseConfig{AutoMigrate: false})

	require.NoError(t, runner.RunIfEnabled(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_Disabled(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "001_users.sql", "INSERT INTO users VALUES (1);")

	runner, mock := newTestRunner(t, config.DatabaseConfig{SeedsPath: dir, SeedDatabase: false})

	require.NoError(t, runner.LoadSeeds(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_ExecutesInOrderAndSkipsFailures(t *testing.T) {
	dir := t.TempDir()
	writeSeed(t, dir, "002_accounts.sql", "INSERT INTO accounts (id) VALUES ('b');")
	writeSeed(t, dir, "001_users.sql", "INSERT INTO users (id) VALUES ('a');")
	writeSeed(t, dir, "003_budgets.sql", "INSERT INTO budgets (id) VALUES ('c');")
	writeSeed(t, dir, "notes.txt", "ignored")

	runner, mock := newTestRunner(t, config.DatabaseConfig{SeedsPath: dir, SeedDatabase: true})

	mock.ExpectExec("INSERT INTO users").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO accounts").WillReturnError(errors.New("relation does not exist"))
	mock.ExpectExec("INSERT INTO budgets").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, runner.LoadSeeds(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_EmptyDirectory(t *testing.T) {
	runner, mock := newTestRunner(t, config.DatabaseConfig{SeedsPath: t.TempDir(), SeedDatabase: true})

	require.NoError(t, runner.LoadSeeds(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
