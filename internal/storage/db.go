package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/cbdowney09-alt/WorkProof/internal/storage/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// gooseDialect maps our driver names to goose dialects.
func gooseDialect(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return "sqlite3", nil
	case DriverPostgres:
		return "postgres", nil
	default:
		return "", fmt.Errorf("unknown storage driver: %s", driver)
	}
}

// sqlDriverName maps our driver names to registered database/sql drivers.
func sqlDriverName(driver string) (string, error) {
	switch driver {
	case DriverSQLite:
		return "sqlite", nil
	case DriverPostgres:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unknown storage driver: %s", driver)
	}
}

// RunMigrations applies the embedded kv migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB, driver string) error {
	goose.SetBaseFS(migrations.Migrations)

	dialect, err := gooseDialect(driver)
	if err != nil {
		return err
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens the configured database, applies migrations, and returns the
// handle together with the Manager for the same backend.
func Open(ctx context.Context, driver, dsn string) (*sql.DB, Manager, error) {
	name, err := sqlDriverName(driver)
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open(name, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := RunMigrations(ctx, db, driver); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	m, err := NewManager(driver)
	if err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return db, m, nil
}
