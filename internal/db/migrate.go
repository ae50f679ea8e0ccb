package db

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/pressly/goose/v3"
)

//go:embed migrations
var migrationsFS embed.FS

// gooseDialect translates our driver names into goose's.
func gooseDialect(driver string) string {
	switch driver {
	case "sqlite":
		return "sqlite3"
	case "pgx":
		return "postgres"
	}
	return driver
}

func prepareGoose(driver string) error {
	err := goose.SetDialect(gooseDialect(driver))
	if err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	sub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open embedded migrations: %w", err)
	}
	goose.SetBaseFS(sub)
	return nil
}

// RunMigrations applies every pending migration from the embedded set.
func RunMigrations(db *sql.DB, driver string) error {
	err := prepareGoose(driver)
	if err != nil {
		return err
	}

	err = goose.Up(db, ".")
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Info("migrations applied")
	return nil
}

// MigrateDown rolls back the most recent migration.
func MigrateDown(db *sql.DB, driver string) error {
	err := prepareGoose(driver)
	if err != nil {
		return err
	}

	err = goose.Down(db, ".")
	if err != nil {
		return fmt.Errorf("failed to rollback migration: %w", err)
	}

	slog.Info("rolled back one migration")
	return nil
}
