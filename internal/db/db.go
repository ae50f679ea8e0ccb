package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Init opens the store. driver is "sqlite" or "pgx"; connection is a file
// path (plus pragmas) or a Postgres DSN.
func Init(driver, connection string) (*sqlx.DB, error) {
	inMemory := driver == "sqlite" && strings.Contains(connection, ":memory:")

	if driver == "sqlite" && !inMemory {
		err := os.MkdirAll(filepath.Dir(connection), 0755)
		if err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	database, err := sqlx.Connect(driver, connection)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if inMemory {
		// An in-memory SQLite database exists per connection; pin a single
		// one so migrations and queries share the schema.
		database.SetMaxOpenConns(1)
		database.SetMaxIdleConns(1)
	} else {
		database.SetMaxOpenConns(25)
		database.SetMaxIdleConns(5)
		database.SetConnMaxLifetime(5 * time.Minute)
	}

	slog.Info("database connected", "driver", driver)
	return database, nil
}
