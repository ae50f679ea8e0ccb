package service

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/wellnessbuddy/api/internal/db"
	"github.com/wellnessbuddy/api/internal/model"
	"github.com/wellnessbuddy/api/internal/repository"
)

// testDB opens a fresh in-memory SQLite database with the full schema.
func testDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close() })

	err = db.RunMigrations(database.DB, "sqlite")
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return database
}

func seedUser(t *testing.T, database *sqlx.DB, email string) *model.User {
	t.Helper()

	user := &model.User{Email: email}
	err := repository.NewUserRepository(database).Create(user)
	if err != nil {
		t.Fatalf("failed to seed user %s: %v", email, err)
	}
	return user
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
