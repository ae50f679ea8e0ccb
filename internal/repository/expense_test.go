package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/wellnessbuddy/api/internal/model"
)

func seedExpense(t *testing.T, repo ExpenseRepository, userID, date string, cents model.Money) *model.Expense {
	t.Helper()

	now := time.Now()
	expense := &model.Expense{
		ID:        uuid.New().String(),
		UserID:    userID,
		Category:  "supplements",
		Amount:    cents,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
	err := repo.Create(expense)
	if err != nil {
		t.Fatalf("create expense on %s: %v", date, err)
	}
	return expense
}

func TestExpenseRepositoryInRange(t *testing.T) {
	database := testDB(t)
	user := seedUser(t, database, "expenses@example.com")
	repo := NewExpenseRepository(database)

	// Boundary days belong to the range; neighbors do not.
	seedExpense(t, repo, user.ID, "2026-02-28", 100)
	first := seedExpense(t, repo, user.ID, "2026-03-01", 200)
	last := seedExpense(t, repo, user.ID, "2026-03-31", 300)
	seedExpense(t, repo, user.ID, "2026-04-01", 400)

	got, err := repo.ExpensesInRange(user.ID, "2026-03-01", "2026-03-31")
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("range returned %d expenses, want 2", len(got))
	}

	ids := map[string]bool{got[0].ID: true, got[1].ID: true}
	if !ids[first.ID] || !ids[last.ID] {
		t.Errorf("range missed a boundary day: got %v", ids)
	}
}

func TestExpenseRepositoryScopedToOwner(t *testing.T) {
	database := testDB(t)
	owner := seedUser(t, database, "eowner@example.com")
	other := seedUser(t, database, "eother@example.com")
	repo := NewExpenseRepository(database)

	expense := seedExpense(t, repo, owner.ID, "2026-05-10", 1250)

	_, err := repo.ByID(other.ID, expense.ID)
	if !errors.Is(err, ErrExpenseNotFound) {
		t.Errorf("foreign ByID = %v, want ErrExpenseNotFound", err)
	}

	err = repo.Delete(other.ID, expense.ID)
	if !errors.Is(err, ErrExpenseNotFound) {
		t.Errorf("foreign Delete = %v, want ErrExpenseNotFound", err)
	}
}

func TestExpenseRepositoryAmountRoundTrips(t *testing.T) {
	database := testDB(t)
	user := seedUser(t, database, "cents@example.com")
	repo := NewExpenseRepository(database)

	expense := seedExpense(t, repo, user.ID, "2026-06-01", 1975)

	got, err := repo.ByID(user.ID, expense.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if got.Amount != 1975 {
		t.Errorf("amount = %d cents, want 1975", got.Amount)
	}
	if got.Amount.String() != "19.75" {
		t.Errorf("amount string = %q, want 19.75", got.Amount.String())
	}
}
