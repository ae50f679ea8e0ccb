package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/wellnessbuddy/api/internal/model"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
)

type ExpenseRepository interface {
	Create(expense *model.Expense) error
	ByID(userID, expenseID string) (*model.Expense, error)
	Expenses(userID string) ([]*model.Expense, error)
	ExpensesInRange(userID, startDate, endDate string) ([]*model.Expense, error)
	Update(expense *model.Expense) error
	Delete(userID, expenseID string) error
}

type expenseRepository struct {
	db *sqlx.DB
}

func NewExpenseRepository(db *sqlx.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(expense *model.Expense) error {
	query := `INSERT INTO expenses (id, user_id, goal_id, category, amount_cents, expense_date, description, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		expense.ID,
		expense.UserID,
		expense.GoalID,
		expense.Category,
		expense.Amount,
		expense.Date,
		expense.Description,
		expense.CreatedAt,
		expense.UpdatedAt,
	)

	return err
}

func (r *expenseRepository) ByID(userID, expenseID string) (*model.Expense, error) {
	expense := &model.Expense{}
	query := `SELECT * FROM expenses WHERE id = $1 AND user_id = $2`

	err := r.db.Get(expense, query, expenseID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrExpenseNotFound
	}

	return expense, err
}

func (r *expenseRepository) Expenses(userID string) ([]*model.Expense, error) {
	var expenses []*model.Expense
	query := `SELECT * FROM expenses WHERE user_id = $1 ORDER BY expense_date DESC`

	err := r.db.Select(&expenses, query, userID)
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

// ExpensesInRange lists the user's expenses with startDate <= date <= endDate.
// Dates are ISO YYYY-MM-DD strings, so the comparison is well defined on both
// drivers.
func (r *expenseRepository) ExpensesInRange(userID, startDate, endDate string) ([]*model.Expense, error) {
	var expenses []*model.Expense
	query := `SELECT * FROM expenses
	          WHERE user_id = $1 AND expense_date >= $2 AND expense_date <= $3
	          ORDER BY expense_date DESC`

	err := r.db.Select(&expenses, query, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	return expenses, nil
}

func (r *expenseRepository) Update(expense *model.Expense) error {
	query := `UPDATE expenses
	          SET goal_id = $1, category = $2, amount_cents = $3, expense_date = $4, description = $5, updated_at = $6
	          WHERE id = $7 AND user_id = $8`

	result, err := r.db.Exec(query,
		expense.GoalID,
		expense.Category,
		expense.Amount,
		expense.Date,
		expense.Description,
		expense.UpdatedAt,
		expense.ID,
		expense.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrExpenseNotFound
	}

	return nil
}

func (r *expenseRepository) Delete(userID, expenseID string) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, expenseID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrExpenseNotFound
	}

	return nil
}
