package model

import (
	"time"
)

type Expense struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	GoalID      *string   `db:"goal_id" json:"goal_id"`
	Category    string    `db:"category" json:"category"`
	Amount      Money     `db:"amount_cents" json:"amount"`
	Date        string    `db:"expense_date" json:"date"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
