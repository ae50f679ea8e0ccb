package model

import (
	"time"
)

const (
	GoalCategoryHealth    = "health"
	GoalCategoryFinance   = "finance"
	GoalCategoryLegal     = "legal"
	GoalCategoryLifestyle = "lifestyle"
)

var GoalCategories = []string{
	GoalCategoryHealth,
	GoalCategoryFinance,
	GoalCategoryLegal,
	GoalCategoryLifestyle,
}

func ValidGoalCategory(category string) bool {
	for _, c := range GoalCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Goal struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"user_id"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	TargetDate  *string   `db:"target_date" json:"target_date"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
