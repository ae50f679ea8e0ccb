package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/wellnessbuddy/api/internal/model"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

type GoalRepository interface {
	Create(goal *model.Goal) error
	ByID(userID, goalID string) (*model.Goal, error)
	Goals(userID string) ([]*model.Goal, error)
	Update(goal *model.Goal) error
	Delete(userID, goalID string) error
}

type goalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(goal *model.Goal) error {
	query := `INSERT INTO goals (id, user_id, category, description, target_date, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		goal.ID,
		goal.UserID,
		goal.Category,
		goal.Description,
		goal.TargetDate,
		goal.CreatedAt,
		goal.UpdatedAt,
	)

	return err
}

func (r *goalRepository) ByID(userID, goalID string) (*model.Goal, error) {
	goal := &model.Goal{}
	query := `SELECT * FROM goals WHERE id = $1 AND user_id = $2`

	err := r.db.Get(goal, query, goalID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrGoalNotFound
	}

	return goal, err
}

func (r *goalRepository) Goals(userID string) ([]*model.Goal, error) {
	var goals []*model.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 ORDER BY created_at DESC`

	err := r.db.Select(&goals, query, userID)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *goalRepository) Update(goal *model.Goal) error {
	query := `UPDATE goals
	          SET category = $1, description = $2, target_date = $3, updated_at = $4
	          WHERE id = $5 AND user_id = $6`

	result, err := r.db.Exec(query,
		goal.Category,
		goal.Description,
		goal.TargetDate,
		goal.UpdatedAt,
		goal.ID,
		goal.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return nil
}

// Delete removes a goal after clearing goal_id on the user's expenses that
// reference it. Detach runs first and both statements share one transaction,
// so a failure cannot leave expenses pointing at a deleted goal.
func (r *goalRepository) Delete(userID, goalID string) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	detach := `UPDATE expenses SET goal_id = NULL WHERE goal_id = $1 AND user_id = $2`
	_, err = tx.Exec(detach, goalID, userID)
	if err != nil {
		return fmt.Errorf("failed to detach expenses: %w", err)
	}

	del := `DELETE FROM goals WHERE id = $1 AND user_id = $2`
	result, err := tx.Exec(del, goalID, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrGoalNotFound
	}

	return tx.Commit()
}
