package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wellnessbuddy/api/internal/model"
	"github.com/wellnessbuddy/api/internal/repository"
)

var (
	ErrInvalidCategory = errors.New("invalid goal category")
)

type GoalService struct {
	repo repository.GoalRepository
}

func NewGoalService(repo repository.GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

func (s *GoalService) Create(userID, category, description string, targetDate *string) (*model.Goal, error) {
	if !model.ValidGoalCategory(category) {
		return nil, ErrInvalidCategory
	}

	now := time.Now()
	goal := &model.Goal{
		ID:          uuid.New().String(),
		UserID:      userID,
		Category:    category,
		Description: description,
		TargetDate:  targetDate,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.repo.Create(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(userID, goalID)
}

func (s *GoalService) Goals(userID string) ([]*model.Goal, error) {
	return s.repo.Goals(userID)
}

// GoalUpdate carries a partial update; nil fields are left unchanged. An
// empty TargetDate clears the date.
type GoalUpdate struct {
	Category    *string
	Description *string
	TargetDate  *string
}

func (s *GoalService) Update(userID, goalID string, upd GoalUpdate) (*model.Goal, error) {
	goal, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if upd.Category != nil {
		if !model.ValidGoalCategory(*upd.Category) {
			return nil, ErrInvalidCategory
		}
		goal.Category = *upd.Category
	}
	if upd.Description != nil {
		goal.Description = *upd.Description
	}
	if upd.TargetDate != nil {
		if *upd.TargetDate == "" {
			goal.TargetDate = nil
		} else {
			goal.TargetDate = upd.TargetDate
		}
	}
	goal.UpdatedAt = time.Now()

	err = s.repo.Update(goal)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// Delete detaches the user's expenses from the goal and removes it; the
// repository runs both steps in one transaction.
func (s *GoalService) Delete(userID, goalID string) error {
	return s.repo.Delete(userID, goalID)
}
