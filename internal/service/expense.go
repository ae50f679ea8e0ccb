package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wellnessbuddy/api/internal/model"
	"github.com/wellnessbuddy/api/internal/repository"
)

var (
	ErrNegativeAmount = errors.New("amount must not be negative")
	ErrInvalidMonth   = errors.New("month must be YYYY-MM")
	ErrInvalidDate    = errors.New("date must be YYYY-MM-DD")
)

type ExpenseService struct {
	repo     repository.ExpenseRepository
	goalRepo repository.GoalRepository
}

func NewExpenseService(repo repository.ExpenseRepository, goalRepo repository.GoalRepository) *ExpenseService {
	return &ExpenseService{repo: repo, goalRepo: goalRepo}
}

func (s *ExpenseService) checkGoalOwnership(userID, goalID string) error {
	_, err := s.goalRepo.ByID(userID, goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		return ErrGoalNotOwned
	}
	return err
}

func (s *ExpenseService) Create(userID, category string, amount model.Money, date string, description, goalID *string) (*model.Expense, error) {
	if amount < 0 {
		return nil, ErrNegativeAmount
	}

	if goalID != nil {
		err := s.checkGoalOwnership(userID, *goalID)
		if err != nil {
			return nil, err
		}
	}

	now := time.Now()
	expense := &model.Expense{
		ID:          uuid.New().String(),
		UserID:      userID,
		GoalID:      goalID,
		Category:    category,
		Amount:      amount,
		Date:        date,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.repo.Create(expense)
	if err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *ExpenseService) ByID(userID, expenseID string) (*model.Expense, error) {
	return s.repo.ByID(userID, expenseID)
}

func (s *ExpenseService) Expenses(userID string) ([]*model.Expense, error) {
	return s.repo.Expenses(userID)
}

// ExpensesForMonth lists the user's expenses dated within the calendar month
// ("2024-03") and their exact total. Summing cents keeps the total free of
// floating point drift.
func (s *ExpenseService) ExpensesForMonth(userID, month string) ([]*model.Expense, model.Money, error) {
	start, end, err := monthRange(month)
	if err != nil {
		return nil, 0, err
	}

	expenses, err := s.repo.ExpensesInRange(userID, start, end)
	if err != nil {
		return nil, 0, err
	}

	var total model.Money
	for _, e := range expenses {
		total += e.Amount
	}

	return expenses, total, nil
}

// monthRange expands "YYYY-MM" to the first and last calendar day of that
// month, inclusive.
func monthRange(month string) (string, string, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", ErrInvalidMonth
	}

	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)

	return start.Format("2006-01-02"), end.Format("2006-01-02"), nil
}

// ExpenseUpdate carries a partial update; nil fields are left unchanged. An
// empty GoalID detaches the expense from its goal.
type ExpenseUpdate struct {
	GoalID      *string
	Category    *string
	Amount      *model.Money
	Date        *string
	Description *string
}

func (s *ExpenseService) Update(userID, expenseID string, upd ExpenseUpdate) (*model.Expense, error) {
	expense, err := s.repo.ByID(userID, expenseID)
	if err != nil {
		return nil, err
	}

	if upd.GoalID != nil {
		if *upd.GoalID == "" {
			expense.GoalID = nil
		} else {
			err = s.checkGoalOwnership(userID, *upd.GoalID)
			if err != nil {
				return nil, err
			}
			expense.GoalID = upd.GoalID
		}
	}
	if upd.Category != nil {
		expense.Category = *upd.Category
	}
	if upd.Amount != nil {
		if *upd.Amount < 0 {
			return nil, ErrNegativeAmount
		}
		expense.Amount = *upd.Amount
	}
	if upd.Date != nil {
		if !validDate(*upd.Date) {
			return nil, ErrInvalidDate
		}
		expense.Date = *upd.Date
	}
	if upd.Description != nil {
		expense.Description = upd.Description
	}
	expense.UpdatedAt = time.Now()

	err = s.repo.Update(expense)
	if err != nil {
		return nil, err
	}

	return expense, nil
}

func (s *ExpenseService) Delete(userID, expenseID string) error {
	return s.repo.Delete(userID, expenseID)
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
