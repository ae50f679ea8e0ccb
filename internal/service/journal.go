package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wellnessbuddy/api/internal/model"
	"github.com/wellnessbuddy/api/internal/repository"
)

var (
	// ErrGoalNotOwned is the referential-check failure: the referenced goal
	// does not exist or belongs to another user. The two cases are
	// indistinguishable on purpose.
	ErrGoalNotOwned = errors.New("goal does not belong to current user")

	ErrInvalidMoodRating = errors.New("mood_rating must be between 1 and 5")
	ErrInvalidEntryType  = errors.New("entry_type must be journal or workout")
)

type JournalService struct {
	repo     repository.JournalEntryRepository
	goalRepo repository.GoalRepository
}

func NewJournalService(repo repository.JournalEntryRepository, goalRepo repository.GoalRepository) *JournalService {
	return &JournalService{repo: repo, goalRepo: goalRepo}
}

// checkGoalOwnership verifies the goal exists and belongs to userID. This is
// check-then-act: a goal deleted between the check and the dependent write is
// not caught.
func (s *JournalService) checkGoalOwnership(userID, goalID string) error {
	_, err := s.goalRepo.ByID(userID, goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		return ErrGoalNotOwned
	}
	return err
}

func (s *JournalService) Create(userID, goalID, entryDate, content string, moodRating *int, entryType string) (*model.JournalEntry, error) {
	if entryType == "" {
		entryType = model.EntryTypeJournal
	}
	if !model.ValidEntryType(entryType) {
		return nil, ErrInvalidEntryType
	}
	if moodRating != nil && (*moodRating < 1 || *moodRating > 5) {
		return nil, ErrInvalidMoodRating
	}

	err := s.checkGoalOwnership(userID, goalID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	entry := &model.JournalEntry{
		ID:         uuid.New().String(),
		UserID:     userID,
		GoalID:     goalID,
		EntryDate:  entryDate,
		Content:    content,
		MoodRating: moodRating,
		EntryType:  entryType,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = s.repo.Create(entry)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *JournalService) ByID(userID, entryID string) (*model.JournalEntry, error) {
	return s.repo.ByID(userID, entryID)
}

func (s *JournalService) Entries(userID, entryType string) ([]*model.JournalEntry, error) {
	return s.repo.Entries(userID, entryType)
}

// JournalUpdate carries a partial update; nil fields are left unchanged.
type JournalUpdate struct {
	GoalID     *string
	EntryDate  *string
	Content    *string
	MoodRating *int
	EntryType  *string
}

func (s *JournalService) Update(userID, entryID string, upd JournalUpdate) (*model.JournalEntry, error) {
	entry, err := s.repo.ByID(userID, entryID)
	if err != nil {
		return nil, err
	}

	if upd.GoalID != nil && *upd.GoalID != entry.GoalID {
		err = s.checkGoalOwnership(userID, *upd.GoalID)
		if err != nil {
			return nil, err
		}
		entry.GoalID = *upd.GoalID
	}
	if upd.EntryDate != nil {
		entry.EntryDate = *upd.EntryDate
	}
	if upd.Content != nil {
		entry.Content = *upd.Content
	}
	if upd.MoodRating != nil {
		if *upd.MoodRating < 1 || *upd.MoodRating > 5 {
			return nil, ErrInvalidMoodRating
		}
		entry.MoodRating = upd.MoodRating
	}
	if upd.EntryType != nil {
		if !model.ValidEntryType(*upd.EntryType) {
			return nil, ErrInvalidEntryType
		}
		entry.EntryType = *upd.EntryType
	}
	entry.UpdatedAt = time.Now()

	err = s.repo.Update(entry)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func (s *JournalService) Delete(userID, entryID string) error {
	return s.repo.Delete(userID, entryID)
}
