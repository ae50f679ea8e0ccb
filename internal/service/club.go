package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/wellnessbuddy/api/internal/model"
	"github.com/wellnessbuddy/api/internal/repository"
)

var (
	// ErrClubNotFoundForJoin rejects a membership pointing at a club that
	// does not exist.
	ErrClubNotFoundForJoin = errors.New("club does not exist")
)

type ClubService struct {
	repo           repository.ClubRepository
	membershipRepo repository.MembershipRepository
}

func NewClubService(repo repository.ClubRepository, membershipRepo repository.MembershipRepository) *ClubService {
	return &ClubService{repo: repo, membershipRepo: membershipRepo}
}

func (s *ClubService) Create(name, category string, description *string) (*model.Club, error) {
	club := &model.Club{
		ID:          uuid.New().String(),
		Name:        name,
		Category:    category,
		Description: description,
		CreatedAt:   time.Now(),
	}

	err := s.repo.Create(club)
	if err != nil {
		return nil, err
	}

	return club, nil
}

func (s *ClubService) ByID(clubID string) (*model.Club, error) {
	return s.repo.ByID(clubID)
}

func (s *ClubService) Clubs(category string) ([]*model.Club, error) {
	return s.repo.Clubs(category)
}

// ClubUpdate carries a partial update; nil fields are left unchanged.
type ClubUpdate struct {
	Name        *string
	Category    *string
	Description *string
}

func (s *ClubService) Update(clubID string, upd ClubUpdate) (*model.Club, error) {
	club, err := s.repo.ByID(clubID)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		club.Name = *upd.Name
	}
	if upd.Category != nil {
		club.Category = *upd.Category
	}
	if upd.Description != nil {
		club.Description = upd.Description
	}

	err = s.repo.Update(club)
	if err != nil {
		return nil, err
	}

	return club, nil
}

func (s *ClubService) Delete(clubID string) error {
	return s.repo.Delete(clubID)
}

// Join adds the user to a club. Duplicate joins fail with
// repository.ErrDuplicateMembership out of the store's unique index.
func (s *ClubService) Join(userID, clubID string) (*model.Membership, error) {
	_, err := s.repo.ByID(clubID)
	if errors.Is(err, repository.ErrClubNotFound) {
		return nil, ErrClubNotFoundForJoin
	}
	if err != nil {
		return nil, err
	}

	membership := &model.Membership{
		ID:       uuid.New().String(),
		UserID:   userID,
		ClubID:   clubID,
		JoinedAt: time.Now(),
	}

	err = s.membershipRepo.Create(membership)
	if err != nil {
		return nil, err
	}

	return membership, nil
}

func (s *ClubService) Memberships(userID, clubID string) ([]*model.Membership, error) {
	return s.membershipRepo.Memberships(userID, clubID)
}

func (s *ClubService) Leave(userID, membershipID string) error {
	return s.membershipRepo.Delete(userID, membershipID)
}
