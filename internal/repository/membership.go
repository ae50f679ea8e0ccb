package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/wellnessbuddy/api/internal/model"
)

var (
	ErrMembershipNotFound  = errors.New("membership not found")
	ErrDuplicateMembership = errors.New("user is already a member of this club")
)

type MembershipRepository interface {
	Create(membership *model.Membership) error
	ByID(userID, membershipID string) (*model.Membership, error)
	Memberships(userID, clubID string) ([]*model.Membership, error)
	Delete(userID, membershipID string) error
}

type membershipRepository struct {
	db *sqlx.DB
}

func NewMembershipRepository(db *sqlx.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

// Create inserts a membership. Duplicates surface from the unique index on
// (user_id, club_id) rather than a pre-insert lookup, so two concurrent
// joins cannot both succeed.
func (r *membershipRepository) Create(membership *model.Membership) error {
	query := `INSERT INTO memberships (id, user_id, club_id, joined_at)
	          VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(query,
		membership.ID,
		membership.UserID,
		membership.ClubID,
		membership.JoinedAt,
	)

	if isUniqueViolation(err) {
		return ErrDuplicateMembership
	}

	return err
}

func (r *membershipRepository) ByID(userID, membershipID string) (*model.Membership, error) {
	membership := &model.Membership{}
	query := `SELECT * FROM memberships WHERE id = $1 AND user_id = $2`

	err := r.db.Get(membership, query, membershipID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrMembershipNotFound
	}

	return membership, err
}

func (r *membershipRepository) Memberships(userID, clubID string) ([]*model.Membership, error) {
	var memberships []*model.Membership

	if clubID != "" {
		query := `SELECT * FROM memberships WHERE user_id = $1 AND club_id = $2 ORDER BY joined_at DESC`
		err := r.db.Select(&memberships, query, userID, clubID)
		if err != nil {
			return nil, err
		}
		return memberships, nil
	}

	query := `SELECT * FROM memberships WHERE user_id = $1 ORDER BY joined_at DESC`
	err := r.db.Select(&memberships, query, userID)
	if err != nil {
		return nil, err
	}

	return memberships, nil
}

func (r *membershipRepository) Delete(userID, membershipID string) error {
	query := `DELETE FROM memberships WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, membershipID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrMembershipNotFound
	}

	return nil
}
