package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/wellnessbuddy/api/internal/model"
)

var (
	ErrClubNotFound = errors.New("club not found")
)

type ClubRepository interface {
	Create(club *model.Club) error
	ByID(clubID string) (*model.Club, error)
	Clubs(category string) ([]*model.Club, error)
	Update(club *model.Club) error
	Delete(clubID string) error
}

type clubRepository struct {
	db *sqlx.DB
}

func NewClubRepository(db *sqlx.DB) ClubRepository {
	return &clubRepository{db: db}
}

func (r *clubRepository) Create(club *model.Club) error {
	query := `INSERT INTO clubs (id, name, category, description, created_at)
	          VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(query,
		club.ID,
		club.Name,
		club.Category,
		club.Description,
		club.CreatedAt,
	)

	return err
}

func (r *clubRepository) ByID(clubID string) (*model.Club, error) {
	club := &model.Club{}
	query := `SELECT * FROM clubs WHERE id = $1`

	err := r.db.Get(club, query, clubID)
	if err == sql.ErrNoRows {
		return nil, ErrClubNotFound
	}

	return club, err
}

func (r *clubRepository) Clubs(category string) ([]*model.Club, error) {
	var clubs []*model.Club

	if category != "" {
		query := `SELECT * FROM clubs WHERE category = $1 ORDER BY name ASC`
		err := r.db.Select(&clubs, query, category)
		if err != nil {
			return nil, err
		}
		return clubs, nil
	}

	query := `SELECT * FROM clubs ORDER BY name ASC`
	err := r.db.Select(&clubs, query)
	if err != nil {
		return nil, err
	}

	return clubs, nil
}

func (r *clubRepository) Update(club *model.Club) error {
	query := `UPDATE clubs SET name = $1, category = $2, description = $3 WHERE id = $4`

	result, err := r.db.Exec(query,
		club.Name,
		club.Category,
		club.Description,
		club.ID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrClubNotFound
	}

	return nil
}

func (r *clubRepository) Delete(clubID string) error {
	query := `DELETE FROM clubs WHERE id = $1`
	result, err := r.db.Exec(query, clubID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrClubNotFound
	}

	return nil
}
