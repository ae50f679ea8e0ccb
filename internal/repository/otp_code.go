package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/wellnessbuddy/api/internal/model"
)

var (
	ErrOTPNotFound = errors.New("otp code not found")
)

type OTPRepository interface {
	Create(code *model.OTPCode) error
	LatestPending(userID string) (*model.OTPCode, error)
	Consume(id string) error
	DeletePending(userID string) error
}

type otpRepository struct {
	db *sqlx.DB
}

func NewOTPRepository(db *sqlx.DB) OTPRepository {
	return &otpRepository{db: db}
}

func (r *otpRepository) Create(code *model.OTPCode) error {
	if code.ID == "" {
		code.ID = uuid.New().String()
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO otp_codes (id, user_id, code_hash, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(query,
		code.ID,
		code.UserID,
		code.CodeHash,
		code.ExpiresAt,
		code.CreatedAt,
	)
	return err
}

func (r *otpRepository) LatestPending(userID string) (*model.OTPCode, error) {
	var c model.OTPCode
	query := `
		SELECT * FROM otp_codes
		WHERE user_id = $1 AND used_at IS NULL AND expires_at > $2
		ORDER BY created_at DESC
		LIMIT 1
	`

	err := r.db.Get(&c, query, userID, time.Now())
	if err == sql.ErrNoRows {
		return nil, ErrOTPNotFound
	}
	if err != nil {
		return nil, err
	}

	return &c, nil
}

// Consume marks a code as used. The conditional update is a single statement,
// so only one of two concurrent verifications can succeed.
func (r *otpRepository) Consume(id string) error {
	now := time.Now()
	query := `
		UPDATE otp_codes
		SET used_at = $1
		WHERE id = $2 AND used_at IS NULL AND expires_at > $3
	`

	result, err := r.db.Exec(query, now, id, now)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrOTPNotFound
	}

	return nil
}

func (r *otpRepository) DeletePending(userID string) error {
	query := `DELETE FROM otp_codes WHERE user_id = $1 AND used_at IS NULL`
	_, err := r.db.Exec(query, userID)
	return err
}
