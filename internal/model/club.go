package model

import (
	"time"
)

// Club is a shared directory entry, not owned by any user.
type Club struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Category    string    `db:"category" json:"category"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Membership struct {
	ID       string    `db:"id" json:"id"`
	UserID   string    `db:"user_id" json:"user_id"`
	ClubID   string    `db:"club_id" json:"club_id"`
	JoinedAt time.Time `db:"joined_at" json:"joined_at"`
}
