package model

import (
	"time"
)

// ContractTemplate is read-mostly reference data with no per-user owner.
// FileKey points at an object in template storage; FileURL is a presigned
// download link filled in at read time, never persisted.
type ContractTemplate struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Category    string    `db:"category" json:"category"`
	Description string    `db:"description" json:"description"`
	FileKey     *string   `db:"file_key" json:"-"`
	FileURL     string    `db:"-" json:"file_url,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
