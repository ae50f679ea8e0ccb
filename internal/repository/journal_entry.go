package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/wellnessbuddy/api/internal/model"
)

var (
	ErrJournalEntryNotFound = errors.New("journal entry not found")
)

type JournalEntryRepository interface {
	Create(entry *model.JournalEntry) error
	ByID(userID, entryID string) (*model.JournalEntry, error)
	Entries(userID, entryType string) ([]*model.JournalEntry, error)
	Update(entry *model.JournalEntry) error
	Delete(userID, entryID string) error
}

type journalEntryRepository struct {
	db *sqlx.DB
}

func NewJournalEntryRepository(db *sqlx.DB) JournalEntryRepository {
	return &journalEntryRepository{db: db}
}

func (r *journalEntryRepository) Create(entry *model.JournalEntry) error {
	query := `INSERT INTO journal_entries (id, user_id, goal_id, entry_date, content, mood_rating, entry_type, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		entry.ID,
		entry.UserID,
		entry.GoalID,
		entry.EntryDate,
		entry.Content,
		entry.MoodRating,
		entry.EntryType,
		entry.CreatedAt,
		entry.UpdatedAt,
	)

	return err
}

func (r *journalEntryRepository) ByID(userID, entryID string) (*model.JournalEntry, error) {
	entry := &model.JournalEntry{}
	query := `SELECT * FROM journal_entries WHERE id = $1 AND user_id = $2`

	err := r.db.Get(entry, query, entryID, userID)
	if err == sql.ErrNoRows {
		return nil, ErrJournalEntryNotFound
	}

	return entry, err
}

// Entries lists the user's entries newest first. entryType narrows the list
// to "journal" or "workout"; empty returns both.
func (r *journalEntryRepository) Entries(userID, entryType string) ([]*model.JournalEntry, error) {
	var entries []*model.JournalEntry

	if entryType != "" {
		query := `SELECT * FROM journal_entries WHERE user_id = $1 AND entry_type = $2 ORDER BY entry_date DESC`
		err := r.db.Select(&entries, query, userID, entryType)
		if err != nil {
			return nil, err
		}
		return entries, nil
	}

	query := `SELECT * FROM journal_entries WHERE user_id = $1 ORDER BY entry_date DESC`
	err := r.db.Select(&entries, query, userID)
	if err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *journalEntryRepository) Update(entry *model.JournalEntry) error {
	query := `UPDATE journal_entries
	          SET goal_id = $1, entry_date = $2, content = $3, mood_rating = $4, entry_type = $5, updated_at = $6
	          WHERE id = $7 AND user_id = $8`

	result, err := r.db.Exec(query,
		entry.GoalID,
		entry.EntryDate,
		entry.Content,
		entry.MoodRating,
		entry.EntryType,
		entry.UpdatedAt,
		entry.ID,
		entry.UserID,
	)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrJournalEntryNotFound
	}

	return nil
}

func (r *journalEntryRepository) Delete(userID, entryID string) error {
	query := `DELETE FROM journal_entries WHERE id = $1 AND user_id = $2`
	result, err := r.db.Exec(query, entryID, userID)

	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrJournalEntryNotFound
	}

	return nil
}
