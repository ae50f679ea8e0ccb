package model

import (
	"time"
)

const (
	EntryTypeJournal = "journal"
	EntryTypeWorkout = "workout"
)

func ValidEntryType(entryType string) bool {
	return entryType == EntryTypeJournal || entryType == EntryTypeWorkout
}

// JournalEntry backs both the journal and workout presentations; entry_type
// splits the same storage into the two lists.
type JournalEntry struct {
	ID         string    `db:"id" json:"id"`
	UserID     string    `db:"user_id" json:"user_id"`
	GoalID     string    `db:"goal_id" json:"goal_id"`
	EntryDate  string    `db:"entry_date" json:"entry_date"`
	Content    string    `db:"content" json:"content"`
	MoodRating *int      `db:"mood_rating" json:"mood_rating"`
	EntryType  string    `db:"entry_type" json:"entry_type"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}
