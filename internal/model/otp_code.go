package model

import (
	"time"
)

// OTPCode is a pending one-time login code. Only the bcrypt hash of the
// code is stored; the plaintext leaves the process in the login email.
type OTPCode struct {
	ID        string     `db:"id"`
	UserID    string     `db:"user_id"`
	CodeHash  string     `db:"code_hash"`
	ExpiresAt time.Time  `db:"expires_at"`
	UsedAt    *time.Time `db:"used_at"`
	CreatedAt time.Time  `db:"created_at"`
}

func (c *OTPCode) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}

func (c *OTPCode) IsUsed() bool {
	return c.UsedAt != nil
}

func (c *OTPCode) IsValid() bool {
	return !c.IsExpired() && !c.IsUsed()
}
