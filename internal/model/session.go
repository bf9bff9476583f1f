package model

import (
	"time"
)

// Session maps an opaque cookie value (ID) to an authenticated identity.
// Expiry is absolute from creation; it never slides on activity.
type Session struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	Username      string    `db:"username"`
	SelectedSport *string   `db:"selected_sport"` // transient UI scratch field
	ExpiresAt     time.Time `db:"expires_at"`
	CreatedAt     time.Time `db:"created_at"`
}

func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}
