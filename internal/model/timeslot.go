package model

import (
	"time"
)

type TimeSlot struct {
	ID              string    `db:"id"`
	UserID          string    `db:"user_id"`
	Sport           string    `db:"sport"`
	Location        string    `db:"location"`
	StartTime       time.Time `db:"start_time"`
	DurationMinutes int       `db:"duration_minutes"`
	CreatedAt       time.Time `db:"created_at"`

	// Joined from users for listings (not a column on time_slots)
	Username string `db:"username"`
}

// EndTime is the instant the slot stops being active.
func (t *TimeSlot) EndTime() time.Time {
	return t.StartTime.Add(time.Duration(t.DurationMinutes) * time.Minute)
}

// IsActiveAt reports whether the slot is still active at the given instant.
// Expiry is computed at read time and never persisted.
func (t *TimeSlot) IsActiveAt(now time.Time) bool {
	return t.EndTime().After(now)
}
