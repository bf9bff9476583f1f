package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/campusmeet/sportsapp/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrDuplicateSlot = errors.New("time slot already exists")
)

type TimeSlotRepository interface {
	Create(slot *model.TimeSlot) error
	Exists(userID, sport, location string, startTime time.Time) (bool, error)
	BySportLocation(sport, location string) ([]*model.TimeSlot, error)
}

type timeSlotRepository struct {
	db *sqlx.DB
}

func NewTimeSlotRepository(db *sqlx.DB) TimeSlotRepository {
	return &timeSlotRepository{db: db}
}

// Create persists a slot. The UNIQUE(user_id, sport, location, start_time)
// constraint is the authoritative duplicate guard; the service-level Exists
// check is an early exit only.
func (r *timeSlotRepository) Create(slot *model.TimeSlot) error {
	query := `INSERT INTO time_slots (id, user_id, sport, location, start_time, duration_minutes, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(query,
		slot.ID,
		slot.UserID,
		slot.Sport,
		slot.Location,
		slot.StartTime,
		slot.DurationMinutes,
		slot.CreatedAt,
	)
	if err != nil {
		// Check for unique constraint violation (works for both SQLite and PostgreSQL)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateSlot
		}
		return err
	}

	return nil
}

func (r *timeSlotRepository) Exists(userID, sport, location string, startTime time.Time) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM time_slots
	          WHERE user_id = $1 AND sport = $2 AND location = $3 AND start_time = $4`

	err := r.db.QueryRow(query, userID, sport, location, startTime).Scan(&count)
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// BySportLocation fetches all slots for a sport and location regardless of
// owner, joined with users for the poster's username. No ordering is
// guaranteed; callers must not depend on it.
func (r *timeSlotRepository) BySportLocation(sport, location string) ([]*model.TimeSlot, error) {
	var slots []*model.TimeSlot
	query := `SELECT t.id, t.user_id, t.sport, t.location, t.start_time, t.duration_minutes, t.created_at, u.username
	          FROM time_slots t
	          JOIN users u ON u.id = t.user_id
	          WHERE t.sport = $1 AND t.location = $2`

	err := r.db.Select(&slots, query, sport, location)
	if err != nil {
		return nil, err
	}

	return slots, nil
}
