package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/campusmeet/sportsapp/internal/model"
	"github.com/jmoiron/sqlx"
)

var (
	ErrSessionNotFound = errors.New("session not found")
)

type SessionRepository interface {
	Create(session *model.Session) error
	ByID(id string, now time.Time) (*model.Session, error)
	UpdateSelectedSport(id string, sport *string) error
	Delete(id string) error
}

type sessionRepository struct {
	db *sqlx.DB
}

func NewSessionRepository(db *sqlx.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(session *model.Session) error {
	query := `INSERT INTO sessions (id, user_id, username, selected_sport, expires_at, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(query,
		session.ID,
		session.UserID,
		session.Username,
		session.SelectedSport,
		session.ExpiresAt,
		session.CreatedAt,
	)
	return err
}

// ByID resolves a live session. Expired rows are lazily deleted on lookup;
// there is no background sweep.
func (r *sessionRepository) ByID(id string, now time.Time) (*model.Session, error) {
	session := &model.Session{}
	query := `SELECT * FROM sessions WHERE id = $1`

	err := r.db.Get(session, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	if !session.ExpiresAt.After(now) {
		_, delErr := r.db.Exec(`DELETE FROM sessions WHERE id = $1`, id)
		if delErr != nil {
			return nil, delErr
		}
		return nil, ErrSessionNotFound
	}

	return session, nil
}

func (r *sessionRepository) UpdateSelectedSport(id string, sport *string) error {
	query := `UPDATE sessions SET selected_sport = $1 WHERE id = $2`

	result, err := r.db.Exec(query, sport, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// Delete is idempotent: removing a session that is already gone is not an error.
func (r *sessionRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM sessions WHERE id = $1`, id)
	return err
}
