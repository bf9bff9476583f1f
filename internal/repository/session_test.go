package repository

import (
	"testing"
	"time"

	"github.com/campusmeet/sportsapp/internal/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestSession(userID, username string, expiresAt time.Time) *model.Session {
	return &model.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Username:  username,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
}

func TestSessionRepositoryCreateAndLookup(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)
	sessions := NewSessionRepository(database)

	user := newTestUser(t, users, "alice@pitt.edu")
	session := newTestSession(user.ID, user.Username, time.Now().Add(time.Hour))
	require.NoError(t, sessions.Create(session))

	got, err := sessions.ByID(session.ID, time.Now())
	require.NoError(t, err)
	require.Equal(t, user.ID, got.UserID)
	require.Equal(t, "alice", got.Username)
	require.Nil(t, got.SelectedSport)
}

func TestSessionRepositoryExpiredLazyDelete(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)
	sessions := NewSessionRepository(database)

	user := newTestUser(t, users, "alice@pitt.edu")
	session := newTestSession(user.ID, user.Username, time.Now().Add(time.Hour))
	require.NoError(t, sessions.Create(session))

	// Looking up past the absolute expiry deletes the row
	_, err := sessions.ByID(session.ID, time.Now().Add(2*time.Hour))
	require.ErrorIs(t, err, ErrSessionNotFound)

	// Row is gone even for a lookup back at a valid instant
	_, err = sessions.ByID(session.ID, time.Now())
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepositoryUpdateSelectedSport(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)
	sessions := NewSessionRepository(database)

	user := newTestUser(t, users, "alice@pitt.edu")
	session := newTestSession(user.ID, user.Username, time.Now().Add(time.Hour))
	require.NoError(t, sessions.Create(session))

	sport := "Pickleball"
	require.NoError(t, sessions.UpdateSelectedSport(session.ID, &sport))

	got, err := sessions.ByID(session.ID, time.Now())
	require.NoError(t, err)
	require.NotNil(t, got.SelectedSport)
	require.Equal(t, "Pickleball", *got.SelectedSport)

	require.NoError(t, sessions.UpdateSelectedSport(session.ID, nil))

	got, err = sessions.ByID(session.ID, time.Now())
	require.NoError(t, err)
	require.Nil(t, got.SelectedSport)
}

func TestSessionRepositoryUpdateSelectedSportMissing(t *testing.T) {
	database := newTestDB(t)
	sessions := NewSessionRepository(database)

	sport := "Pickleball"
	err := sessions.UpdateSelectedSport(uuid.New().String(), &sport)
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionRepositoryDeleteIdempotent(t *testing.T) {
	database := newTestDB(t)
	users := NewUserRepository(database)
	sessions := NewSessionRepository(database)

	user := newTestUser(t, users, "alice@pitt.edu")
	session := newTestSession(user.ID, user.Username, time.Now().Add(time.Hour))
	require.NoError(t, sessions.Create(session))

	require.NoError(t, sessions.Delete(session.ID))
	require.NoError(t, sessions.Delete(session.ID))

	_, err := sessions.ByID(session.ID, time.Now())
	require.ErrorIs(t, err, ErrSessionNotFound)
}
