package service

import (
	"testing"
	"time"

	"github.com/campusmeet/sportsapp/internal/repository"
	"github.com/stretchr/testify/require"
)

// newTestSessionService returns a session service over a real database plus
// the id of a seeded verified user to own the sessions.
func newTestSessionService(t *testing.T, ttl time.Duration) (*SessionService, string) {
	t.Helper()

	database := newTestDB(t)

	userRepo := repository.NewUserRepository(database)
	emailService := NewEmailService("", "noreply@example.com", "http://localhost:3000", "SportsApp", true)
	authService := NewAuthService(userRepo, emailService, "@pitt.edu")

	user, err := authService.Signup("alice", "alice@pitt.edu", testPassword)
	require.NoError(t, err)

	return NewSessionService(repository.NewSessionRepository(database), ttl, false), user.ID
}

func TestSessionCreateAndAuthenticate(t *testing.T) {
	s, userID := newTestSessionService(t, time.Hour)

	session, err := s.Create(userID, "alice")
	require.NoError(t, err)
	// Opaque 256-bit cookie value, hex encoded
	require.Len(t, session.ID, 64)

	got, err := s.Authenticate(session.ID)
	require.NoError(t, err)
	require.Equal(t, userID, got.UserID)
	require.Equal(t, "alice", got.Username)
}

func TestSessionAuthenticateMissing(t *testing.T) {
	s, _ := newTestSessionService(t, time.Hour)

	_, err := s.Authenticate("")
	require.ErrorIs(t, err, ErrUnauthenticated)

	_, err = s.Authenticate("no-such-session")
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionAbsoluteExpiry(t *testing.T) {
	s, userID := newTestSessionService(t, time.Hour)

	t0 := time.Now()
	s.now = func() time.Time { return t0 }

	session, err := s.Create(userID, "alice")
	require.NoError(t, err)

	// Valid just before the absolute expiry, regardless of activity
	s.now = func() time.Time { return t0.Add(59 * time.Minute) }
	_, err = s.Authenticate(session.ID)
	require.NoError(t, err)

	// Authenticating does not slide the expiry
	s.now = func() time.Time { return t0.Add(61 * time.Minute) }
	_, err = s.Authenticate(session.ID)
	require.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSessionDestroy(t *testing.T) {
	s, userID := newTestSessionService(t, time.Hour)

	session, err := s.Create(userID, "alice")
	require.NoError(t, err)

	require.NoError(t, s.Destroy(session.ID))

	_, err = s.Authenticate(session.ID)
	require.ErrorIs(t, err, ErrUnauthenticated)

	// Destroying twice is not an error
	require.NoError(t, s.Destroy(session.ID))
}

func TestSessionSelectedSport(t *testing.T) {
	s, userID := newTestSessionService(t, time.Hour)

	session, err := s.Create(userID, "alice")
	require.NoError(t, err)

	sport, err := s.SelectedSport(session.ID)
	require.NoError(t, err)
	require.Empty(t, sport)

	require.NoError(t, s.SetSelectedSport(session.ID, "Pickleball"))

	sport, err = s.SelectedSport(session.ID)
	require.NoError(t, err)
	require.Equal(t, "Pickleball", sport)

	// Scratch value dies with the session
	require.NoError(t, s.Destroy(session.ID))
	_, err = s.SelectedSport(session.ID)
	require.ErrorIs(t, err, ErrUnauthenticated)
}
