package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/campusmeet/sportsapp/internal/model"
	"github.com/campusmeet/sportsapp/internal/repository"
)

const SessionCookieName = "sportsapp_session"

var (
	ErrUnauthenticated = errors.New("not logged in")
)

// SessionService manages opaque server-side sessions. The cookie value is
// 256 bits of randomness; expiry is absolute from creation and never
// extended on activity.
type SessionService struct {
	sessionRepository repository.SessionRepository
	ttl               time.Duration
	isProduction      bool

	now func() time.Time
}

func NewSessionService(sessionRepository repository.SessionRepository, ttl time.Duration, isProduction bool) *SessionService {
	return &SessionService{
		sessionRepository: sessionRepository,
		ttl:               ttl,
		isProduction:      isProduction,
		now:               time.Now,
	}
}

func (s *SessionService) Create(userID, username string) (*model.Session, error) {
	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session id: %w", err)
	}

	now := s.now()
	session := &model.Session{
		ID:        id,
		UserID:    userID,
		Username:  username,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	err = s.sessionRepository.Create(session)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// Authenticate resolves a cookie value to a live session, or
// ErrUnauthenticated when the session is missing or expired.
func (s *SessionService) Authenticate(cookieValue string) (*model.Session, error) {
	if cookieValue == "" {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessionRepository.ByID(cookieValue, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to look up session: %w", err)
	}

	return session, nil
}

// Destroy invalidates the session immediately. Destroying a session that is
// already gone is not an error.
func (s *SessionService) Destroy(cookieValue string) error {
	if cookieValue == "" {
		return nil
	}
	return s.sessionRepository.Delete(cookieValue)
}

func (s *SessionService) SetSelectedSport(cookieValue, sport string) error {
	session, err := s.Authenticate(cookieValue)
	if err != nil {
		return err
	}

	var value *string
	if sport != "" {
		value = &sport
	}

	err = s.sessionRepository.UpdateSelectedSport(session.ID, value)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return ErrUnauthenticated
		}
		return fmt.Errorf("failed to update selected sport: %w", err)
	}

	return nil
}

func (s *SessionService) SelectedSport(cookieValue string) (string, error) {
	session, err := s.Authenticate(cookieValue)
	if err != nil {
		return "", err
	}

	if session.SelectedSport == nil {
		return "", nil
	}
	return *session.SelectedSport, nil
}

func (s *SessionService) SetSessionCookie(w http.ResponseWriter, session *model.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.ID,
		Expires:  session.ExpiresAt,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *SessionService) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func generateSessionID() (string, error) {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
