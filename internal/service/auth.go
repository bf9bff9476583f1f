package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/campusmeet/sportsapp/internal/model"
	"github.com/campusmeet/sportsapp/internal/repository"
	"github.com/campusmeet/sportsapp/internal/validation"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailExists        = errors.New("account already exists")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrInvalidToken       = errors.New("invalid or expired verification token")
)

// ValidationError reports a missing or malformed field. Error is the
// user-facing reason; it is a client error, never logged as a server fault.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

type AuthService struct {
	userRepository repository.UserRepository
	emailService   *EmailService
	emailDomain    string
}

func NewAuthService(
	userRepository repository.UserRepository,
	emailService *EmailService,
	emailDomain string,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		emailService:   emailService,
		emailDomain:    emailDomain,
	}
}

// Signup creates an unverified user and dispatches the verification email.
// Email delivery is fire-and-forget: a delivery failure is logged but does
// not roll back user creation.
func (s *AuthService) Signup(username, email, password string) (*model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(strings.ToLower(email))

	if username == "" || email == "" || password == "" {
		return nil, &ValidationError{Reason: "All fields required"}
	}

	err := validation.ValidateInstitutionalEmail(email, s.emailDomain)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	err = validation.ValidatePassword(password)
	if err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	// Advisory early exit; the unique constraint on users.email is the
	// authoritative guard against concurrent signups.
	existing, err := s.userRepository.ByEmail(email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	passwordHash, err := s.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	verificationToken, err := s.GenerateToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	user := &model.User{
		ID:                uuid.New().String(),
		Username:          username,
		Email:             email,
		PasswordHash:      passwordHash,
		IsVerified:        false,
		VerificationToken: &verificationToken,
		CreatedAt:         time.Now(),
	}

	err = s.userRepository.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("signup successful", "email", email, "user_id", user.ID)

	err = s.emailService.SendVerificationEmail(user.Email, verificationToken, user.Username)
	if err != nil {
		slog.Error("failed to send verification email", "error", err, "email", user.Email)
	}

	return user, nil
}

// VerifyEmail consumes a verification token exactly once. The repository
// consume is a single atomic update, so a second call with the same token
// fails with ErrInvalidToken.
func (s *AuthService) VerifyEmail(token string) (*model.User, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	user, err := s.userRepository.ConsumeVerificationToken(token)
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to consume token: %w", err)
	}

	slog.Info("email verified", "user_id", user.ID, "email", user.Email)
	return user, nil
}

// Login checks credentials and verification state. No session is created
// here; the caller does that on success.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if email == "" || password == "" {
		return nil, &ValidationError{Reason: "All fields required"}
	}

	user, err := s.userRepository.ByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsVerified {
		return nil, ErrEmailNotVerified
	}

	err = s.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// GenerateToken returns 256 bits from crypto/rand, hex encoded.
func (s *AuthService) GenerateToken() (string, error) {
	bytes := make([]byte, 32)
	_, err := rand.Read(bytes)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
