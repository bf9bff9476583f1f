package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPassword = "correct-horse-battery"

func TestSignupCreatesUnverifiedUser(t *testing.T) {
	authService, userRepo := newTestAuthService(t)

	user, err := authService.Signup("alice", "alice@pitt.edu", testPassword)
	require.NoError(t, err)
	require.False(t, user.IsVerified)
	require.NotNil(t, user.VerificationToken)
	// 32 bytes hex encoded
	require.Len(t, *user.VerificationToken, 64)

	stored, err := userRepo.ByEmail("alice@pitt.edu")
	require.NoError(t, err)
	require.False(t, stored.IsVerified)
	require.NotNil(t, stored.VerificationToken)

	// Password is stored hashed, never plain
	require.NotEqual(t, testPassword, stored.PasswordHash)
	require.NoError(t, authService.ComparePassword(testPassword, stored.PasswordHash))
}

func TestSignupNormalizesEmail(t *testing.T) {
	authService, userRepo := newTestAuthService(t)

	_, err := authService.Signup("alice", "  Alice@Pitt.EDU ", testPassword)
	require.NoError(t, err)

	_, err = userRepo.ByEmail("alice@pitt.edu")
	require.NoError(t, err)
}

func TestSignupValidation(t *testing.T) {
	authService, _ := newTestAuthService(t)

	tests := []struct {
		name     string
		username string
		email    string
		password string
	}{
		{"missing username", "", "alice@pitt.edu", testPassword},
		{"missing email", "alice", "", testPassword},
		{"missing password", "alice", "alice@pitt.edu", ""},
		{"non-institutional email", "alice", "alice@gmail.com", testPassword},
		{"malformed email", "alice", "not-an-email", testPassword},
		{"short password", "alice", "alice@pitt.edu", "short"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := authService.Signup(tt.username, tt.email, tt.password)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			require.NotEmpty(t, vErr.Reason)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	authService, userRepo := newTestAuthService(t)

	_, err := authService.Signup("alice", "alice@pitt.edu", testPassword)
	require.NoError(t, err)

	_, err = authService.Signup("alice2", "alice@pitt.edu", testPassword)
	require.ErrorIs(t, err, ErrEmailExists)

	// No second user was created
	stored, err := userRepo.ByEmail("alice@pitt.edu")
	require.NoError(t, err)
	require.Equal(t, "alice", stored.Username)
}

func TestVerifyEmailSingleUse(t *testing.T) {
	authService, userRepo := newTestAuthService(t)

	user, err := authService.Signup("alice", "alice@pitt.edu", testPassword)
	require.NoError(t, err)
	token := *user.VerificationToken

	verified, err := authService.VerifyEmail(token)
	require.NoError(t, err)
	require.True(t, verified.IsVerified)
	require.Nil(t, verified.VerificationToken)

	stored, err := userRepo.ByID(user.ID)
	require.NoError(t, err)
	require.True(t, stored.IsVerified)
	require.Nil(t, stored.VerificationToken)

	// Second consume fails with the same error as a bogus token
	_, err = authService.VerifyEmail(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyEmailInvalidToken(t *testing.T) {
	authService, _ := newTestAuthService(t)

	_, err := authService.VerifyEmail("")
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = authService.VerifyEmail("never-issued")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogin(t *testing.T) {
	authService, _ := newTestAuthService(t)

	user, err := authService.Signup("alice", "alice@pitt.edu", testPassword)
	require.NoError(t, err)

	// Unverified accounts cannot log in
	_, err = authService.Login("alice@pitt.edu", testPassword)
	require.ErrorIs(t, err, ErrEmailNotVerified)

	_, err = authService.VerifyEmail(*user.VerificationToken)
	require.NoError(t, err)

	// Unknown email
	_, err = authService.Login("bob@pitt.edu", testPassword)
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Wrong password
	_, err = authService.Login("alice@pitt.edu", "wrong-password-entirely")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Success
	got, err := authService.Login("alice@pitt.edu", testPassword)
	require.NoError(t, err)
	require.Equal(t, user.ID, got.ID)
}

func TestGenerateTokenEntropy(t *testing.T) {
	authService, _ := newTestAuthService(t)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		token, err := authService.GenerateToken()
		require.NoError(t, err)
		require.Len(t, token, 64)
		require.False(t, seen[token])
		seen[token] = true
	}
}

func TestValidationErrorIsNotSentinel(t *testing.T) {
	err := error(&ValidationError{Reason: "All fields required"})
	require.Equal(t, "All fields required", err.Error())
	require.False(t, errors.Is(err, ErrEmailExists))
}
