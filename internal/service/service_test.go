package service

import (
	"path/filepath"
	"testing"

	"github.com/campusmeet/sportsapp/internal/db"
	"github.com/campusmeet/sportsapp/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := db.Init("sqlite", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	err = db.RunMigrations(database.DB, "sqlite")
	require.NoError(t, err)

	return database
}

// newTestAuthService wires an AuthService against a real database with the
// email service in dev (log-only) mode.
func newTestAuthService(t *testing.T) (*AuthService, repository.UserRepository) {
	t.Helper()

	database := newTestDB(t)
	userRepo := repository.NewUserRepository(database)
	emailService := NewEmailService("", "noreply@example.com", "http://localhost:3000", "SportsApp", true)

	return NewAuthService(userRepo, emailService, "@pitt.edu"), userRepo
}
