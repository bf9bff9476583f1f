package repository

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/campusmeet/sportsapp/internal/db"
	"github.com/campusmeet/sportsapp/internal/model"
	"github.com/google/uuid"
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

func newTestUser(t *testing.T, repo UserRepository, email string) *model.User {
	t.Helper()

	token := uuid.New().String()
	user := &model.User{
		ID:                uuid.New().String(),
		Username:          strings.Split(email, "@")[0],
		Email:             email,
		PasswordHash:      "$2a$10$notarealhash",
		IsVerified:        false,
		VerificationToken: &token,
		CreatedAt:         time.Now(),
	}

	err := repo.Create(user)
	require.NoError(t, err)

	return user
}
