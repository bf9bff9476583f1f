package model

import (
	"time"
)

type User struct {
	ID           string    `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	IsVerified   bool      `db:"is_verified"`
	// Non-nil only while the account is unverified; cleared permanently on
	// successful verification.
	VerificationToken *string   `db:"verification_token"`
	CreatedAt         time.Time `db:"created_at"`
}
