package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	Create(ctx context.Context, user User) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}

// RegisterParams carries a validated registration request into the
// auth service. Password is plaintext here and hashed before storage.
type RegisterParams struct {
	Username string
	Name     string
	Age      int
	Password string
}

// User represents a registered account. PasswordHash is the only
// authentication material ever persisted; the plaintext password never
// leaves the registration or login request.
type User struct {
	ID           uuid.UUID
	Username     string
	Name         string
	Age          int
	PasswordHash string
	CreatedAt    time.Time
}
