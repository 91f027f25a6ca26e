package model

import (
	"errors"

	"github.com/google/uuid"
)

// TokenManager issues and verifies signed session tokens.
type TokenManager interface {
	Generate(userID uuid.UUID, username string) (string, error)
	Parse(token string) (TokenClaims, error)
}

// TokenClaims is the verified identity carried by a session token.
type TokenClaims struct {
	UserID   uuid.UUID
	Username string
}

// Token verification failure causes. Callers reject all three identically
// but log them as distinct causes.
var (
	ErrTokenMalformed = errors.New("session token malformed")
	ErrTokenExpired   = errors.New("session token expired")
	ErrTokenSignature = errors.New("session token signature mismatch")
)
