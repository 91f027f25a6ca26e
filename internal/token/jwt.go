package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/dtroode/itemvault/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims represents JWT claims carrying the session subject.
type Claims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// sessionTTL is the only termination mechanism for a session; there is no
// revocation store.
const sessionTTL = time.Hour

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

// Generate creates a signed session token for the given user, expiring
// one hour from issuance.
func (j *JWT) Generate(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
		UserID:   userID,
		Username: username,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return tokenString, nil
}

// Parse validates signature and expiry and extracts the subject claims.
// Failures are classified as malformed, expired or signature mismatch so
// the gate can log the cause.
func (j *JWT) Parse(tokenString string) (model.TokenClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return model.TokenClaims{}, classifyParseError(err)
	}
	if !token.Valid {
		return model.TokenClaims{}, model.ErrTokenMalformed
	}
	if claims.UserID == uuid.Nil {
		return model.TokenClaims{}, model.ErrTokenMalformed
	}

	return model.TokenClaims{UserID: claims.UserID, Username: claims.Username}, nil
}

func classifyParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %v", model.ErrTokenExpired, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return fmt.Errorf("%w: %v", model.ErrTokenSignature, err)
	default:
		return fmt.Errorf("%w: %v", model.ErrTokenMalformed, err)
	}
}
