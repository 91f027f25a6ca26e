package model

import "errors"

// Domain error kinds. Services wrap these with %w; the HTTP layer maps each
// kind to exactly one status code and never exposes collaborator errors.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateUsername  = errors.New("username already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("operation not allowed for this user")
	ErrValidation         = errors.New("validation failed")
	ErrIngestion          = errors.New("attachment ingestion failed")
)
