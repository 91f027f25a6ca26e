package model

import (
	"context"

	"github.com/google/uuid"
)

// ContextManager moves the authenticated user identity in and out of a
// request context. The identity is trusted as-is from the verified token
// and never re-derived from the database within a request.
type ContextManager interface {
	SetUserIDToContext(ctx context.Context, userID uuid.UUID) context.Context
	GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool)
}
