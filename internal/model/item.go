package model

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// ItemStore defines persistence operations for items.
type ItemStore interface {
	Create(ctx context.Context, item Item) (Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (Item, error)
	GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]Item, error)
	Update(ctx context.Context, id uuid.UUID, patch ItemPatch) (Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Attachment is the stable reference to an ingested binary payload.
// FileName is the storage key, FilePath the externally addressable location.
type Attachment struct {
	FileName string
	FilePath string
}

// Item represents a stored resource record. OwnerID is set once at creation
// and never reassigned.
type Item struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Title       string
	Description string
	Status      string
	Attachment  Attachment
	CreatedAt   time.Time
}

// CreateItemParams carries a validated item creation request into the
// item service. Payload is nil when the request has no attachment.
type CreateItemParams struct {
	OwnerID     uuid.UUID
	Title       string
	Description string
	Status      string
	Payload     io.Reader
	PayloadName string
}

// UpdateItemParams carries a partial item update. Nil field pointers and
// a nil Payload mean "leave as is".
type UpdateItemParams struct {
	Title       *string
	Description *string
	Status      *string
	Payload     io.Reader
	PayloadName string
}

// ItemPatch carries a partial update. Nil fields are left untouched by the
// store; OwnerID is deliberately absent.
type ItemPatch struct {
	Title       *string
	Description *string
	Status      *string
	Attachment  *Attachment
}
