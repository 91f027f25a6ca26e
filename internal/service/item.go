package service

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/dtroode/itemvault/internal/logger"
	"github.com/dtroode/itemvault/internal/model"
)

// itemImageField is the upload field label attachments are keyed under.
const itemImageField = "itemImage"

// AttachmentIngestor stores an attachment payload and returns the
// reference to persist with the owning item.
type AttachmentIngestor interface {
	Ingest(ctx context.Context, payload io.Reader, originalName, fieldLabel string) (model.Attachment, error)
}

// Item implements owner-scoped CRUD over item records and their
// attachments. Ownership is fixed at creation; every mutation and
// every single-item read checks it.
type Item struct {
	itemStore model.ItemStore
	ingestor  AttachmentIngestor
	storage   model.Storage
	logger    *logger.Logger
}

func NewItem(
	itemStore model.ItemStore,
	ingestor AttachmentIngestor,
	storage model.Storage,
	logger *logger.Logger,
) *Item {
	return &Item{
		itemStore: itemStore,
		ingestor:  ingestor,
		storage:   storage,
		logger:    logger,
	}
}

// CreateItem ingests the attachment first and only then writes the
// record; an item cannot be created without one. A record write failure
// triggers a best-effort removal of the just-stored object so storage
// does not accumulate orphans.
func (s *Item) CreateItem(ctx context.Context, params model.CreateItemParams) (model.Item, error) {
	item := model.Item{
		ID:          uuid.New(),
		OwnerID:     params.OwnerID,
		Title:       params.Title,
		Description: params.Description,
		Status:      params.Status,
	}

	attachment, err := s.ingestor.Ingest(ctx, params.Payload, params.PayloadName, itemImageField)
	if err != nil {
		return model.Item{}, fmt.Errorf("failed to ingest attachment: %w", err)
	}
	item.Attachment = attachment

	saved, err := s.itemStore.Create(ctx, item)
	if err != nil {
		s.discardObject(ctx, attachment.FileName)
		return model.Item{}, fmt.Errorf("failed to create item: %w", err)
	}

	return saved, nil
}

// GetItems returns every item owned by the user, newest first.
func (s *Item) GetItems(ctx context.Context, userID uuid.UUID) ([]model.Item, error) {
	items, err := s.itemStore.GetByOwnerID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get items by owner id: %w", err)
	}

	return items, nil
}

// GetItem returns a single item. A missing item reports model.ErrNotFound;
// an existing item owned by someone else reports model.ErrForbidden.
func (s *Item) GetItem(ctx context.Context, userID, itemID uuid.UUID) (model.Item, error) {
	item, err := s.itemStore.GetByID(ctx, itemID)
	if err != nil {
		return model.Item{}, fmt.Errorf("failed to get item by id: %w", err)
	}

	if item.OwnerID != userID {
		return model.Item{}, model.ErrForbidden
	}

	return item, nil
}

// UpdateItem applies a partial update. A new payload replaces the
// attachment reference; the superseded object is left in storage.
func (s *Item) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, params model.UpdateItemParams) (model.Item, error) {
	if _, err := s.GetItem(ctx, userID, itemID); err != nil {
		return model.Item{}, err
	}

	patch := model.ItemPatch{
		Title:       params.Title,
		Description: params.Description,
		Status:      params.Status,
	}

	if params.Payload != nil {
		attachment, err := s.ingestor.Ingest(ctx, params.Payload, params.PayloadName, itemImageField)
		if err != nil {
			return model.Item{}, fmt.Errorf("failed to ingest attachment: %w", err)
		}
		patch.Attachment = &attachment
	}

	item, err := s.itemStore.Update(ctx, itemID, patch)
	if err != nil {
		if patch.Attachment != nil {
			s.discardObject(ctx, patch.Attachment.FileName)
		}
		return model.Item{}, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

// DeleteItem removes the record and then, best effort, its stored
// object. The record is authoritative, so its deletion decides the
// outcome; a stale object is only an orphan.
func (s *Item) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	item, err := s.GetItem(ctx, userID, itemID)
	if err != nil {
		return err
	}

	if err := s.itemStore.Delete(ctx, itemID); err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	s.discardObject(ctx, item.Attachment.FileName)

	return nil
}

// OpenAttachment opens the item's attachment for streaming. Items
// without an attachment report model.ErrNotFound.
func (s *Item) OpenAttachment(ctx context.Context, userID, itemID uuid.UUID) (io.ReadCloser, model.Attachment, error) {
	item, err := s.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, model.Attachment{}, err
	}

	if item.Attachment.FileName == "" {
		return nil, model.Attachment{}, fmt.Errorf("%w: item has no attachment", model.ErrNotFound)
	}

	reader, err := s.storage.Download(ctx, item.Attachment.FileName)
	if err != nil {
		return nil, model.Attachment{}, fmt.Errorf("failed to download attachment: %w", err)
	}

	return reader, item.Attachment, nil
}

func (s *Item) discardObject(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Error("Item service: failed to delete object from storage",
			"file_name", key,
			"error", err)
	}
}
