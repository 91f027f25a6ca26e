package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/itemvault/internal/logger"
	"github.com/dtroode/itemvault/internal/model"
)

// Multipart fields attachments arrive under: itemImageField carries the
// single file of the item endpoints, itemImagesField the batch of the
// multi-upload endpoint.
const (
	itemImageField  = "itemImage"
	itemImagesField = "itemImages"

	// maxUploadFiles caps one multi-upload request.
	maxUploadFiles = 5
)

// ItemService is the part of the item service the handler depends on.
type ItemService interface {
	CreateItem(ctx context.Context, params model.CreateItemParams) (model.Item, error)
	GetItems(ctx context.Context, userID uuid.UUID) ([]model.Item, error)
	GetItem(ctx context.Context, userID, itemID uuid.UUID) (model.Item, error)
	UpdateItem(ctx context.Context, userID, itemID uuid.UUID, params model.UpdateItemParams) (model.Item, error)
	DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error
	OpenAttachment(ctx context.Context, userID, itemID uuid.UUID) (io.ReadCloser, model.Attachment, error)
}

// AttachmentIngestor stores a raw upload without touching any record.
type AttachmentIngestor interface {
	Ingest(ctx context.Context, payload io.Reader, originalName, fieldLabel string) (model.Attachment, error)
}

// Item handles item CRUD and attachment requests. The user identity
// comes from the request context populated by the authentication
// middleware.
type Item struct {
	service        ItemService
	ingestor       AttachmentIngestor
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewItem creates a new Item handler instance.
func NewItem(service ItemService, ingestor AttachmentIngestor, contextManager model.ContextManager, logger *logger.Logger) *Item {
	return &Item{
		service:        service,
		ingestor:       ingestor,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createItemRequest struct {
	Title       string `form:"title" binding:"required,min=3,max=200"`
	Description string `form:"description" binding:"required,min=3,max=400"`
	Status      string `form:"status"`
}

type updateItemRequest struct {
	Title       *string `form:"title" binding:"omitempty,min=3,max=200"`
	Description *string `form:"description" binding:"omitempty,min=3,max=400"`
	Status      *string `form:"status"`
}

type attachmentResponse struct {
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
}

type itemResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Status      string              `json:"status"`
	Attachment  *attachmentResponse `json:"attachment,omitempty"`
	CreatedAt   time.Time           `json:"createdAt"`
}

func toItemResponse(item model.Item) itemResponse {
	resp := itemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Status:      item.Status,
		CreatedAt:   item.CreatedAt,
	}
	if item.Attachment.FileName != "" {
		resp.Attachment = &attachmentResponse{
			FileName: item.Attachment.FileName,
			FilePath: item.Attachment.FilePath,
		}
	}
	return resp
}

func (h *Item) userID(c *gin.Context) (uuid.UUID, bool) {
	userID, ok := h.contextManager.GetUserIDFromContext(c.Request.Context())
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization token missing"})
		return uuid.Nil, false
	}
	return userID, true
}

func itemIDParam(c *gin.Context) (uuid.UUID, error) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: item id is not a valid uuid", model.ErrValidation)
	}
	return itemID, nil
}

// formFile returns the attachment file, or nil when the field is absent.
func formFile(c *gin.Context) (*multipart.FileHeader, error) {
	file, err := c.FormFile(itemImageField)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to read %s file", model.ErrValidation, itemImageField)
	}
	return file, nil
}

// Create stores a new item from a multipart form. The attachment file
// is required here; text fields are validated by binding tags.
func (h *Item) Create(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	var req createItemRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindingError(c, err)
		return
	}

	file, err := formFile(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	if file == nil {
		handleError(c, h.logger, fmt.Errorf("%w: %s file is required", model.ErrValidation, itemImageField))
		return
	}

	payload, err := file.Open()
	if err != nil {
		handleError(c, h.logger, fmt.Errorf("%w: failed to open %s file: %w", model.ErrIngestion, itemImageField, err))
		return
	}
	defer payload.Close()

	item, err := h.service.CreateItem(c.Request.Context(), model.CreateItemParams{
		OwnerID:     userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Payload:     payload,
		PayloadName: file.Filename,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toItemResponse(item))
}

// List returns every item owned by the requesting user.
func (h *Item) List(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	items, err := h.service.GetItems(c.Request.Context(), userID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	resp := make([]itemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toItemResponse(item))
	}

	c.JSON(http.StatusOK, resp)
}

// Get returns a single owned item.
func (h *Item) Get(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	itemID, err := itemIDParam(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	item, err := h.service.GetItem(c.Request.Context(), userID, itemID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(item))
}

// Update applies a partial update from a multipart form. Absent fields
// stay untouched; a present file replaces the attachment.
func (h *Item) Update(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	itemID, err := itemIDParam(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	var req updateItemRequest
	if err := c.ShouldBind(&req); err != nil {
		handleBindingError(c, err)
		return
	}

	params := model.UpdateItemParams{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}

	file, err := formFile(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	if file != nil {
		payload, err := file.Open()
		if err != nil {
			handleError(c, h.logger, fmt.Errorf("%w: failed to open %s file: %w", model.ErrIngestion, itemImageField, err))
			return
		}
		defer payload.Close()
		params.Payload = payload
		params.PayloadName = file.Filename
	}

	item, err := h.service.UpdateItem(c.Request.Context(), userID, itemID, params)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, toItemResponse(item))
}

// Delete removes an owned item and its attachment.
func (h *Item) Delete(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	itemID, err := itemIDParam(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	if err := h.service.DeleteItem(c.Request.Context(), userID, itemID); err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DownloadAttachment streams the item's attachment to the client.
func (h *Item) DownloadAttachment(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	itemID, err := itemIDParam(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	reader, attachment, err := h.service.OpenAttachment(c.Request.Context(), userID, itemID)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	defer reader.Close()

	c.DataFromReader(http.StatusOK, -1, "application/octet-stream", reader, map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", attachment.FileName),
	})
}

// Upload ingests a file without creating an item. The returned
// reference can be attached to an item later.
func (h *Item) Upload(c *gin.Context) {
	if _, ok := h.userID(c); !ok {
		return
	}

	file, err := formFile(c)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}
	if file == nil {
		handleError(c, h.logger, fmt.Errorf("%w: %s file is required", model.ErrValidation, itemImageField))
		return
	}

	payload, err := file.Open()
	if err != nil {
		handleError(c, h.logger, fmt.Errorf("%w: failed to open %s file: %w", model.ErrIngestion, itemImageField, err))
		return
	}
	defer payload.Close()

	attachment, err := h.ingestor.Ingest(c.Request.Context(), payload, file.Filename, itemImageField)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, attachmentResponse{
		FileName: attachment.FileName,
		FilePath: attachment.FilePath,
	})
}

// UploadMultiple ingests a batch of files without creating items. At
// most maxUploadFiles are accepted per request.
func (h *Item) UploadMultiple(c *gin.Context) {
	if _, ok := h.userID(c); !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		handleError(c, h.logger, fmt.Errorf("%w: failed to read multipart form", model.ErrValidation))
		return
	}

	files := form.File[itemImagesField]
	if len(files) == 0 {
		handleError(c, h.logger, fmt.Errorf("%w: %s files are required", model.ErrValidation, itemImagesField))
		return
	}
	if len(files) > maxUploadFiles {
		handleError(c, h.logger, fmt.Errorf("%w: at most %d %s files are accepted", model.ErrValidation, maxUploadFiles, itemImagesField))
		return
	}

	stored := make([]attachmentResponse, 0, len(files))
	for _, file := range files {
		attachment, err := h.ingestOne(c, file)
		if err != nil {
			handleError(c, h.logger, err)
			return
		}
		stored = append(stored, attachmentResponse{
			FileName: attachment.FileName,
			FilePath: attachment.FilePath,
		})
	}

	c.JSON(http.StatusCreated, stored)
}

func (h *Item) ingestOne(c *gin.Context, file *multipart.FileHeader) (model.Attachment, error) {
	payload, err := file.Open()
	if err != nil {
		return model.Attachment{}, fmt.Errorf("%w: failed to open %s file: %w", model.ErrIngestion, itemImagesField, err)
	}
	defer payload.Close()

	return h.ingestor.Ingest(c.Request.Context(), payload, file.Filename, itemImagesField)
}
