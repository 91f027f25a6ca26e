package handler

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/itemvault/internal/model"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, model.User, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Get(1).(model.User), args.Error(2)
}

// MockItemService mocks the ItemService interface
type MockItemService struct {
	mock.Mock
}

func (m *MockItemService) CreateItem(ctx context.Context, params model.CreateItemParams) (model.Item, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemService) GetItems(ctx context.Context, userID uuid.UUID) ([]model.Item, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemService) GetItem(ctx context.Context, userID, itemID uuid.UUID) (model.Item, error) {
	args := m.Called(ctx, userID, itemID)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, userID, itemID uuid.UUID, params model.UpdateItemParams) (model.Item, error) {
	args := m.Called(ctx, userID, itemID, params)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemService) DeleteItem(ctx context.Context, userID, itemID uuid.UUID) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockItemService) OpenAttachment(ctx context.Context, userID, itemID uuid.UUID) (io.ReadCloser, model.Attachment, error) {
	args := m.Called(ctx, userID, itemID)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	return rc, args.Get(1).(model.Attachment), args.Error(2)
}

// MockIngestor mocks the AttachmentIngestor interface
type MockIngestor struct {
	mock.Mock
}

func (m *MockIngestor) Ingest(ctx context.Context, payload io.Reader, originalName, fieldLabel string) (model.Attachment, error) {
	args := m.Called(ctx, payload, originalName, fieldLabel)
	return args.Get(0).(model.Attachment), args.Error(1)
}
