package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/dtroode/itemvault/internal/model"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

// MockItemStore mocks the ItemStore interface
type MockItemStore struct {
	mock.Mock
}

func (m *MockItemStore) Create(ctx context.Context, item model.Item) (model.Item, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemStore) GetByID(ctx context.Context, id uuid.UUID) (model.Item, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemStore) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]model.Item, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemStore) Update(ctx context.Context, id uuid.UUID, patch model.ItemPatch) (model.Item, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(model.Item), args.Error(1)
}

func (m *MockItemStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStorage mocks the Storage interface
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Upload(ctx context.Context, key string, reader io.Reader) error {
	args := m.Called(ctx, key, reader)
	return args.Error(0)
}

func (m *MockStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockStorage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockStorage) Locate(key string) string {
	args := m.Called(key)
	return args.String(0)
}

// MockHasher mocks the PasswordHasher interface
type MockHasher struct {
	mock.Mock
}

func (m *MockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockHasher) Verify(hash, password string) bool {
	args := m.Called(hash, password)
	return args.Bool(0)
}

// MockTokenManager mocks the TokenManager interface
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Generate(userID uuid.UUID, username string) (string, error) {
	args := m.Called(userID, username)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) Parse(token string) (model.TokenClaims, error) {
	args := m.Called(token)
	return args.Get(0).(model.TokenClaims), args.Error(1)
}

// MockIngestor mocks the AttachmentIngestor interface
type MockIngestor struct {
	mock.Mock
}

func (m *MockIngestor) Ingest(ctx context.Context, payload io.Reader, originalName, fieldLabel string) (model.Attachment, error) {
	args := m.Called(ctx, payload, originalName, fieldLabel)
	return args.Get(0).(model.Attachment), args.Error(1)
}
