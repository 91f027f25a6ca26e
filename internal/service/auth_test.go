package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/itemvault/internal/model"
	"github.com/dtroode/itemvault/internal/testutil"
)

func TestAuth_Register(t *testing.T) {
	ctx := context.Background()
	params := model.RegisterParams{
		Username: "alice",
		Name:     "Alice",
		Age:      30,
		Password: "secret-password",
	}

	t.Run("success", func(t *testing.T) {
		users := &MockUserStore{}
		hasher := &MockHasher{}
		users.On("GetByUsername", ctx, "alice").Return(model.User{}, model.ErrNotFound)
		hasher.On("Hash", "secret-password").Return("hashed", nil)
		users.On("Create", ctx, mock.MatchedBy(func(u model.User) bool {
			return u.Username == "alice" &&
				u.Name == "Alice" &&
				u.Age == 30 &&
				u.PasswordHash == "hashed" &&
				u.ID != uuid.Nil
		})).Return(model.User{ID: uuid.New(), Username: "alice"}, nil)

		a := NewAuth(users, hasher, &MockTokenManager{}, testutil.MakeNoopLogger())

		user, err := a.Register(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		users.AssertExpectations(t)
		hasher.AssertExpectations(t)
	})

	t.Run("username taken", func(t *testing.T) {
		users := &MockUserStore{}
		users.On("GetByUsername", ctx, "alice").Return(model.User{ID: uuid.New(), Username: "alice"}, nil)

		a := NewAuth(users, &MockHasher{}, &MockTokenManager{}, testutil.MakeNoopLogger())

		_, err := a.Register(ctx, params)
		assert.ErrorIs(t, err, model.ErrDuplicateUsername)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("lookup fails", func(t *testing.T) {
		users := &MockUserStore{}
		users.On("GetByUsername", ctx, "alice").Return(model.User{}, errors.New("db down"))

		a := NewAuth(users, &MockHasher{}, &MockTokenManager{}, testutil.MakeNoopLogger())

		_, err := a.Register(ctx, params)
		assert.ErrorContains(t, err, "failed to get user by username")
	})

	t.Run("store reports duplicate on create", func(t *testing.T) {
		users := &MockUserStore{}
		hasher := &MockHasher{}
		users.On("GetByUsername", ctx, "alice").Return(model.User{}, model.ErrNotFound)
		hasher.On("Hash", "secret-password").Return("hashed", nil)
		users.On("Create", ctx, mock.Anything).Return(model.User{}, model.ErrDuplicateUsername)

		a := NewAuth(users, hasher, &MockTokenManager{}, testutil.MakeNoopLogger())

		_, err := a.Register(ctx, params)
		assert.ErrorIs(t, err, model.ErrDuplicateUsername)
	})
}

func TestAuth_Login(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	stored := model.User{ID: userID, Username: "alice", PasswordHash: "hashed"}

	t.Run("success", func(t *testing.T) {
		users := &MockUserStore{}
		hasher := &MockHasher{}
		tokens := &MockTokenManager{}
		users.On("GetByUsername", ctx, "alice").Return(stored, nil)
		hasher.On("Verify", "hashed", "secret-password").Return(true)
		tokens.On("Generate", userID, "alice").Return("token-123", nil)

		a := NewAuth(users, hasher, tokens, testutil.MakeNoopLogger())

		token, user, err := a.Login(ctx, "alice", "secret-password")
		require.NoError(t, err)
		assert.Equal(t, "token-123", token)
		assert.Equal(t, userID, user.ID)
	})

	t.Run("unknown username", func(t *testing.T) {
		users := &MockUserStore{}
		users.On("GetByUsername", ctx, "ghost").Return(model.User{}, model.ErrNotFound)

		a := NewAuth(users, &MockHasher{}, &MockTokenManager{}, testutil.MakeNoopLogger())

		_, _, err := a.Login(ctx, "ghost", "secret-password")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := &MockUserStore{}
		hasher := &MockHasher{}
		users.On("GetByUsername", ctx, "alice").Return(stored, nil)
		hasher.On("Verify", "hashed", "wrong").Return(false)

		a := NewAuth(users, hasher, &MockTokenManager{}, testutil.MakeNoopLogger())

		_, _, err := a.Login(ctx, "alice", "wrong")
		assert.ErrorIs(t, err, model.ErrInvalidCredentials)
	})

	t.Run("token generation fails", func(t *testing.T) {
		users := &MockUserStore{}
		hasher := &MockHasher{}
		tokens := &MockTokenManager{}
		users.On("GetByUsername", ctx, "alice").Return(stored, nil)
		hasher.On("Verify", "hashed", "secret-password").Return(true)
		tokens.On("Generate", userID, "alice").Return("", errors.New("no key"))

		a := NewAuth(users, hasher, tokens, testutil.MakeNoopLogger())

		_, _, err := a.Login(ctx, "alice", "secret-password")
		assert.ErrorContains(t, err, "failed to generate token")
	})
}
