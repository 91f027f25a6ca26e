package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dtroode/itemvault/internal/logger"
	"github.com/dtroode/itemvault/internal/model"
)

// PasswordHasher abstracts the password hashing scheme so the auth
// service can be tested without paying the bcrypt cost.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// Auth implements registration and credential login. Session state
// lives entirely inside the issued token.
type Auth struct {
	userStore model.UserStore
	hasher    PasswordHasher
	tokens    model.TokenManager
	logger    *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	hasher PasswordHasher,
	tokens model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore: userStore,
		hasher:    hasher,
		tokens:    tokens,
		logger:    logger,
	}
}

// Register creates an account with a freshly hashed password. A taken
// username surfaces as model.ErrDuplicateUsername whether it is caught
// by the pre-check or by the unique index underneath the store.
func (a *Auth) Register(ctx context.Context, params model.RegisterParams) (model.User, error) {
	_, err := a.userStore.GetByUsername(ctx, params.Username)
	if err == nil {
		return model.User{}, model.ErrDuplicateUsername
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	hash, err := a.hasher.Hash(params.Password)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := a.userStore.Create(ctx, model.User{
		ID:           uuid.New(),
		Username:     params.Username,
		Name:         params.Name,
		Age:          params.Age,
		PasswordHash: hash,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: registered user",
		"user_id", user.ID,
		"username", user.Username)

	return user, nil
}

// Login verifies credentials and issues a session token. An unknown
// username and a wrong password produce the same error so the response
// does not reveal which part failed.
func (a *Auth) Login(ctx context.Context, username, password string) (string, model.User, error) {
	user, err := a.userStore.GetByUsername(ctx, username)
	if errors.Is(err, model.ErrNotFound) {
		return "", model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return "", model.User{}, fmt.Errorf("failed to get user by username: %w", err)
	}

	if !a.hasher.Verify(user.PasswordHash, password) {
		return "", model.User{}, model.ErrInvalidCredentials
	}

	token, err := a.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return "", model.User{}, fmt.Errorf("failed to generate token: %w", err)
	}

	a.logger.Debug("Auth service: user logged in", "user_id", user.ID)

	return token, user, nil
}
