package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dtroode/itemvault/internal/logger"
	"github.com/dtroode/itemvault/internal/model"
)

// AuthService is the part of the auth service the handler depends on.
type AuthService interface {
	Register(ctx context.Context, params model.RegisterParams) (model.User, error)
	Login(ctx context.Context, username, password string) (string, model.User, error)
}

// Auth handles registration and login requests.
type Auth struct {
	service AuthService
	logger  *logger.Logger
}

// NewAuth creates a new Auth handler instance.
func NewAuth(service AuthService, logger *logger.Logger) *Auth {
	return &Auth{service: service, logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=4"`
	Name     string `json:"name" binding:"required,min=4"`
	Age      int    `json:"age" binding:"required,gte=1"`
	Password string `json:"password" binding:"required,min=4"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

type loginUser struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

func toUserResponse(user model.User) userResponse {
	return userResponse{
		ID:        user.ID,
		Username:  user.Username,
		Name:      user.Name,
		Age:       user.Age,
		CreatedAt: user.CreatedAt,
	}
}

// Register creates a new account.
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindingError(c, err)
		return
	}

	user, err := h.service.Register(c.Request.Context(), model.RegisterParams{
		Username: req.Username,
		Name:     req.Name,
		Age:      req.Age,
		Password: req.Password,
	})
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login verifies credentials and returns a session token.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handleBindingError(c, err)
		return
	}

	token, user, err := h.service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		handleError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, loginResponse{
		Token: token,
		User:  loginUser{ID: user.ID, Username: user.Username},
	})
}
