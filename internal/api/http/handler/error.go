package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/itemvault/internal/logger"
	"github.com/dtroode/itemvault/internal/model"
)

// handleError maps a domain error kind to exactly one status code.
// Collaborator errors never reach the response body; anything that is
// not a known kind becomes an opaque 500 and is logged in full.
func handleError(c *gin.Context, logger *logger.Logger, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, model.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, model.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "operation not allowed"})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, model.ErrDuplicateUsername):
		c.JSON(http.StatusConflict, gin.H{"error": "username already in use"})
	case errors.Is(err, model.ErrIngestion):
		logger.Error("Handler: attachment ingestion failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store attachment"})
	default:
		logger.Error("Handler: internal error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// handleBindingError answers malformed or invalid request payloads.
// The validator message is forwarded so the client can see which field
// failed.
func handleBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
