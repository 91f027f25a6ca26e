package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/itemvault/internal/logger"
	"github.com/dtroode/itemvault/internal/model"
)

// TokenVerifier verifies a session token and returns its claims.
type TokenVerifier interface {
	Parse(token string) (model.TokenClaims, error)
}

// Authenticate validates bearer tokens and injects the user ID into the
// request context. Every failure is answered with the same 401 body; the
// precise cause only reaches the log.
type Authenticate struct {
	tokens         TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle returns the gin middleware function.
func (m *Authenticate) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if tokenString == "" {
			m.logger.Debug("Authenticate: missing authorization token",
				"path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token missing"})
			return
		}

		claims, err := m.tokens.Parse(tokenString)
		if err != nil {
			m.logger.Info("Authenticate: rejected token",
				"path", c.Request.URL.Path,
				"cause", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token invalid"})
			return
		}

		ctx := m.contextManager.SetUserIDToContext(c.Request.Context(), claims.UserID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
