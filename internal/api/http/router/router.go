// Package router assembles the HTTP surface of the service.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dtroode/itemvault/internal/api/http/handler"
	"github.com/dtroode/itemvault/internal/api/http/middleware"
	"github.com/dtroode/itemvault/internal/logger"
	"github.com/dtroode/itemvault/internal/model"
)

// Router wires handlers and middleware into a gin engine.
type Router struct {
	authService    handler.AuthService
	itemService    handler.ItemService
	ingestor       handler.AttachmentIngestor
	tokens         middleware.TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	itemService handler.ItemService,
	ingestor handler.AttachmentIngestor,
	tokens middleware.TokenVerifier,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		itemService:    itemService,
		ingestor:       ingestor,
		tokens:         tokens,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the engine with all routes and middleware attached.
// Auth endpoints stay open; everything under /api/items requires a
// valid session token.
func (r *Router) Register() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)

	engine := gin.New()
	engine.Use(gin.Recovery(), logging.Handle())

	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	api := engine.Group("/api")

	authHandler := handler.NewAuth(r.authService, r.logger)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	itemHandler := handler.NewItem(r.itemService, r.ingestor, r.contextManager, r.logger)
	items := api.Group("/items", authenticate.Handle())
	items.POST("", itemHandler.Create)
	items.GET("", itemHandler.List)
	items.POST("/upload", itemHandler.Upload)
	items.POST("/upload-multiple", itemHandler.UploadMultiple)
	items.GET("/:id", itemHandler.Get)
	items.PATCH("/:id", itemHandler.Update)
	items.DELETE("/:id", itemHandler.Delete)
	items.GET("/:id/attachment", itemHandler.DownloadAttachment)

	return engine
}
