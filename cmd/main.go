package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/dtroode/itemvault/internal/api/http/context"
	"github.com/dtroode/itemvault/internal/api/http/router"
	httpServer "github.com/dtroode/itemvault/internal/api/http/server"
	"github.com/dtroode/itemvault/internal/config"
	"github.com/dtroode/itemvault/internal/logger"
	"github.com/dtroode/itemvault/internal/model"
	"github.com/dtroode/itemvault/internal/password"
	"github.com/dtroode/itemvault/internal/repository/postgres"
	"github.com/dtroode/itemvault/internal/server"
	"github.com/dtroode/itemvault/internal/service"
	"github.com/dtroode/itemvault/internal/storage/disk"
	miniostorage "github.com/dtroode/itemvault/internal/storage/minio"
	"github.com/dtroode/itemvault/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	itemRepo := postgres.NewItemRepository(db)

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize attachment storage", "error", err)
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret)
	hasher := password.NewHasher()
	ctxMgr := httpctx.NewManager()

	ingestor := service.NewIngestor(storage, logger)
	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	itemService := service.NewItem(itemRepo, ingestor, storage, logger)

	engine := router.New(authService, itemService, ingestor, tokenManager, ctxMgr, logger).Register()
	srv := httpServer.NewHTTPServer(engine, fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// newStorage picks the attachment backend from config: local disk by
// default, MinIO when configured.
func newStorage(ctx context.Context, cfg *config.Config) (model.Storage, error) {
	switch cfg.Storage.Backend {
	case "minio":
		client, err := minio.New(cfg.Storage.Minio.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.Minio.AccessKey, cfg.Storage.Minio.SecretKey, ""),
			Secure: cfg.Storage.Minio.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create minio client: %w", err)
		}
		return miniostorage.NewStorage(ctx, client, cfg.Storage.Minio.Bucket)
	case "disk":
		return disk.New(cfg.Storage.Disk.Dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
