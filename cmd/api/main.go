package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/parkatlas/park-media-go/internal/cache"
	"github.com/parkatlas/park-media-go/internal/config"
	"github.com/parkatlas/park-media-go/internal/db"
	"github.com/parkatlas/park-media-go/internal/handler/api"
	"github.com/parkatlas/park-media-go/internal/logger"
	cMiddleware "github.com/parkatlas/park-media-go/internal/middleware"
	"github.com/parkatlas/park-media-go/internal/port"
	"github.com/parkatlas/park-media-go/internal/processor"
	"github.com/parkatlas/park-media-go/internal/renderer"
	"github.com/parkatlas/park-media-go/internal/repository/mariadb"
	"github.com/parkatlas/park-media-go/internal/storage"
	mediaSvc "github.com/parkatlas/park-media-go/internal/usecase/media"
	msuuid "github.com/parkatlas/park-media-go/internal/uuid"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		logger.Errorf(ctx, "❌  Configuration error: %v", err)
		os.Exit(1)
	}

	logger.Init()

	database := initDb(ctx, cfg)

	r := initRouter(ctx)

	strg := initStorage(ctx, cfg)
	initBuckets(ctx, strg, []string{cfg.MediaBucket, cfg.ThumbnailsBucket})

	mediaRepo := mariadb.NewMediaRepository(database.DB)
	var ca port.Cache
	if cfg.RedisAddr != "" {
		ca = cache.NewCache(cfg.RedisAddr, cfg.RedisPassword)
		logger.Info(ctx, "✅  Redis cache enabled")
	} else {
		ca = cache.NewNoop()
		logger.Warn(ctx, "⚠️  Redis not configured, caching is disabled")
	}

	invoker := processor.NewFFmpegInvoker(cfg.EncoderBin, cfg.ProberBin, cfg.EncoderTimeout)
	pipeline := processor.NewPipeline(invoker)

	uploaderSvc := mediaSvc.NewUploader(mediaRepo, strg, pipeline, ca, msuuid.NewUUID, cfg.MediaBucket, cfg.ThumbnailsBucket)
	r.With(cMiddleware.WithOwnerAuth(cfg.JWTPublicKey)).
		Post("/medias/upload", api.UploadHandler(uploaderSvc))

	getMediaSvc := mediaSvc.NewMediaGetter(mediaRepo, strg, cfg.MediaBucket, cfg.ThumbnailsBucket)
	rendererSvc := renderer.NewHTTPRenderer(ca)
	r.With(cMiddleware.WithMediaID()).
		Get("/medias/{id}", api.GetMediaHandler(rendererSvc, getMediaSvc))

	r.Get("/healthz", api.HealthzHandler())

	listenRouter(ctx, r, cfg, database)
}

func initDb(ctx context.Context, cfg *config.Settings) *db.Database {
	logger.Info(ctx, "initialising database...")

	database, err := db.New(cfg.MariaDBDSN, cfg.MaxOpenConns, cfg.MaxIdleConns, cfg.ConnMaxLifetime)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to connect to db: %v", err)
		os.Exit(1)
	}

	return database
}

func initRouter(ctx context.Context) *chi.Mux {
	logger.Info(ctx, "initialising router...")

	r := chi.NewRouter()

	r.Use(middleware.Logger)

	r.NotFound(api.NotFoundHandler())
	r.MethodNotAllowed(api.MethodNotAllowedHandler())

	return r
}

func initStorage(ctx context.Context, cfg *config.Settings) port.Storage {
	strg, err := storage.NewStorage(
		cfg.MinioEndpoint,
		cfg.MinioAccessKey,
		cfg.MinioSecretKey,
		cfg.MinioUseSSL,
	)
	if err != nil {
		logger.Errorf(ctx, "❌  Failed to initialize MinIO client: %v", err)
		os.Exit(1)
	}

	return strg
}

func initBuckets(ctx context.Context, strg port.Storage, buckets []string) {
	for _, b := range buckets {
		if err := strg.InitBucket(b); err != nil {
			logger.Errorf(ctx, "❌  Failed to initialize bucket %q: %v", b, err)
			os.Exit(1)
		}
	}
}

func listenRouter(ctx context.Context, r *chi.Mux, cfg *config.Settings, database *db.Database) {
	srv := &http.Server{Addr: ":" + strconv.Itoa(cfg.ServerPort), Handler: r}

	// start serving
	go func() {
		logger.Infof(ctx, "🚀 API listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf(ctx, "❌  Listen error: %v", err)
			os.Exit(1)
		}
	}()

	// block until we get SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info(ctx, "🛑 Shutdown signal received, exiting…")

	// graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "❌  Server shutdown failed: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "✅  Server gracefully stopped")

	if err := database.Close(); err != nil {
		logger.Errorf(ctx, "DB close error: %v", err)
		os.Exit(1)
	}
}
