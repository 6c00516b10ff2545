package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/eunyuson/graceroom/internal/config"
	dbRedis "github.com/eunyuson/graceroom/internal/db/redis"
	"github.com/eunyuson/graceroom/internal/domain/hymn"
	"github.com/eunyuson/graceroom/internal/domain/item"
	logpkg "github.com/eunyuson/graceroom/internal/logger"
	"github.com/eunyuson/graceroom/internal/metrics"
	entryrepo "github.com/eunyuson/graceroom/internal/repository/entry"
	guestbookrepo "github.com/eunyuson/graceroom/internal/repository/guestbook"
	"github.com/eunyuson/graceroom/internal/repository/hymnal"
	memorepo "github.com/eunyuson/graceroom/internal/repository/memo"
	statsrepo "github.com/eunyuson/graceroom/internal/repository/stats"
	chiTransport "github.com/eunyuson/graceroom/internal/transport/chi"
	contentuc "github.com/eunyuson/graceroom/internal/usecase/content"
	guestbookuc "github.com/eunyuson/graceroom/internal/usecase/guestbook"
	healthuc "github.com/eunyuson/graceroom/internal/usecase/health"
	hymnuc "github.com/eunyuson/graceroom/internal/usecase/hymn"
	memouc "github.com/eunyuson/graceroom/internal/usecase/memo"
	relateduc "github.com/eunyuson/graceroom/internal/usecase/related"
	"github.com/eunyuson/graceroom/internal/version"
)

func main() {
	// Load .env if present, then configuration based on ENV
	_ = godotenv.Load()
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting graceroom API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.Strings("db_addrs", cfg.Database.Addrs),
	)

	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Password: cfg.Database.Password,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	// Wait for database to be ready
	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register related-query metrics explicitly (no init())
	metrics.RegisterRelatedMetrics()

	// Load the static hymn dataset
	var hymns []hymn.Hymn
	if cfg.Hymns.DatasetPath != "" {
		hymns, err = hymnal.LoadFile(cfg.Hymns.DatasetPath)
		if err != nil {
			logger.Fatal("Failed to load hymn dataset", zap.Error(err))
		}
		logger.Info("Hymn dataset loaded", zap.Int("hymns", len(hymns)))
	} else {
		logger.Warn("No hymn dataset configured, hymn browser will be empty")
	}

	// Create repositories
	prefix := cfg.Storage.KeyPrefix
	entryRepos := make(map[item.Source]*entryrepo.Repo, len(item.Sources()))
	for _, src := range item.Sources() {
		entryRepos[src] = entryrepo.New(store, src, prefix)
	}
	gbRepo := guestbookrepo.New(store, prefix)
	memoRepo := memorepo.New(store, prefix)
	statsRepo := statsrepo.New(store, prefix)

	// Create use case services
	contentRepos := make(map[item.Source]contentuc.Repository, len(entryRepos))
	snapshotters := make(map[item.Source]relateduc.Snapshotter, len(entryRepos))
	for src, repo := range entryRepos {
		contentRepos[src] = repo
		snapshotters[src] = repo
	}
	contentSvc := contentuc.New(contentRepos, statsRepo)
	relatedSvc := relateduc.New(snapshotters)
	gbSvc := guestbookuc.New(gbRepo)
	memoSvc := memouc.New(memoRepo)
	hymnSvc := hymnuc.New(hymns)
	healthSvc := healthuc.New(store)

	// Create chi server
	server := chiTransport.NewServer(
		contentSvc, relatedSvc, gbSvc, memoSvc, hymnSvc, healthSvc,
		cfg.Related.DefaultThreshold, logger,
	)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(cfg.Auth.APIKeys))
	r.Use(metrics.Middleware())
	server.Routes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
