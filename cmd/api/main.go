package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-booking/internal/auth"
	"github.com/BruksfildServices01/beauty-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/beauty-booking/internal/db"
	"github.com/BruksfildServices01/beauty-booking/internal/dbwait"
	"github.com/BruksfildServices01/beauty-booking/internal/handlers"
	"github.com/BruksfildServices01/beauty-booking/internal/logger"
	"github.com/BruksfildServices01/beauty-booking/internal/media"
	"github.com/BruksfildServices01/beauty-booking/internal/routes"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, log)
	stop()
	if err != nil {
		log.Error("api stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

// run serves until ctx is done or the listener fails. Everything it opens
// is closed before it returns.
func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	if cfg.WaitForDB {
		if err := dbwait.Wait(ctx, dbwait.PgxDialer(cfg.DBUrl), cfg.DBWaitInterval, log); err != nil {
			return fmt.Errorf("gave up waiting for database: %w", err)
		}
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	deps := routes.Deps{
		DB:     db,
		Config: cfg,
		Checks: map[string]handlers.Check{},
	}

	if cfg.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		revoker := auth.NewRedisRevoker(rdb)
		deps.Revoker = revoker
		deps.Checks["redis"] = revoker.Ping
		log.Info("token revocation enabled", zap.String("redis_addr", cfg.RedisAddr))
	} else {
		log.Warn("REDIS_ADDR not set, logout is disabled")
	}

	if cfg.S3Enabled() {
		deps.Images = media.NewImageStore(media.NewS3Uploader(cfg), cfg.ImageMaxSide)
		log.Info("image uploads enabled", zap.String("bucket", cfg.S3Bucket))
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server starting", zap.String("addr", cfg.Addr()), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case serveErr = <-errCh:
		serveErr = fmt.Errorf("http server: %w", serveErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Join(serveErr, fmt.Errorf("server shutdown: %w", err))
	}
	if serveErr != nil {
		return serveErr
	}
	log.Info("server exited gracefully")
	return nil
}
