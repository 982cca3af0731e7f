// Command wait-for-db blocks until DATABASE_URL accepts connections. It
// retries forever and exits non-zero only when interrupted.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-booking/internal/config"
	"github.com/BruksfildServices01/beauty-booking/internal/dbwait"
	"github.com/BruksfildServices01/beauty-booking/internal/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := dbwait.Wait(ctx, dbwait.PgxDialer(cfg.DBUrl), cfg.DBWaitInterval, log); err != nil {
		log.Error("interrupted while waiting for database", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
