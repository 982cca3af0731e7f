// Package dbwait blocks until the database accepts connections.
package dbwait

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// Dialer opens and closes one connection, reporting whether it worked.
type Dialer func(ctx context.Context) error

// PgxDialer dials Postgres directly with pgx, bypassing the gorm pool.
func PgxDialer(dsn string) Dialer {
	return func(ctx context.Context) error {
		conn, err := pgx.Connect(ctx, dsn)
		if err != nil {
			return err
		}
		defer conn.Close(context.Background())
		return conn.Ping(ctx)
	}
}

// Wait retries dial every interval until it succeeds or ctx is done.
// There is no attempt limit.
func Wait(ctx context.Context, dial Dialer, interval time.Duration, log *zap.Logger) error {
	log.Info("waiting for database")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		err := dial(ctx)
		if err == nil {
			log.Info("database available", zap.Int("attempts", attempt))
			return nil
		}
		log.Info("database unavailable, waiting",
			zap.Int("attempt", attempt),
			zap.Duration("interval", interval),
			zap.Error(err),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
