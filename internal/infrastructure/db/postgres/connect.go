package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// New opens the pool backing the file metadata store and verifies it
// answers before anything is served.
func New(ctx context.Context, logger *zap.Logger, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open metadata db pool: %w", err)
	}
	if err = pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping metadata db: %w", err)
	}

	logger.Info("metadata db connected")

	return pool, nil
}
