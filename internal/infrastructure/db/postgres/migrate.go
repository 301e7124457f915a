package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"fileshare-api/internal/infrastructure/db/postgres/migrations"
)

// Migrate applies the embedded goose migrations through a database/sql view
// of the pool; closing that view does not close the pool itself.
func Migrate(ctx context.Context, logger *zap.Logger, pool *pgxpool.Pool) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	logger.Info("db migrations applied")

	return nil
}
