package session

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "fileshare-api/internal/domain/session"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateToken(ctx context.Context, userID user.ID, token string) (*domain.RefreshToken, error) {
	t := new(RefreshToken)

	err := r.db.QueryRow(
		ctx,
		InsertToken,
		token, uint64(userID),
	).Scan(
		&t.Token,
		&t.UserID,
		&t.CreatedAt,
		&t.RevokedAt,
		&t.ReplacedBy,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(t), err
}

func (r *Repository) RevokeAllForUser(ctx context.Context, userID user.ID) error {
	_, err := r.db.Exec(ctx, RevokeAllForUser, uint64(userID))
	return err
}

func (r *Repository) Rotate(ctx context.Context, oldToken, newToken string) (*domain.RefreshToken, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var userID uint64
	if err = tx.QueryRow(ctx, RevokeForRotation, oldToken, newToken).Scan(&userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTokenNotLive
		}
		return nil, err
	}

	t := new(RefreshToken)
	if err = tx.QueryRow(ctx, InsertToken, newToken, userID).Scan(
		&t.Token,
		&t.UserID,
		&t.CreatedAt,
		&t.RevokedAt,
		&t.ReplacedBy,
	); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}

	return fromDBModel(t), nil
}
