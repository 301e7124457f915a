package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateUser(ctx context.Context, req domain.User) (*domain.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Username, req.PasswordHash,
	).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Active,
		&u.Email,

		&u.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrUsernameTaken
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, uint64(id)).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Active,
		&u.Email,

		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByUsername, username).Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&u.Active,
		&u.Email,

		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}
