package permission

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"fileshare-api/internal/domain/file"
	domain "fileshare-api/internal/domain/permission"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreatePermission(ctx context.Context, fileID file.ID, userID user.ID, t domain.Type) (*domain.Permission, error) {
	p := new(Permission)

	err := r.db.QueryRow(
		ctx,
		InsertPermission,
		uint64(fileID), uint64(userID), string(t),
	).Scan(
		&p.ID,
		&p.FileID,
		&p.UserID,
		&p.PermissionType,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, domain.ErrAlreadyGranted
		}
		return nil, err
	}

	return fromDBModel(p), err
}

func (r *Repository) FetchPermission(ctx context.Context, fileID file.ID, userID user.ID) (*domain.Permission, error) {
	p := new(Permission)
	err := r.db.QueryRow(ctx, SelectPermissionByFileAndUser, uint64(fileID), uint64(userID)).Scan(
		&p.ID,
		&p.FileID,
		&p.UserID,
		&p.PermissionType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), err
}

func (r *Repository) FetchPermissionByID(ctx context.Context, id domain.ID) (*domain.Permission, error) {
	p := new(Permission)
	err := r.db.QueryRow(ctx, SelectPermissionByID, uint64(id)).Scan(
		&p.ID,
		&p.FileID,
		&p.UserID,
		&p.PermissionType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(p), err
}

func (r *Repository) DeletePermission(ctx context.Context, id domain.ID) error {
	_, err := r.db.Exec(ctx, DeletePermissionByID, uint64(id))
	return err
}
