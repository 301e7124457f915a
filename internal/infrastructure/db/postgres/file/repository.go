package file

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateFile(ctx context.Context, req domain.File) (*domain.File, error) {
	f := new(File)

	err := r.db.QueryRow(
		ctx,
		InsertFile,
		req.Filename, req.Size, uint64(req.OwnerID), req.IsPublic, req.Description,
	).Scan(
		&f.ID,
		&f.Filename,
		&f.Size,
		&f.OwnerID,
		&f.IsPublic,
		&f.Description,

		&f.UploadedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) FetchFileByID(ctx context.Context, id domain.ID) (*domain.File, error) {
	f := new(File)
	err := r.db.QueryRow(ctx, SelectFileByID, uint64(id)).Scan(
		&f.ID,
		&f.Filename,
		&f.Size,
		&f.OwnerID,
		&f.IsPublic,
		&f.Description,

		&f.UploadedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(f), err
}

func (r *Repository) DeleteFile(ctx context.Context, id domain.ID) error {
	_, err := r.db.Exec(ctx, DeleteFileByID, uint64(id))
	return err
}
