package memory

import (
	"context"
	"time"

	domain "fileshare-api/internal/domain/file"
)

type fileRepository struct {
	s *Store
}

func (r *fileRepository) CreateFile(_ context.Context, req domain.File) (*domain.File, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.lastFileID++
	f := &domain.File{
		ID:          r.s.lastFileID,
		Filename:    req.Filename,
		Size:        req.Size,
		OwnerID:     req.OwnerID,
		IsPublic:    req.IsPublic,
		Description: req.Description,

		UploadedAt: time.Now(),
	}
	r.s.files[f.ID] = f

	out := *f
	return &out, nil
}

func (r *fileRepository) FetchFileByID(_ context.Context, id domain.ID) (*domain.File, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	f, ok := r.s.files[id]
	if !ok {
		return nil, nil
	}

	out := *f
	return &out, nil
}

func (r *fileRepository) DeleteFile(_ context.Context, id domain.ID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	delete(r.s.files, id)
	return nil
}
