package services

import (
	"context"

	domain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
)

// mayDownload resolves the access tiers in order: ownership (derived from
// File.OwnerID, never from a permission row), public visibility, then a
// stored Shared grant.
func (fs *FileService) mayDownload(ctx context.Context, f *domain.File, requesterID user.ID) (bool, error) {
	if f.OwnerID == requesterID || f.IsPublic {
		return true, nil
	}

	p, err := fs.permissionRepository.FetchPermission(ctx, f.ID, requesterID)
	if err != nil {
		return false, err
	}

	return p != nil, nil
}

// fetchOwned loads a file for an owner-only operation. Absence and foreign
// ownership both come back as ErrFileNotFound so callers cannot tell which
// file ids exist.
func (fs *FileService) fetchOwned(ctx context.Context, fileID domain.ID, callerID user.ID) (*domain.File, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if f == nil || f.OwnerID != callerID {
		return nil, ErrFileNotFound
	}

	return f, nil
}
