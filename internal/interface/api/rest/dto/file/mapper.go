package file

import (
	domain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/permission"
)

func ToUploadResponse(f *domain.File) UploadResponse {
	return UploadResponse{
		FileID:   uint64(f.ID),
		Filename: f.Filename,
		Size:     f.Size,
		IsPublic: f.IsPublic,
	}
}

func ToShareResponse(p *permission.Permission) ShareResponse {
	return ShareResponse{
		PermissionID: uint64(p.ID),
		FileID:       uint64(p.FileID),
		UserID:       uint64(p.UserID),
	}
}
