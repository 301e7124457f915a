package ports

import (
	"context"
	"io"
	"mime/multipart"

	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/permission"
	"fileshare-api/internal/domain/user"
)

type FileService interface {
	Upload(ctx context.Context, ownerID user.ID, mr *multipart.Reader) (*file.File, error)
	Download(ctx context.Context, requesterID user.ID, fileID file.ID) (*file.File, io.ReadCloser, error)
	DownloadPublic(ctx context.Context, fileID file.ID) (*file.File, io.ReadCloser, error)
	Share(ctx context.Context, ownerID user.ID, fileID file.ID, targetUserID user.ID) (*permission.Permission, error)
	RevokeShare(ctx context.Context, ownerID user.ID, fileID file.ID, permissionID permission.ID) error
	RevokeShareForUser(ctx context.Context, ownerID user.ID, fileID file.ID, targetUserID user.ID) error
}
