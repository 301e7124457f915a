package permission

import (
	"context"
	"errors"

	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
)

// ErrAlreadyGranted reports a live grant for the same (file, user) pair.
var ErrAlreadyGranted = errors.New("permission already granted")

type Repository interface {
	CreatePermission(ctx context.Context, fileID file.ID, userID user.ID, t Type) (*Permission, error)
	FetchPermission(ctx context.Context, fileID file.ID, userID user.ID) (*Permission, error)
	FetchPermissionByID(ctx context.Context, id ID) (*Permission, error)
	DeletePermission(ctx context.Context, id ID) error
}
