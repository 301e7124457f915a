package file

import (
	"context"
)

type Repository interface {
	// CreateFile assigns the file id; callers must not pre-compute ids.
	CreateFile(ctx context.Context, req File) (*File, error)
	FetchFileByID(ctx context.Context, id ID) (*File, error)
	// DeleteFile is the compensation for a failed storage commit.
	DeleteFile(ctx context.Context, id ID) error
}
