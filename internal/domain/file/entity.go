package file

import (
	"time"

	"fileshare-api/internal/domain/user"
)

type (
	ID   uint64
	File struct {
		ID       ID
		Filename string
		Size     int64
		// OwnerID never changes after the metadata insert.
		OwnerID     user.ID
		IsPublic    bool
		Description *string

		UploadedAt time.Time
	}
	Files []*File
)
