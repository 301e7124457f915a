package file

import (
	"time"
)

type (
	File struct {
		ID          uint64
		Filename    string
		Size        int64
		OwnerID     uint64
		IsPublic    bool
		Description *string

		UploadedAt time.Time
	}
)
