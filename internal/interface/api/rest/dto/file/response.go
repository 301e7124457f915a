package file

type (
	UploadResponse struct {
		FileID   uint64 `json:"file_id"`
		Filename string `json:"filename"`
		Size     int64  `json:"size"`
		IsPublic bool   `json:"is_public"`
	}

	ShareResponse struct {
		PermissionID uint64 `json:"permission_id"`
		FileID       uint64 `json:"file_id"`
		UserID       uint64 `json:"user_id"`
	}
)
