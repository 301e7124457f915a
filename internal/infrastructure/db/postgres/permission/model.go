package permission

type (
	Permission struct {
		ID             uint64
		FileID         uint64
		UserID         uint64
		PermissionType string
	}
)
