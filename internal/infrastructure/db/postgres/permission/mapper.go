package permission

import (
	"fileshare-api/internal/domain/file"
	domain "fileshare-api/internal/domain/permission"
	"fileshare-api/internal/domain/user"
)

func fromDBModel(model *Permission) *domain.Permission {
	var p = &domain.Permission{
		ID:     domain.ID(model.ID),
		FileID: file.ID(model.FileID),
		UserID: user.ID(model.UserID),
		Type:   domain.Type(model.PermissionType),
	}

	return p
}
