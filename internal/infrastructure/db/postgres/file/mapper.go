package file

import (
	domain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
)

func fromDBModel(model *File) *domain.File {
	var f = &domain.File{
		ID:          domain.ID(model.ID),
		Filename:    model.Filename,
		Size:        model.Size,
		OwnerID:     user.ID(model.OwnerID),
		IsPublic:    model.IsPublic,
		Description: model.Description,

		UploadedAt: model.UploadedAt,
	}

	return f
}
