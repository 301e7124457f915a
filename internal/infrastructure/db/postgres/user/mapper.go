package user

import (
	domain "fileshare-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:           domain.ID(model.ID),
		Username:     model.Username,
		PasswordHash: model.PasswordHash,
		Active:       model.Active,
		Email:        model.Email,

		CreatedAt: model.CreatedAt,
	}

	return u
}
