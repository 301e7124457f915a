package session

import (
	domain "fileshare-api/internal/domain/session"
	"fileshare-api/internal/domain/user"
)

func fromDBModel(model *RefreshToken) *domain.RefreshToken {
	var t = &domain.RefreshToken{
		Token:      model.Token,
		UserID:     user.ID(model.UserID),
		CreatedAt:  model.CreatedAt,
		RevokedAt:  model.RevokedAt,
		ReplacedBy: model.ReplacedBy,
	}

	return t
}
