package auth

import (
	"fileshare-api/internal/domain/session"
	"fileshare-api/internal/domain/user"
)

func ToTokenResponse(pair session.TokenPair) TokenResponse {
	return TokenResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}
}

func ToMeResponse(u *user.User) MeResponse {
	return MeResponse{
		UserID:   uint64(u.ID),
		Username: u.Username,
	}
}
