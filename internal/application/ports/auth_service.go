package ports

import (
	"context"

	"fileshare-api/internal/domain/session"
	"fileshare-api/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*session.TokenPair, error)
	Login(ctx context.Context, username, password string) (*session.TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*session.TokenPair, error)
	Logout(ctx context.Context, userID user.ID) error
	CurrentUser(ctx context.Context, userID user.ID) (*user.User, error)
}
