package session

import (
	"context"
	"errors"

	"fileshare-api/internal/domain/user"
)

// ErrTokenNotLive covers both unknown tokens and already-rotated ones.
// Presenting a rotated token is treated as evidence of leakage, so the two
// cases are deliberately indistinguishable.
var ErrTokenNotLive = errors.New("refresh token invalid or already used")

type Repository interface {
	CreateToken(ctx context.Context, userID user.ID, token string) (*RefreshToken, error)
	RevokeAllForUser(ctx context.Context, userID user.ID) error
	// Rotate revokes oldToken iff it is still live and inserts newToken as
	// its successor in a single transaction. When two callers race on the
	// same oldToken exactly one wins; the loser gets ErrTokenNotLive.
	Rotate(ctx context.Context, oldToken, newToken string) (*RefreshToken, error)
}
