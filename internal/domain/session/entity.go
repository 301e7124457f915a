package session

import (
	"time"

	"fileshare-api/internal/domain/user"
)

// TokenPair is what register, login and refresh hand back to the client.
// ExpiresIn is the access token lifetime in seconds.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    uint64
}

// RefreshToken is one link of a rotation chain. A token is live while
// RevokedAt is nil; rotation is the only transition out of the live state
// and creates exactly one live successor for the same user.
type RefreshToken struct {
	Token     string
	UserID    user.ID
	CreatedAt time.Time
	RevokedAt *time.Time
	// ReplacedBy is audit-only and never consulted for authorization.
	ReplacedBy *string
}
