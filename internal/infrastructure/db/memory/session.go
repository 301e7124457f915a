package memory

import (
	"context"
	"time"

	domain "fileshare-api/internal/domain/session"
	"fileshare-api/internal/domain/user"
)

type sessionRepository struct {
	s *Store
}

func (r *sessionRepository) CreateToken(_ context.Context, userID user.ID, token string) (*domain.RefreshToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t := &domain.RefreshToken{
		Token:     token,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	r.s.tokens[token] = t

	out := *t
	return &out, nil
}

func (r *sessionRepository) RevokeAllForUser(_ context.Context, userID user.ID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now()
	for _, t := range r.s.tokens {
		if t.UserID == userID && t.RevokedAt == nil {
			revokedAt := now
			t.RevokedAt = &revokedAt
		}
	}

	return nil
}

func (r *sessionRepository) Rotate(_ context.Context, oldToken, newToken string) (*domain.RefreshToken, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	old, ok := r.s.tokens[oldToken]
	if !ok || old.RevokedAt != nil {
		return nil, domain.ErrTokenNotLive
	}

	now := time.Now()
	replacedBy := newToken
	old.RevokedAt = &now
	old.ReplacedBy = &replacedBy

	succ := &domain.RefreshToken{
		Token:     newToken,
		UserID:    old.UserID,
		CreatedAt: now,
	}
	r.s.tokens[newToken] = succ

	out := *succ
	return &out, nil
}
