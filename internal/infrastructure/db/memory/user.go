package memory

import (
	"context"
	"time"

	domain "fileshare-api/internal/domain/user"
)

type userRepository struct {
	s *Store
}

func (r *userRepository) CreateUser(_ context.Context, req domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.usernames[req.Username]; taken {
		return nil, domain.ErrUsernameTaken
	}

	r.s.lastUserID++
	u := &domain.User{
		ID:           r.s.lastUserID,
		Username:     req.Username,
		PasswordHash: req.PasswordHash,
		Active:       true,
		Email:        req.Email,

		CreatedAt: time.Now(),
	}
	r.s.users[u.ID] = u
	r.s.usernames[u.Username] = u.ID

	out := *u
	return &out, nil
}

func (r *userRepository) FetchUserByID(_ context.Context, id domain.ID) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}

	out := *u
	return &out, nil
}

func (r *userRepository) FetchUserByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.usernames[username]
	if !ok {
		return nil, nil
	}

	out := *r.s.users[id]
	return &out, nil
}
