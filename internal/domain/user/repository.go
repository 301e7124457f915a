package user

import (
	"context"
	"errors"
)

// ErrUsernameTaken is shared by every Repository implementation so callers
// can match it without knowing which store they talk to.
var ErrUsernameTaken = errors.New("username already taken")

type Repository interface {
	CreateUser(ctx context.Context, req User) (*User, error)
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	FetchUserByUsername(ctx context.Context, username string) (*User, error)
}
