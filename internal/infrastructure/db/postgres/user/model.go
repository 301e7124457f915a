package user

import (
	"time"
)

type (
	User struct {
		ID           uint64
		Username     string
		PasswordHash string
		Active       bool
		Email        *string

		CreatedAt time.Time
	}
)
