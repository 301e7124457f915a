package user

import (
	"time"
)

type (
	ID   uint64
	User struct {
		ID           ID
		Username     string
		PasswordHash string
		Active       bool
		Email        *string

		CreatedAt time.Time
	}
	Users []*User
)
