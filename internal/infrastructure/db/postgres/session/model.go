package session

import (
	"time"
)

type (
	RefreshToken struct {
		Token      string
		UserID     uint64
		CreatedAt  time.Time
		RevokedAt  *time.Time
		ReplacedBy *string
	}
)
