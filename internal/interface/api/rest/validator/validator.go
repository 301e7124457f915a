package validator

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"fileshare-api/internal/interface/api/rest/dto/auth"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit, in bytes
	maxUsernameLen = 64
)

// ParseID parses a positive decimal identifier from a path segment.
func ParseID(s string) (uint64, bool) {
	id, err := strconv.ParseUint(s, 10, 64)
	return id, err == nil && id > 0
}

func ValidateRegister(r auth.RegisterRequest) map[string]string {
	errs := make(map[string]string)

	username := strings.TrimSpace(r.Username)

	if username == "" {
		errs["username"] = "username is required"
	} else if utf8.RuneCountInString(username) > maxUsernameLen {
		errs["username"] = "username length must be at most 64 characters"
	}

	// bcrypt rejects inputs over 72 bytes, so the upper bound counts bytes
	// while the lower bound counts characters.
	if utf8.RuneCountInString(r.Password) < minPasswordLen {
		errs["password"] = "password must be at least 8 characters"
	} else if len(r.Password) > maxPasswordLen {
		errs["password"] = "password length must be at most 72 bytes"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}

func ValidateLogin(r auth.LoginRequest) map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Username) == "" {
		errs["username"] = "username is required"
	}
	if r.Password == "" {
		errs["password"] = "password is required"
	}

	if len(errs) == 0 {
		return nil
	}

	return errs
}
