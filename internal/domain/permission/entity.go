package permission

import (
	"fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
)

type Type string

const (
	TypeOwner  Type = "Owner"
	TypeShared Type = "Shared"
	TypePublic Type = "Public"
)

// Only Shared rows are stored: ownership is derived from File.OwnerID and
// public visibility from File.IsPublic. TypeOwner and TypePublic stay in the
// schema vocabulary for compatibility with exported permission records.
type (
	ID         uint64
	Permission struct {
		ID     ID
		FileID file.ID
		UserID user.ID
		Type   Type
	}
	Permissions []*Permission
)
