// Package memory is the in-process fallback store behind the same
// repository contracts as the postgres implementation. A single mutex guards
// every mutation; it is held only for the map update, never across I/O, and
// ids are assigned under it so the store stays the sole arbiter of
// uniqueness.
package memory

import (
	"sync"

	domainFile "fileshare-api/internal/domain/file"
	domainPermission "fileshare-api/internal/domain/permission"
	domainSession "fileshare-api/internal/domain/session"
	domainUser "fileshare-api/internal/domain/user"
)

type grantKey struct {
	fileID domainFile.ID
	userID domainUser.ID
}

type Store struct {
	mu sync.Mutex

	users      map[domainUser.ID]*domainUser.User
	usernames  map[string]domainUser.ID
	lastUserID domainUser.ID

	files      map[domainFile.ID]*domainFile.File
	lastFileID domainFile.ID

	permissions map[domainPermission.ID]*domainPermission.Permission
	grants      map[grantKey]domainPermission.ID
	lastPermID  domainPermission.ID

	tokens map[string]*domainSession.RefreshToken
}

func New() *Store {
	return &Store{
		users:       make(map[domainUser.ID]*domainUser.User),
		usernames:   make(map[string]domainUser.ID),
		files:       make(map[domainFile.ID]*domainFile.File),
		permissions: make(map[domainPermission.ID]*domainPermission.Permission),
		grants:      make(map[grantKey]domainPermission.ID),
		tokens:      make(map[string]*domainSession.RefreshToken),
	}
}

func (s *Store) Users() domainUser.Repository             { return &userRepository{s: s} }
func (s *Store) Files() domainFile.Repository             { return &fileRepository{s: s} }
func (s *Store) Permissions() domainPermission.Repository { return &permissionRepository{s: s} }
func (s *Store) Sessions() domainSession.Repository       { return &sessionRepository{s: s} }
