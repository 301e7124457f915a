package memory

import (
	"context"

	"fileshare-api/internal/domain/file"
	domain "fileshare-api/internal/domain/permission"
	"fileshare-api/internal/domain/user"
)

type permissionRepository struct {
	s *Store
}

func (r *permissionRepository) CreatePermission(_ context.Context, fileID file.ID, userID user.ID, t domain.Type) (*domain.Permission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	key := grantKey{fileID: fileID, userID: userID}
	if _, exists := r.s.grants[key]; exists {
		return nil, domain.ErrAlreadyGranted
	}

	r.s.lastPermID++
	p := &domain.Permission{
		ID:     r.s.lastPermID,
		FileID: fileID,
		UserID: userID,
		Type:   t,
	}
	r.s.permissions[p.ID] = p
	r.s.grants[key] = p.ID

	out := *p
	return &out, nil
}

func (r *permissionRepository) FetchPermission(_ context.Context, fileID file.ID, userID user.ID) (*domain.Permission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	id, ok := r.s.grants[grantKey{fileID: fileID, userID: userID}]
	if !ok {
		return nil, nil
	}

	out := *r.s.permissions[id]
	return &out, nil
}

func (r *permissionRepository) FetchPermissionByID(_ context.Context, id domain.ID) (*domain.Permission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.permissions[id]
	if !ok {
		return nil, nil
	}

	out := *p
	return &out, nil
}

func (r *permissionRepository) DeletePermission(_ context.Context, id domain.ID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p, ok := r.s.permissions[id]
	if !ok {
		return nil
	}
	delete(r.s.grants, grantKey{fileID: p.FileID, userID: p.UserID})
	delete(r.s.permissions, id)

	return nil
}
