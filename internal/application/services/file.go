package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"fileshare-api/internal/application/ports"
	domain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/permission"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/mq"
	"fileshare-api/internal/infrastructure/storage"
)

var (
	// ErrFileNotFound covers absent files, files the caller may not see and
	// unknown share targets; the failure shapes must be identical.
	ErrFileNotFound  = errors.New("file not found")
	ErrNoFilePart    = errors.New("multipart stream carried no file field")
	ErrNoFilename    = errors.New("file part carries no filename")
	ErrFileTooLarge  = errors.New("file exceeds the upload size limit")
	ErrAlreadyShared = errors.New("file already shared with this user")
)

// is_public is a tiny text field; anything longer is garbage.
const (
	maxFlagFieldBytes        = 64
	maxDescriptionFieldBytes = 1 << 10
)

type FileService struct {
	disk                 *storage.Disk
	fileRepository       domain.Repository
	permissionRepository permission.Repository
	userRepository       user.Repository
	maxUploadBytes       int64
	mq                   ports.RabbitMQ
	mCounter             *prometheus.CounterVec
}

func NewFileService(
	disk *storage.Disk,
	fileRepository domain.Repository,
	permissionRepository permission.Repository,
	userRepository user.Repository,
	maxUploadBytes int64,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.FileService {
	return &FileService{
		disk:                 disk,
		fileRepository:       fileRepository,
		permissionRepository: permissionRepository,
		userRepository:       userRepository,
		maxUploadBytes:       maxUploadBytes,
		mq:                   mq,
		mCounter:             mCounter,
	}
}

type (
	fileUploadedEvent struct {
		FileID   uint64 `json:"file_id"`
		Filename string `json:"filename"`
		Size     int64  `json:"size"`
		IsPublic bool   `json:"is_public"`
	}
	fileSharedEvent struct {
		PermissionID uint64 `json:"permission_id"`
		FileID       uint64 `json:"file_id"`
		UserID       uint64 `json:"user_id"`
	}
)

type uploadMeta struct {
	filename    string
	size        int64
	isPublic    bool
	description *string
}

// Upload drives the transfer pipeline: receive the stream into a temp file
// under the size cap, insert metadata so the store assigns the id, then
// atomically publish the bytes under that id. Every failure path cleans up
// whatever the earlier stages produced.
func (fs *FileService) Upload(ctx context.Context, ownerID user.ID, mr *multipart.Reader) (*domain.File, error) {
	tempPath := fs.disk.TempPath()

	meta, err := fs.receiveToTemp(mr, tempPath)
	if err != nil {
		_ = fs.disk.Remove(tempPath)
		return nil, err
	}

	f, err := fs.fileRepository.CreateFile(ctx, domain.File{
		Filename:    meta.filename,
		Size:        meta.size,
		OwnerID:     ownerID,
		IsPublic:    meta.isPublic,
		Description: meta.description,
	})
	if err != nil {
		_ = fs.disk.Remove(tempPath)
		return nil, err
	}

	if err = fs.disk.Commit(tempPath, f.ID); err != nil {
		// Never leave a metadata row with no backing bytes.
		_ = fs.fileRepository.DeleteFile(ctx, f.ID)
		_ = fs.disk.Remove(tempPath)
		return nil, fmt.Errorf("commit upload %d: %w", f.ID, err)
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Action: mq.ActionFileUploaded,
		UserID: uint64(ownerID),
		Payload: fileUploadedEvent{
			FileID:   uint64(f.ID),
			Filename: f.Filename,
			Size:     f.Size,
			IsPublic: f.IsPublic,
		},
	}

	fs.mCounter.WithLabelValues("files_uploaded_total").Inc()

	return f, nil
}

func (fs *FileService) receiveToTemp(mr *multipart.Reader, tempPath string) (*uploadMeta, error) {
	meta := new(uploadMeta)
	wroteFile := false

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// Covers malformed streams and clients that disconnect
			// mid-upload; the caller removes the temp file either way.
			return nil, fmt.Errorf("read multipart stream: %w", err)
		}

		switch part.FormName() {
		case "is_public":
			v, err := io.ReadAll(io.LimitReader(part, maxFlagFieldBytes))
			if err != nil {
				return nil, fmt.Errorf("read is_public field: %w", err)
			}
			meta.isPublic = parsePublicFlag(string(v))
		case "description":
			v, err := io.ReadAll(io.LimitReader(part, maxDescriptionFieldBytes))
			if err != nil {
				return nil, fmt.Errorf("read description field: %w", err)
			}
			if d := strings.TrimSpace(string(v)); d != "" {
				meta.description = &d
			}
		case "file":
			if wroteFile {
				if err := drainPart(part, fs.maxUploadBytes); err != nil {
					return nil, err
				}
				continue
			}
			meta.filename = part.FileName()
			if meta.filename == "" {
				return nil, ErrNoFilename
			}
			if err := fs.writeTemp(tempPath, part, meta); err != nil {
				return nil, err
			}
			wroteFile = true
		default:
			if err := drainPart(part, fs.maxUploadBytes); err != nil {
				return nil, err
			}
		}
	}

	if !wroteFile {
		return nil, ErrNoFilePart
	}

	return meta, nil
}

func (fs *FileService) writeTemp(tempPath string, part io.Reader, meta *uploadMeta) error {
	dst, err := os.Create(tempPath)
	if err != nil {
		return fmt.Errorf("create temp upload: %w", err)
	}

	// The extra byte past the cap is what trips the limit check.
	n, copyErr := io.Copy(dst, io.LimitReader(part, meta.sizeRemaining(fs.maxUploadBytes)+1))
	meta.size += n
	if cerr := dst.Close(); copyErr == nil {
		copyErr = cerr
	}

	if meta.size > fs.maxUploadBytes {
		return ErrFileTooLarge
	}
	if copyErr != nil {
		return fmt.Errorf("write temp upload: %w", copyErr)
	}

	return nil
}

func (m *uploadMeta) sizeRemaining(cap int64) int64 {
	if m.size >= cap {
		return 0
	}
	return cap - m.size
}

func drainPart(part io.Reader, max int64) error {
	if _, err := io.Copy(io.Discard, io.LimitReader(part, max+1)); err != nil {
		return fmt.Errorf("drain multipart part: %w", err)
	}
	return nil
}

func parsePublicFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

func (fs *FileService) Download(ctx context.Context, requesterID user.ID, fileID domain.ID) (*domain.File, io.ReadCloser, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	if f == nil {
		return nil, nil, ErrFileNotFound
	}

	allowed, err := fs.mayDownload(ctx, f, requesterID)
	if err != nil {
		return nil, nil, err
	}
	if !allowed {
		return nil, nil, ErrFileNotFound
	}

	rc, err := fs.openStored(f.ID)
	if err != nil {
		return nil, nil, err
	}

	return f, rc, nil
}

// DownloadPublic serves unauthenticated reads; it consults only the
// is_public flag, never the permission table.
func (fs *FileService) DownloadPublic(ctx context.Context, fileID domain.ID) (*domain.File, io.ReadCloser, error) {
	f, err := fs.fileRepository.FetchFileByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	if f == nil || !f.IsPublic {
		return nil, nil, ErrFileNotFound
	}

	rc, err := fs.openStored(f.ID)
	if err != nil {
		return nil, nil, err
	}

	return f, rc, nil
}

func (fs *FileService) openStored(fileID domain.ID) (io.ReadCloser, error) {
	rc, err := fs.disk.Open(fileID)
	if err != nil {
		if os.IsNotExist(err) {
			// Metadata without bytes on disk: report absence instead of
			// leaking the inconsistency.
			return nil, ErrFileNotFound
		}
		return nil, fmt.Errorf("open stored file %d: %w", fileID, err)
	}

	return rc, nil
}

func (fs *FileService) Share(ctx context.Context, ownerID user.ID, fileID domain.ID, targetUserID user.ID) (*permission.Permission, error) {
	f, err := fs.fetchOwned(ctx, fileID, ownerID)
	if err != nil {
		return nil, err
	}

	target, err := fs.userRepository.FetchUserByID(ctx, targetUserID)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return nil, ErrFileNotFound
	}

	p, err := fs.permissionRepository.CreatePermission(ctx, f.ID, target.ID, permission.TypeShared)
	if err != nil {
		if errors.Is(err, permission.ErrAlreadyGranted) {
			return nil, ErrAlreadyShared
		}
		return nil, err
	}

	fs.mq.GetInputChan() <- mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Action: mq.ActionFileShared,
		UserID: uint64(ownerID),
		Payload: fileSharedEvent{
			PermissionID: uint64(p.ID),
			FileID:       uint64(p.FileID),
			UserID:       uint64(p.UserID),
		},
	}

	fs.mCounter.WithLabelValues("files_shared_total").Inc()

	return p, nil
}

func (fs *FileService) RevokeShare(ctx context.Context, ownerID user.ID, fileID domain.ID, permissionID permission.ID) error {
	if _, err := fs.fetchOwned(ctx, fileID, ownerID); err != nil {
		return err
	}

	p, err := fs.permissionRepository.FetchPermissionByID(ctx, permissionID)
	if err != nil {
		return err
	}
	if p == nil || p.FileID != fileID {
		return ErrFileNotFound
	}

	return fs.permissionRepository.DeletePermission(ctx, p.ID)
}

func (fs *FileService) RevokeShareForUser(ctx context.Context, ownerID user.ID, fileID domain.ID, targetUserID user.ID) error {
	if _, err := fs.fetchOwned(ctx, fileID, ownerID); err != nil {
		return err
	}

	p, err := fs.permissionRepository.FetchPermission(ctx, fileID, targetUserID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrFileNotFound
	}

	return fs.permissionRepository.DeletePermission(ctx, p.ID)
}
