package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"fileshare-api/internal/domain/file"
)

// Disk keeps every committed object under a single base directory as
// "<file_id>.bin". Temporary uploads live in the same directory under a
// per-upload random name so the final rename never crosses filesystems.
type Disk struct {
	baseDir string
}

func New(baseDir string) (*Disk, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &Disk{baseDir: baseDir}, nil
}

func (d *Disk) TempPath() string {
	return filepath.Join(d.baseDir, "tmp_"+uuid.NewString())
}

func (d *Disk) FinalPath(fileID file.ID) string {
	return filepath.Join(d.baseDir, fmt.Sprintf("%d.bin", fileID))
}

// Commit publishes a fully written temp file under its final id. The rename
// guarantees no partial object is ever visible at the final path.
func (d *Disk) Commit(tempPath string, fileID file.ID) error {
	return os.Rename(tempPath, d.FinalPath(fileID))
}

func (d *Disk) Open(fileID file.ID) (*os.File, error) {
	return os.Open(d.FinalPath(fileID))
}

// Remove is used on compensation paths; a missing file is not an error.
func (d *Disk) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
