package services

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fileshare-api/internal/application/ports"
	domain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/db/memory"
	"fileshare-api/internal/infrastructure/storage"
)

const testUploadCap = int64(1 << 10) // 1 KB keeps the oversize cases cheap

type fileServiceEnv struct {
	svc       ports.FileService
	store     *memory.Store
	uploadDir string
}

func newFileService(t *testing.T) fileServiceEnv {
	t.Helper()

	dir := t.TempDir()

	disk, err := storage.New(dir)
	require.NoError(t, err)

	store := memory.New()
	svc := NewFileService(
		disk,
		store.Files(),
		store.Permissions(),
		store.Users(),
		testUploadCap,
		testMQ(),
		testCounter(),
	)

	return fileServiceEnv{svc: svc, store: store, uploadDir: dir}
}

func (e fileServiceEnv) addUser(t *testing.T, username string) user.ID {
	t.Helper()

	u, err := e.store.Users().CreateUser(context.Background(), user.User{
		Username:     username,
		PasswordHash: "x",
	})
	require.NoError(t, err)

	return u.ID
}

// multipartBody assembles a form in field order; a nil filename slot means
// the field is sent as a plain value.
type formPart struct {
	field    string
	filename string
	value    string
}

func multipartBody(t *testing.T, parts []formPart) *multipart.Reader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		var (
			dst io.Writer
			err error
		)
		if p.filename != "" {
			dst, err = w.CreateFormFile(p.field, p.filename)
		} else {
			dst, err = w.CreateFormField(p.field)
		}
		require.NoError(t, err)
		_, err = io.WriteString(dst, p.value)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return multipart.NewReader(&buf, w.Boundary())
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestFileService_Upload(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		parts      []formPart
		wantPublic bool
	}{
		{
			name: "file only",
			parts: []formPart{
				{field: "file", filename: "report.txt", value: "hello upload"},
			},
		},
		{
			name: "public flag before file",
			parts: []formPart{
				{field: "is_public", value: "TRUE"},
				{field: "file", filename: "report.txt", value: "hello upload"},
			},
			wantPublic: true,
		},
		{
			name: "public flag after file",
			parts: []formPart{
				{field: "file", filename: "report.txt", value: "hello upload"},
				{field: "is_public", value: "yes"},
			},
			wantPublic: true,
		},
		{
			name: "explicit false flag",
			parts: []formPart{
				{field: "is_public", value: "0"},
				{field: "file", filename: "report.txt", value: "hello upload"},
			},
		},
		{
			name: "unknown fields ignored",
			parts: []formPart{
				{field: "comment", value: "whatever"},
				{field: "file", filename: "report.txt", value: "hello upload"},
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			env := newFileService(t)
			owner := env.addUser(t, "alice")

			f, err := env.svc.Upload(ctx, owner, multipartBody(t, tt.parts))
			require.NoError(t, err)
			require.NotNil(t, f)

			assert.Equal(t, "report.txt", f.Filename)
			assert.Equal(t, int64(len("hello upload")), f.Size)
			assert.Equal(t, owner, f.OwnerID)
			assert.Equal(t, tt.wantPublic, f.IsPublic)

			// bytes live under the assigned id, no temp files remain
			names := dirEntries(t, env.uploadDir)
			require.Len(t, names, 1)
			assert.NotContains(t, names[0], "tmp_")

			data, err := os.ReadFile(filepath.Join(env.uploadDir, names[0]))
			require.NoError(t, err)
			assert.Equal(t, "hello upload", string(data))
		})
	}
}

func TestFileService_Upload_Description(t *testing.T) {
	ctx := context.Background()
	env := newFileService(t)
	owner := env.addUser(t, "alice")

	f, err := env.svc.Upload(ctx, owner, multipartBody(t, []formPart{
		{field: "description", value: "  quarterly report  "},
		{field: "file", filename: "report.txt", value: "hello upload"},
	}))
	require.NoError(t, err)
	require.NotNil(t, f.Description)
	assert.Equal(t, "quarterly report", *f.Description)

	// blank descriptions stay unset
	f, err = env.svc.Upload(ctx, owner, multipartBody(t, []formPart{
		{field: "description", value: "   "},
		{field: "file", filename: "report.txt", value: "hello upload"},
	}))
	require.NoError(t, err)
	assert.Nil(t, f.Description)
}

func TestFileService_Upload_NoFilePart(t *testing.T) {
	ctx := context.Background()
	env := newFileService(t)
	owner := env.addUser(t, "alice")

	_, err := env.svc.Upload(ctx, owner, multipartBody(t, []formPart{
		{field: "is_public", value: "true"},
	}))
	require.ErrorIs(t, err, ErrNoFilePart)

	assert.Empty(t, dirEntries(t, env.uploadDir))
}

func TestFileService_Upload_NoFilename(t *testing.T) {
	ctx := context.Background()
	env := newFileService(t)
	owner := env.addUser(t, "alice")

	// a file field sent as a plain value carries no filename
	_, err := env.svc.Upload(ctx, owner, multipartBody(t, []formPart{
		{field: "file", value: "raw bytes"},
	}))
	require.ErrorIs(t, err, ErrNoFilename)

	assert.Empty(t, dirEntries(t, env.uploadDir))
}

func TestFileService_Upload_TooLarge(t *testing.T) {
	ctx := context.Background()
	env := newFileService(t)
	owner := env.addUser(t, "alice")

	big := strings.Repeat("a", int(testUploadCap)+1)
	_, err := env.svc.Upload(ctx, owner, multipartBody(t, []formPart{
		{field: "file", filename: "big.bin", value: big},
	}))
	require.ErrorIs(t, err, ErrFileTooLarge)

	// rejected uploads leave neither bytes nor metadata behind
	assert.Empty(t, dirEntries(t, env.uploadDir))
	f, err := env.store.Files().FetchFileByID(ctx, domain.ID(1))
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestFileService_Upload_ExactCap(t *testing.T) {
	ctx := context.Background()
	env := newFileService(t)
	owner := env.addUser(t, "alice")

	exact := strings.Repeat("a", int(testUploadCap))
	f, err := env.svc.Upload(ctx, owner, multipartBody(t, []formPart{
		{field: "file", filename: "exact.bin", value: exact},
	}))
	require.NoError(t, err)
	assert.Equal(t, testUploadCap, f.Size)
}

func (e fileServiceEnv) upload(t *testing.T, owner user.ID, public bool) *domain.File {
	t.Helper()

	parts := []formPart{
		{field: "file", filename: "doc.txt", value: "shared content"},
	}
	if public {
		parts = append(parts, formPart{field: "is_public", value: "1"})
	}

	f, err := e.svc.Upload(context.Background(), owner, multipartBody(t, parts))
	require.NoError(t, err)
	return f
}

func TestFileService_Download(t *testing.T) {
	ctx := context.Background()
	env := newFileService(t)
	owner := env.addUser(t, "alice")
	other := env.addUser(t, "bob")

	private := env.upload(t, owner, false)
	public := env.upload(t, owner, true)

	t.Run("owner reads own file", func(t *testing.T) {
		f, body, err := env.svc.Download(ctx, owner, private.ID)
		require.NoError(t, err)
		defer body.Close()

		data, err := io.ReadAll(body)
		require.NoError(t, err)
		assert.Equal(t, "shared content", string(data))
		assert.Equal(t, private.Filename, f.Filename)
	})

	t.Run("stranger is told the file does not exist", func(t *testing.T) {
		_, _, err := env.svc.Download(ctx, other, private.ID)
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("public file readable by anyone", func(t *testing.T) {
		_, body, err := env.svc.Download(ctx, other, public.ID)
		require.NoError(t, err)
		body.Close()
	})

	t.Run("missing id", func(t *testing.T) {
		_, _, err := env.svc.Download(ctx, owner, private.ID+1000)
		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}

func TestFileService_DownloadPublic(t *testing.T) {
	ctx := context.Background()
	env := newFileService(t)
	owner := env.addUser(t, "alice")

	private := env.upload(t, owner, false)
	public := env.upload(t, owner, true)

	_, body, err := env.svc.DownloadPublic(ctx, public.ID)
	require.NoError(t, err)
	body.Close()

	// private files are invisible on the anonymous path, even to their owner
	_, _, err = env.svc.DownloadPublic(ctx, private.ID)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestFileService_Share(t *testing.T) {
	ctx := context.Background()
	env := newFileService(t)
	owner := env.addUser(t, "alice")
	target := env.addUser(t, "bob")
	stranger := env.addUser(t, "mallory")

	f := env.upload(t, owner, false)

	p, err := env.svc.Share(ctx, owner, f.ID, target)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, f.ID, p.FileID)
	assert.Equal(t, target, p.UserID)

	t.Run("grant unlocks download", func(t *testing.T) {
		_, body, err := env.svc.Download(ctx, target, f.ID)
		require.NoError(t, err)
		body.Close()
	})

	t.Run("duplicate grant conflicts", func(t *testing.T) {
		_, err := env.svc.Share(ctx, owner, f.ID, target)
		assert.ErrorIs(t, err, ErrAlreadyShared)
	})

	t.Run("unknown target user", func(t *testing.T) {
		_, err := env.svc.Share(ctx, owner, f.ID, target+1000)
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("non-owner cannot share", func(t *testing.T) {
		_, err := env.svc.Share(ctx, stranger, f.ID, target)
		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}

func TestFileService_RevokeShare(t *testing.T) {
	ctx := context.Background()
	env := newFileService(t)
	owner := env.addUser(t, "alice")
	target := env.addUser(t, "bob")

	f := env.upload(t, owner, false)
	other := env.upload(t, owner, false)

	p, err := env.svc.Share(ctx, owner, f.ID, target)
	require.NoError(t, err)

	t.Run("permission from another file does not match", func(t *testing.T) {
		err := env.svc.RevokeShare(ctx, owner, other.ID, p.ID)
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("revoke closes access", func(t *testing.T) {
		require.NoError(t, env.svc.RevokeShare(ctx, owner, f.ID, p.ID))

		_, _, err := env.svc.Download(ctx, target, f.ID)
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("re-share after revoke", func(t *testing.T) {
		_, err := env.svc.Share(ctx, owner, f.ID, target)
		require.NoError(t, err)
	})
}

func TestFileService_RevokeShareForUser(t *testing.T) {
	ctx := context.Background()
	env := newFileService(t)
	owner := env.addUser(t, "alice")
	target := env.addUser(t, "bob")

	f := env.upload(t, owner, false)

	_, err := env.svc.Share(ctx, owner, f.ID, target)
	require.NoError(t, err)

	t.Run("no grant for that user", func(t *testing.T) {
		err := env.svc.RevokeShareForUser(ctx, owner, f.ID, target+1000)
		assert.ErrorIs(t, err, ErrFileNotFound)
	})

	t.Run("revoke by user closes access", func(t *testing.T) {
		require.NoError(t, env.svc.RevokeShareForUser(ctx, owner, f.ID, target))

		_, _, err := env.svc.Download(ctx, target, f.ID)
		assert.ErrorIs(t, err, ErrFileNotFound)
	})
}
