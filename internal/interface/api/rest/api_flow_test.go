package rest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fileshare-api/config"
	"fileshare-api/internal/application/services"
	"fileshare-api/internal/infrastructure/db/memory"
	"fileshare-api/internal/infrastructure/jwt"
	"fileshare-api/internal/infrastructure/mq"
	"fileshare-api/internal/infrastructure/storage"
	"fileshare-api/internal/interface/api/rest/dto/auth"
	"fileshare-api/internal/interface/api/rest/dto/file"
)

// newTestAPI wires the full HTTP surface over the in-process store, the way
// the app does it minus postgres and the broker.
func newTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New()
	disk, err := storage.New(t.TempDir())
	require.NoError(t, err)

	rbMQ := mq.New(config.MQ{}, zap.NewNop())
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "flow_test_counters"},
		[]string{"result"},
	)

	jwtService := jwt.New("flow-test-secret")
	authService := services.NewAuthService(store.Users(), store.Sessions(), jwtService, rbMQ, counter)
	fileService := services.NewFileService(
		disk, store.Files(), store.Permissions(), store.Users(),
		int64(10<<20), rbMQ, counter,
	)

	r := gin.New()
	NewAuthController(r, zap.NewNop(), authService, jwtService)
	NewFileController(r, fileService, zap.NewNop(), jwtService)

	return r
}

func registerUser(t *testing.T, r *gin.Engine, username string) auth.TokenResponse {
	t.Helper()

	rr := doRequest(t, r, http.MethodPost, RouteRegister, auth.RegisterRequest{
		Username: username,
		Password: "a long enough password",
	}, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var pair auth.TokenResponse
	require.NoError(t, jsonUnmarshal(rr, &pair))
	return pair
}

func jsonUnmarshal(rr *httptest.ResponseRecorder, v any) error {
	return json.Unmarshal(rr.Body.Bytes(), v)
}

func uploadFile(t *testing.T, r *gin.Engine, accessToken, filename, content string, public bool) file.UploadResponse {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if public {
		require.NoError(t, w.WriteField("is_public", "true"))
	}
	dst, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(dst, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, RouteFileUpload, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+accessToken)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp file.UploadResponse
	require.NoError(t, jsonUnmarshal(rr, &resp))
	return resp
}

func TestAPI_SharingFlow(t *testing.T) {
	r := newTestAPI(t)

	alice := registerUser(t, r, "alice")
	bob := registerUser(t, r, "bob")
	bearerAlice := map[string]string{"Authorization": "Bearer " + alice.AccessToken}
	bearerBob := map[string]string{"Authorization": "Bearer " + bob.AccessToken}

	uploaded := uploadFile(t, r, alice.AccessToken, "notes.txt", "private notes", false)
	filePath := fmt.Sprintf("/file/%d", uploaded.FileID)

	// bob cannot see the file before a grant exists
	rr := doRequest(t, r, http.MethodGet, filePath, nil, bearerBob)
	require.Equal(t, http.StatusNotFound, rr.Code)

	// alice shares with bob; bob's id is 2, registration order fixed above
	rr = doRequest(t, r, http.MethodPost, filePath+"/share", file.ShareRequest{UserID: 2}, bearerAlice)
	require.Equal(t, http.StatusOK, rr.Code)
	var grant file.ShareResponse
	require.NoError(t, jsonUnmarshal(rr, &grant))

	// bob sharing alice's file is denied without confirming it exists
	rr = doRequest(t, r, http.MethodPost, filePath+"/share", file.ShareRequest{UserID: 1}, bearerBob)
	require.Equal(t, http.StatusNotFound, rr.Code)

	rr = doRequest(t, r, http.MethodGet, filePath, nil, bearerBob)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "private notes", rr.Body.String())

	// revoke and confirm access is gone
	rr = doRequest(t, r, http.MethodDelete, fmt.Sprintf("%s/share/%d", filePath, grant.PermissionID), nil, bearerAlice)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, r, http.MethodGet, filePath, nil, bearerBob)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_PublicFile(t *testing.T) {
	r := newTestAPI(t)

	alice := registerUser(t, r, "alice")
	uploaded := uploadFile(t, r, alice.AccessToken, "open.txt", "anyone may read", true)

	rr := doRequest(t, r, http.MethodGet, fmt.Sprintf("/file/public/%d", uploaded.FileID), nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "anyone may read", rr.Body.String())

	private := uploadFile(t, r, alice.AccessToken, "closed.txt", "owner only", false)
	rr = doRequest(t, r, http.MethodGet, fmt.Sprintf("/file/public/%d", private.FileID), nil, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestAPI_RefreshRotation(t *testing.T) {
	r := newTestAPI(t)

	alice := registerUser(t, r, "alice")

	// first rotation succeeds
	rr := doRequest(t, r, http.MethodGet, RouteRefresh, nil, map[string]string{
		"Authorization": "Bearer " + alice.RefreshToken,
	})
	require.Equal(t, http.StatusOK, rr.Code)
	var next auth.TokenResponse
	require.NoError(t, jsonUnmarshal(rr, &next))
	assert.NotEqual(t, alice.RefreshToken, next.RefreshToken)

	// replaying the spent token is rejected
	rr = doRequest(t, r, http.MethodGet, RouteRefresh, nil, map[string]string{
		"Authorization": "Bearer " + alice.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// the successor chain stays usable
	rr = doRequest(t, r, http.MethodGet, RouteRefresh, nil, map[string]string{
		"Authorization": "Bearer " + next.RefreshToken,
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAPI_LogoutEndsSession(t *testing.T) {
	r := newTestAPI(t)

	alice := registerUser(t, r, "alice")
	bearer := map[string]string{"Authorization": "Bearer " + alice.AccessToken}

	rr := doRequest(t, r, http.MethodPost, RouteLogout, nil, bearer)
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = doRequest(t, r, http.MethodGet, RouteRefresh, nil, map[string]string{
		"Authorization": "Bearer " + alice.RefreshToken,
	})
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
