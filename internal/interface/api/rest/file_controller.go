package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/application/services"
	domain "fileshare-api/internal/domain/file"
	"fileshare-api/internal/domain/permission"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/jwt"
	"fileshare-api/internal/interface/api/rest/dto/file"
	"fileshare-api/internal/interface/api/rest/middleware"
	"fileshare-api/internal/interface/api/rest/validator"
)

type FileController struct {
	fileService ports.FileService
	logger      *zap.Logger
}

func NewFileController(
	r *gin.Engine,
	fileService ports.FileService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *FileController {
	fc := &FileController{
		fileService: fileService,
		logger:      logger,
	}

	authed := middleware.AuthMiddleware(jwtService)

	r.POST(RouteFileUpload, authed, fc.UploadHandler)
	r.GET(RouteFile, authed, fc.DownloadHandler)
	r.GET(RouteFilePublic, fc.DownloadPublicHandler)
	r.POST(RouteFileShare, authed, fc.ShareHandler)
	r.DELETE(RouteFileShareByID, authed, fc.RevokeShareHandler)
	r.DELETE(RouteFileShareByUser, authed, fc.RevokeShareForUserHandler)

	return fc
}

func (fc *FileController) UploadHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	mr, err := c.Request.MultipartReader()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "multipart form required"},
		)
		return
	}

	f, err := fc.fileService.Upload(c.Request.Context(), userID, mr)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNoFilePart),
			errors.Is(err, services.ErrNoFilename):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to upload a file"},
			)
			fc.logger.Error("Upload() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, file.ToUploadResponse(f))
}

func (fc *FileController) DownloadHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	fileID, ok := validator.ParseID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	f, body, err := fc.fileService.Download(c.Request.Context(), userID, domain.ID(fileID))
	if err != nil {
		fc.downloadError(c, err)
		return
	}
	defer body.Close()

	fc.serve(c, f, body)
}

func (fc *FileController) DownloadPublicHandler(c *gin.Context) {
	fileID, ok := validator.ParseID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	f, body, err := fc.fileService.DownloadPublic(c.Request.Context(), domain.ID(fileID))
	if err != nil {
		fc.downloadError(c, err)
		return
	}
	defer body.Close()

	fc.serve(c, f, body)
}

func (fc *FileController) ShareHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	fileID, ok := validator.ParseID(c.Param("file_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	var req file.ShareRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.UserID == 0 {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "user_id is required"},
		)
		return
	}

	p, err := fc.fileService.Share(c.Request.Context(), userID, domain.ID(fileID), user.ID(req.UserID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		case errors.Is(err, services.ErrAlreadyShared):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to share a file"},
			)
			fc.logger.Error("Share() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusOK, file.ToShareResponse(p))
}

func (fc *FileController) RevokeShareHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	fileID, okFile := validator.ParseID(c.Param("file_id"))
	permID, okPerm := validator.ParseID(c.Param("permission_id"))
	if !okFile || !okPerm {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	err := fc.fileService.RevokeShare(c.Request.Context(), userID, domain.ID(fileID), permission.ID(permID))
	fc.revokeResult(c, err)
}

func (fc *FileController) RevokeShareForUserHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	fileID, okFile := validator.ParseID(c.Param("file_id"))
	targetID, okUser := validator.ParseID(c.Param("user_id"))
	if !okFile || !okUser {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	err := fc.fileService.RevokeShareForUser(c.Request.Context(), userID, domain.ID(fileID), user.ID(targetID))
	fc.revokeResult(c, err)
}

func (fc *FileController) serve(c *gin.Context, f *domain.File, body io.Reader) {
	extraHeaders := map[string]string{
		"Content-Disposition": contentDisposition(f.Filename),
	}

	c.DataFromReader(http.StatusOK, f.Size, "application/octet-stream", body, extraHeaders)
}

func (fc *FileController) downloadError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrFileNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
		return
	}

	c.JSON(
		http.StatusInternalServerError,
		gin.H{"error": "failed to download a file"},
	)
	fc.logger.Error("Download() error", zap.Error(err))
}

func (fc *FileController) revokeResult(c *gin.Context, err error) {
	if err != nil {
		if errors.Is(err, services.ErrFileNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "file not found"})
			return
		}

		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to revoke a share"},
		)
		fc.logger.Error("RevokeShare() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}
