package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/application/services"
	"fileshare-api/internal/domain/session"
	"fileshare-api/internal/infrastructure/jwt"
	"fileshare-api/internal/interface/api/rest/dto/auth"
	"fileshare-api/internal/interface/api/rest/middleware"
	"fileshare-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.AuthService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.AuthService,
	jwtService *jwt.Service,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	authed := middleware.AuthMiddleware(jwtService)

	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)
	r.GET(RouteRefresh, ac.RefreshHandler)
	r.POST(RouteLogout, authed, ac.LogoutHandler)
	r.GET(RouteMe, authed, ac.MeHandler)

	return ac
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateRegister(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	pair, err := ac.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to register"},
		)
		ac.logger.Error("Register() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, auth.ToTokenResponse(*pair))
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	pair, err := ac.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to login"},
		)
		ac.logger.Error("Login() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, auth.ToTokenResponse(*pair))
}

func (ac *AuthController) RefreshHandler(c *gin.Context) {
	token, ok := bearerToken(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "missing refresh token"},
		)
		return
	}

	pair, err := ac.authService.Refresh(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, session.ErrTokenNotLive) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid refresh token"})
			return
		}

		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to refresh"},
		)
		ac.logger.Error("Refresh() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, auth.ToTokenResponse(*pair))
}

func (ac *AuthController) LogoutHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	if err := ac.authService.Logout(c.Request.Context(), userID); err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to logout"},
		)
		ac.logger.Error("Logout() error", zap.Error(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func (ac *AuthController) MeHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	u, err := ac.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("CurrentUser() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	c.JSON(http.StatusOK, auth.ToMeResponse(u))
}

// bearerToken extracts the opaque credential from the Authorization header.
func bearerToken(c *gin.Context) (string, bool) {
	h := c.GetHeader("Authorization")
	if h == "" {
		return "", false
	}

	token := strings.TrimPrefix(h, "Bearer ")
	if token == h || token == "" {
		return "", false
	}

	return token, true
}
