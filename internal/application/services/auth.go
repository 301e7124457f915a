package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/crypto/bcrypt"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/domain/session"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/jwt"
	"fileshare-api/internal/infrastructure/mq"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrUsernameTaken         = errors.New("username already taken")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

const refreshTokenBytes = 32

type AuthService struct {
	userRepository    user.Repository
	sessionRepository session.Repository
	jwtService        *jwt.Service
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewAuthService(
	userRepository user.Repository,
	sessionRepository session.Repository,
	jwtService *jwt.Service,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.AuthService {
	return &AuthService{
		userRepository:    userRepository,
		sessionRepository: sessionRepository,
		jwtService:        jwtService,
		mq:                mq,
		mCounter:          mCounter,
	}
}

type userRegisteredEvent struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
}

func (as *AuthService) Register(ctx context.Context, username, password string) (*session.TokenPair, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := as.userRepository.CreateUser(ctx, user.User{
		Username:     username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, user.ErrUsernameTaken) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	pair, err := as.issueSession(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	as.mq.GetInputChan() <- mq.Event{
		Id:     uuid.New(),
		TS:     time.Now(),
		Action: mq.ActionUserRegistered,
		UserID: uint64(u.ID),
		Payload: userRegisteredEvent{
			UserID:   uint64(u.ID),
			Username: u.Username,
		},
	}

	as.mCounter.WithLabelValues("users_registered_total").Inc()

	return pair, nil
}

func (as *AuthService) Login(ctx context.Context, username, password string) (*session.TokenPair, error) {
	u, err := as.userRepository.FetchUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	// Unknown usernames, deactivated accounts and wrong passwords all fail
	// the same way so the response never confirms a username exists.
	if u == nil || !u.Active {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return as.issueSession(ctx, u.ID)
}

func (as *AuthService) Refresh(ctx context.Context, refreshToken string) (*session.TokenPair, error) {
	next, err := newRefreshToken()
	if err != nil {
		return nil, err
	}

	// Rotation is the store's single atomic step: revoke-iff-live plus
	// successor insert. The access token is only minted after it commits.
	rotated, err := as.sessionRepository.Rotate(ctx, refreshToken, next)
	if err != nil {
		return nil, err
	}

	access, err := as.jwtService.GenerateJWT(rotated.UserID, jwt.AccessTokenTTL)
	if err != nil {
		return nil, ErrFailedToGenerateToken
	}

	return &session.TokenPair{
		AccessToken:  access,
		RefreshToken: rotated.Token,
		ExpiresIn:    uint64(jwt.AccessTokenTTL / time.Second),
	}, nil
}

func (as *AuthService) Logout(ctx context.Context, userID user.ID) error {
	// Already-issued access tokens keep working until they expire.
	return as.sessionRepository.RevokeAllForUser(ctx, userID)
}

func (as *AuthService) CurrentUser(ctx context.Context, userID user.ID) (*user.User, error) {
	u, err := as.userRepository.FetchUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return u, nil
}

// issueSession starts a fresh rotation lineage: every live refresh token of
// the user is revoked before the new one is created, so repeated logins
// never accumulate live tokens.
func (as *AuthService) issueSession(ctx context.Context, userID user.ID) (*session.TokenPair, error) {
	if err := as.sessionRepository.RevokeAllForUser(ctx, userID); err != nil {
		return nil, err
	}

	refresh, err := newRefreshToken()
	if err != nil {
		return nil, err
	}
	if _, err = as.sessionRepository.CreateToken(ctx, userID, refresh); err != nil {
		return nil, err
	}

	access, err := as.jwtService.GenerateJWT(userID, jwt.AccessTokenTTL)
	if err != nil {
		return nil, ErrFailedToGenerateToken
	}

	return &session.TokenPair{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    uint64(jwt.AccessTokenTTL / time.Second),
	}, nil
}

func newRefreshToken() (string, error) {
	b := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("refresh token entropy: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
