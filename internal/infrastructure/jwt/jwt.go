package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"fileshare-api/internal/domain/user"
)

// AccessTokenTTL bounds the blast radius of a leaked access token; there is
// no revocation mechanism below the refresh layer.
const AccessTokenTTL = 3600 * time.Second

var (
	ErrTokenExpired = errors.New("token expired")
	ErrBadSignature = errors.New("malformed token signature")
	ErrTokenInvalid = errors.New("invalid token")
)

type Service struct {
	jwtSecret string
}

func New(jwtSecret string) *Service { return &Service{jwtSecret: jwtSecret} }

type Claims struct {
	UserID uint64 `json:"user_id"`
	jwt.RegisteredClaims
}

func (s *Service) GenerateJWT(userID user.ID, expiresIn time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: uint64(userID),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			ID:        uuid.NewString(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString([]byte(s.jwtSecret))
}

func (s *Service) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrBadSignature
		default:
			return nil, ErrTokenInvalid
		}
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
