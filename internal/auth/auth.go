package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/hourbill/hourbill/internal/config"
	ierr "github.com/hourbill/hourbill/internal/errors"
)

// Claims holds the authenticated principal extracted from a bearer token.
type Claims struct {
	UserID string
}

// Provider validates bearer tokens for incoming requests.
type Provider interface {
	ValidateToken(ctx context.Context, token string) (*Claims, error)
	GenerateToken(userID string) (string, error)
}

type hmacProvider struct {
	authConfig config.AuthConfig
}

func NewProvider(cfg *config.Configuration) Provider {
	return &hmacProvider{authConfig: cfg.Auth}
}

func (p *hmacProvider) ValidateToken(ctx context.Context, token string) (*Claims, error) {
	parsedToken, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ierr.NewError("unexpected signing method").
				WithHint(fmt.Sprintf("unexpected signing method: %v", token.Header["alg"])).
				Mark(ierr.ErrUnauthenticated)
		}
		return []byte(p.authConfig.Secret), nil
	})

	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Token parse error").
			Mark(ierr.ErrUnauthenticated)
	}

	claims, ok := parsedToken.Claims.(jwt.MapClaims)
	if !ok || !parsedToken.Valid {
		return nil, ierr.NewError("invalid token claims").
			WithHint("Invalid token claims").
			Mark(ierr.ErrUnauthenticated)
	}

	userID, userOk := claims["user_id"].(string)
	if !userOk || userID == "" {
		return nil, ierr.NewError("token missing user ID").
			WithHint("Token missing user ID").
			Mark(ierr.ErrUnauthenticated)
	}

	return &Claims{UserID: userID}, nil
}

// GenerateToken issues an HMAC-signed JWT with 30 days expiration. Used by
// local tooling; the service itself only validates.
func (p *hmacProvider) GenerateToken(userID string) (string, error) {
	expiration := time.Now().Add(30 * 24 * time.Hour)

	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     expiration.Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(p.authConfig.Secret))
}
