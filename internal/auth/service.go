// Package auth issues access tokens for the single-tenant admin login.
// The painter's tablet authenticates once with the shared admin password
// and uses the returned bearer token for the rest of the session.
package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"maleri_backend/platform/apperr"
	"maleri_backend/platform/config"
	"maleri_backend/platform/logger"
)

// Service verifies the admin password and issues JWT access tokens.
type Service struct {
	cfg config.AuthConfig
	log *logger.Logger
}

// NewService creates the auth service.
func NewService(cfg config.AuthConfig, log *logger.Logger) *Service {
	return &Service{cfg: cfg, log: log}
}

// IssueToken checks the password against the configured bcrypt hash and
// returns a signed access token.
func (s *Service) IssueToken(ctx context.Context, password string) (TokenResponse, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.cfg.GetAdminPasswordHash()), []byte(password)); err != nil {
		s.log.Warn("rejected login attempt")
		return TokenResponse{}, apperr.Unauthorized("ogiltiga inloggningsuppgifter")
	}

	ttl := s.cfg.GetAccessTokenTTL()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  "admin",
		"role": "admin",
		"type": "access",
		"jti":  uuid.New().String(),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.GetJWTSecret()))
	if err != nil {
		return TokenResponse{}, apperr.Wrap(apperr.KindInternal, "kunde inte skapa åtkomsttoken", err)
	}

	return TokenResponse{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(ttl.Seconds()),
	}, nil
}
