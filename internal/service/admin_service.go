package service

import (
	"crypto/subtle"
	"time"

	"github.com/castilloConsultoresuy/turnolistov2/internal/auth"
	"github.com/castilloConsultoresuy/turnolistov2/internal/config"
	"github.com/castilloConsultoresuy/turnolistov2/internal/domain"
	apperrors "github.com/castilloConsultoresuy/turnolistov2/pkg/util/errorutil"
)

// AdminService checks the operator password and issues session tokens for
// the dashboard. The password gate mirrors the original admin page: a single
// shared secret, not per-user identity.
type AdminService struct {
	cfg    config.AuthConfig
	tokens *auth.TokenManager
}

// NewAdminService constructs the service.
func NewAdminService(cfg config.AuthConfig) *AdminService {
	return &AdminService{
		cfg:    cfg,
		tokens: auth.NewTokenManager(cfg.JWTSecret, cfg.SessionTTLMinutes),
	}
}

// TokenManager exposes the session token manager for middleware wiring.
func (s *AdminService) TokenManager() *auth.TokenManager {
	return s.tokens
}

// Login verifies the admin password and returns a signed session token.
func (s *AdminService) Login(password string) (string, time.Time, error) {
	if password == "" {
		return "", time.Time{}, apperrors.NewValidationError("password must not be empty", nil)
	}
	if !s.passwordMatches(password) {
		return "", time.Time{}, apperrors.NewUnauthorized("incorrect password")
	}
	return s.tokens.GenerateToken(domain.SubjectTypeAdmin)
}

func (s *AdminService) passwordMatches(password string) bool {
	if s.cfg.AdminPasswordHash != "" {
		return auth.ComparePassword(s.cfg.AdminPasswordHash, password) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.cfg.AdminPassword), []byte(password)) == 1
}
