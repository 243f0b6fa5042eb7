package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castilloConsultoresuy/turnolistov2/internal/auth"
	"github.com/castilloConsultoresuy/turnolistov2/internal/config"
	"github.com/castilloConsultoresuy/turnolistov2/internal/domain"
)

func adminConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:         "test-secret",
		AdminPassword:     "admin",
		SessionTTLMinutes: 60,
		BcryptCost:        4,
	}
}

func TestAdminLoginIssuesToken(t *testing.T) {
	svc := NewAdminService(adminConfig())

	token, expiresAt, err := svc.Login("admin")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.SubjectTypeAdmin, claims.Subject)
}

func TestAdminLoginRejectsWrongPassword(t *testing.T) {
	svc := NewAdminService(adminConfig())

	_, _, err := svc.Login("not-the-password")
	assert.Error(t, err)

	_, _, err = svc.Login("")
	assert.Error(t, err)
}

func TestAdminLoginPrefersBcryptHash(t *testing.T) {
	cfg := adminConfig()
	hash, err := auth.HashPassword("s3cret", cfg.BcryptCost)
	require.NoError(t, err)
	cfg.AdminPasswordHash = hash

	svc := NewAdminService(cfg)

	_, _, err = svc.Login("admin")
	assert.Error(t, err, "plain fallback must be ignored when a hash is set")

	_, _, err = svc.Login("s3cret")
	assert.NoError(t, err)
}
