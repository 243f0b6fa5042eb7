package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/castilloConsultoresuy/turnolistov2/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 60)

	token, expiresAt, err := tm.GenerateToken(domain.SubjectTypeAdmin)
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.SubjectTypeAdmin, claims.Subject)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	tm := NewTokenManager("secret", 60)
	other := NewTokenManager("different", 60)

	token, _, err := tm.GenerateToken(domain.SubjectTypeAdmin)
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenRejectsGarbage(t *testing.T) {
	tm := NewTokenManager("secret", 60)

	_, err := tm.ParseToken("not-a-token")
	assert.Error(t, err)
}
