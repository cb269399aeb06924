package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cultural-sites-service/internal/auth"
	"github.com/cultural-sites-service/internal/config"
)

func newManager(t *testing.T, secret string, ttl time.Duration) *auth.JWTManager {
	t.Helper()
	m, err := auth.NewJWTManager(&config.AuthConfig{JWTSecret: secret, TokenTTL: ttl})
	require.NoError(t, err)
	return m
}

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	_, err := auth.NewJWTManager(&config.AuthConfig{JWTSecret: "", TokenTTL: time.Hour})
	assert.Error(t, err)
}

func TestJWTManager_RoundTrip(t *testing.T) {
	m := newManager(t, "test-secret", time.Hour)

	token, err := m.GenerateToken("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := m.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTManager_ExpiredToken(t *testing.T) {
	m := newManager(t, "test-secret", -time.Minute)

	token, err := m.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = m.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	issuer := newManager(t, "secret-a", time.Hour)
	verifier := newManager(t, "secret-b", time.Hour)

	token, err := issuer.GenerateToken("user-123")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTManager_MalformedToken(t *testing.T) {
	m := newManager(t, "test-secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := m.ValidateToken(token)
		assert.Error(t, err)
	}
}
