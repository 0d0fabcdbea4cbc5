package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	cfg := AuthConfig{Secret: "test-secret", Expire: 3600}

	result, err := GenerateAccessToken(42, RoleUser, cfg, "access-1", "refresh-1")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)

	claims, err := ParseToken(result.Token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserId)
	assert.Equal(t, RoleUser, claims.Role)
	assert.Equal(t, "access-1", claims.AccessJwtId)
	assert.Equal(t, "refresh-1", claims.RefreshJwtId)
	assert.Equal(t, result.ExpireAt, claims.ExpiresAt.Unix())
}

func TestParseTokenWrongSecret(t *testing.T) {
	cfg := AuthConfig{Secret: "test-secret", Expire: 3600}

	result, err := GenerateAccessToken(42, RoleUser, cfg, "a", "r")
	require.NoError(t, err)

	_, err = ParseToken(result.Token, "other-secret")
	assert.Error(t, err)
}

func TestGenerateTokenInvalidConfig(t *testing.T) {
	_, err := GenerateAccessToken(42, RoleUser, AuthConfig{Secret: "", Expire: 3600}, "a", "r")
	assert.Error(t, err)

	_, err = GenerateAccessToken(42, RoleUser, AuthConfig{Secret: "s", Expire: 0}, "a", "r")
	assert.Error(t, err)
}

func TestGenerateTokenInvalidRole(t *testing.T) {
	cfg := AuthConfig{Secret: "test-secret", Expire: 3600}
	_, err := GenerateAccessToken(42, Role("superuser"), cfg, "a", "r")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestValidateRole(t *testing.T) {
	assert.NoError(t, ValidateRole(RoleUser))
	assert.NoError(t, ValidateRole(RoleAdmin))
	assert.ErrorIs(t, ValidateRole(Role("guest")), ErrInvalidRole)
}
