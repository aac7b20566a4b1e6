package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "168h")

	token, expiresAt, err := svc.GenerateRefreshToken("EMP001", RoleEmployee)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Positive(t, expiresAt)

	subject, role, err := svc.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "EMP001", subject)
	assert.Equal(t, RoleEmployee, role)
}

func TestAccessTokenRejectedAsRefresh(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "168h")

	token, _, err := svc.GenerateAccessToken("admin", RoleAdmin)
	require.NoError(t, err)

	_, _, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsForeignSignature(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "168h")
	other := NewJWTService("another-secret", "1h", "168h")

	token, _, err := other.GenerateRefreshToken("EMP001", RoleEmployee)
	require.NoError(t, err)

	_, _, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestRevocation(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "168h")

	token, _, err := svc.GenerateRefreshToken("EMP001", RoleEmployee)
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))
}

func TestRefreshTokenCookie(t *testing.T) {
	svc := NewJWTService("test-secret", "1h", "168h")
	c := svc.RefreshTokenCookie("tok", 1700000000)
	assert.Equal(t, "refresh_token", c.Name)
	assert.Equal(t, "/api/v1/auth", c.Path)
	assert.True(t, c.HttpOnly)
}
