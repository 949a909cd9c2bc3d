package jwt

import (
	"testing"

	"github.com/hazarhq/attendance-backend-go/internal/domain/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_TokenPair(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("test-secret", "15m", "168h")

	access, _, err := svc.GenerateAccessToken("emp-1", "jamie", employee.RoleEmployee)
	require.NoError(t, err)

	decoded, err := svc.JWTAuth().Decode(access)
	require.NoError(t, err)
	tokenType, _ := decoded.Get("type")
	assert.Equal(t, "access", tokenType)
	assert.NotEmpty(t, decoded.JwtID())

	refresh, _, err := svc.GenerateRefreshToken("emp-1")
	require.NoError(t, err)
	decoded, err = svc.JWTAuth().Decode(refresh)
	require.NoError(t, err)
	tokenType, _ = decoded.Get("type")
	assert.Equal(t, "refresh", tokenType)
}

func TestJWTService_RevokeToken(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("test-secret", "15m", "168h")

	svc.RevokeToken("jti-revoked")
	assert.True(t, svc.IsTokenRevoked("jti-revoked"))
	assert.False(t, svc.IsTokenRevoked("jti-other"))
}

func TestJWTService_RevocationPruning(t *testing.T) {
	t.Parallel()
	// A negative refresh lifetime makes every revocation lapse immediately.
	svc := NewJWTService("test-secret", "15m", "-1h").(*JWTService)

	svc.RevokeToken("jti-spent")
	assert.False(t, svc.IsTokenRevoked("jti-spent"), "lapsed revocations no longer match")

	svc.RevokeToken("jti-next")

	svc.mu.RLock()
	_, kept := svc.revokedTokens["jti-spent"]
	svc.mu.RUnlock()
	assert.False(t, kept, "lapsed entries are dropped on the next revoke")
}
