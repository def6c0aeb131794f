package jwt

import (
	"testing"

	"github.com/SakshiM24/Employee-Attendance-System/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret-key", "1h")

	token, expiresAt, err := svc.GenerateAccessToken("user-1", "EMP002", user.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	decoded, err := svc.JWTAuth().Decode(token)
	require.NoError(t, err)

	userID, _ := decoded.Get("user_id")
	assert.Equal(t, "user-1", userID)

	code, _ := decoded.Get("employee_code")
	assert.Equal(t, "EMP002", code)

	role, _ := decoded.Get("role")
	assert.Equal(t, "employee", role)

	typ, _ := decoded.Get("type")
	assert.Equal(t, "access", typ)
}

func TestGenerateAccessToken_BadExpiration(t *testing.T) {
	svc := NewJWTService("test-secret-key", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("user-1", "EMP002", user.RoleManager)
	assert.Error(t, err)
}
