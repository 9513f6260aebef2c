package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luxeride/rental-service/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 30)

	token, exp, err := tm.GenerateToken("user-1", domain.RoleCustomer, "sid-1")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, domain.RoleCustomer, claims.Role)
	assert.Equal(t, "sid-1", claims.SessionID)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	tm := NewTokenManager("secret-a", 30)
	other := NewTokenManager("secret-b", 30)

	token, _, err := tm.GenerateToken("user-1", domain.RoleAdmin, "sid-1")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestTokenGarbageRejected(t *testing.T) {
	tm := NewTokenManager("secret", 30)
	_, err := tm.ParseToken("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("sup3r-secret", 4)
	require.NoError(t, err)
	assert.NoError(t, ComparePassword(hash, "sup3r-secret"))
	assert.Error(t, ComparePassword(hash, "wrong"))
}

func TestMemoryRevoker(t *testing.T) {
	revoker := NewMemoryRevoker()
	ctx := context.Background()

	assert.False(t, revoker.IsRevoked(ctx, "sid-1"))
	require.NoError(t, revoker.Revoke(ctx, "sid-1", time.Minute))
	assert.True(t, revoker.IsRevoked(ctx, "sid-1"))
	assert.Equal(t, 1, revoker.Revocations)
}
