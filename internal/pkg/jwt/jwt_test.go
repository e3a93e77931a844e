package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *JWTService {
	t.Helper()
	return NewJWTService("test-secret", "15m", "1h").(*JWTService)
}

func TestRevokeToken(t *testing.T) {
	svc := newTestService(t)

	token, _, err := svc.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	assert.False(t, svc.IsTokenRevoked(token))
	svc.RevokeToken(token)
	assert.True(t, svc.IsTokenRevoked(token))

	_, err = svc.ParseRefreshToken(token)
	assert.Error(t, err)
}

func TestPruneRevoked(t *testing.T) {
	t.Run("keeps entries until the token itself expires", func(t *testing.T) {
		svc := newTestService(t)

		token, expiresAt, err := svc.GenerateRefreshToken("user-1")
		require.NoError(t, err)
		svc.RevokeToken(token)

		removed := svc.PruneRevoked(time.Now())
		assert.Equal(t, 0, removed)
		assert.True(t, svc.IsTokenRevoked(token))

		removed = svc.PruneRevoked(time.Unix(expiresAt, 0).Add(time.Second))
		assert.Equal(t, 1, removed)
		assert.False(t, svc.IsTokenRevoked(token))
	})

	t.Run("undecodable tokens age out on the fallback", func(t *testing.T) {
		svc := newTestService(t)

		svc.RevokeToken("not-a-jwt")
		assert.True(t, svc.IsTokenRevoked("not-a-jwt"))

		removed := svc.PruneRevoked(time.Now().Add(25 * time.Hour))
		assert.Equal(t, 1, removed)
		assert.False(t, svc.IsTokenRevoked("not-a-jwt"))
	})
}
