//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"easystay/internal/pkg/clock"
	"easystay/internal/pkg/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour, clock.NewFixedClock(time.Now()))

	token, err := service.GenerateToken(1, "admin@easystay.test")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.AdminID)
	assert.Equal(t, "admin@easystay.test", claims.Email)
}

func TestValidateToken(t *testing.T) {
	service := jwt.NewService("test-secret", time.Hour, clock.NewFixedClock(time.Now()))

	t.Run("garbage token", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("token signed with a different secret", func(t *testing.T) {
		other := jwt.NewService("other-secret", time.Hour, clock.NewFixedClock(time.Now()))
		token, err := other.GenerateToken(1, "admin@easystay.test")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired token", func(t *testing.T) {
		// Issued two hours in the past with a one hour lifetime.
		past := clock.NewFixedClock(time.Now().Add(-2 * time.Hour))
		stale := jwt.NewService("test-secret", time.Hour, past)

		token, err := stale.GenerateToken(1, "admin@easystay.test")
		require.NoError(t, err)

		_, err = service.ValidateToken(token)
		require.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
