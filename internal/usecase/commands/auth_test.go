//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"easystay/internal/pkg/clock"
	"easystay/internal/pkg/jwt"
	"easystay/internal/pkg/password"
	"easystay/internal/usecase/commands"
	"easystay/internal/usecase/queries"
	queriesmock "easystay/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := password.Hash("correct-horse")
	require.NoError(t, err)

	admin := &queries.AdminView{
		ID:           1,
		Email:        "admin@easystay.test",
		PasswordHash: hash,
	}

	newService := func() *jwt.Service {
		return jwt.NewService("test-secret", time.Hour, clock.NewFixedClock(time.Now()))
	}

	t.Run("returns a verifiable token for valid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		admins := queriesmock.NewMockAdminQueries(ctrl)
		jwtService := newService()
		cmds := commands.NewAuthCommands(admins, jwtService)

		admins.EXPECT().
			FindByEmail(gomock.Any(), "admin@easystay.test").
			Return(admin, nil)

		result, err := cmds.Login(ctx, "admin@easystay.test", "correct-horse")
		require.NoError(t, err)

		assert.Equal(t, int64(1), result.AdminID)
		assert.Equal(t, "admin@easystay.test", result.Email)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.AdminID)
		assert.Equal(t, "admin@easystay.test", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		admins := queriesmock.NewMockAdminQueries(ctrl)
		cmds := commands.NewAuthCommands(admins, newService())

		admins.EXPECT().
			FindByEmail(gomock.Any(), "admin@easystay.test").
			Return(admin, nil)

		result, err := cmds.Login(ctx, "admin@easystay.test", "wrong")
		require.Nil(t, result)
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})

	t.Run("unknown email is indistinguishable from a wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		admins := queriesmock.NewMockAdminQueries(ctrl)
		cmds := commands.NewAuthCommands(admins, newService())

		admins.EXPECT().
			FindByEmail(gomock.Any(), "nobody@easystay.test").
			Return(nil, assert.AnError)

		result, err := cmds.Login(ctx, "nobody@easystay.test", "correct-horse")
		require.Nil(t, result)
		require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	})
}
