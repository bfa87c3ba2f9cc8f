//go:build unit

package commands_test

import (
	"context"
	"testing"

	"easystay/internal/infra"
	"easystay/internal/usecase/commands"
	sharedmock "easystay/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubmitMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("persists a valid submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewStubUoW(ctrl)
		messages := sharedmock.NewMockMessageRepository(ctrl)
		cmds := commands.NewMessageCommands(uow, messages)

		messages.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(11), nil)

		id, err := cmds.SubmitMessage(ctx, commands.SubmitMessageInput{
			Name:  "Juan",
			Email: "juan@example.com",
			Body:  "Do you have rooms available next weekend?",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(11), id)
	})

	t.Run("rejects a short message before touching storage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewStubUoW(ctrl)
		messages := sharedmock.NewMockMessageRepository(ctrl)
		cmds := commands.NewMessageCommands(uow, messages)

		_, err := cmds.SubmitMessage(ctx, commands.SubmitMessageInput{
			Name:  "Juan",
			Email: "juan@example.com",
			Body:  "hi",
		})
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestDeleteMessage(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a known message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewStubUoW(ctrl)
		messages := sharedmock.NewMockMessageRepository(ctrl)
		cmds := commands.NewMessageCommands(uow, messages)

		messages.EXPECT().
			Delete(gomock.Any(), gomock.Any(), int64(11)).
			Return(nil)

		require.NoError(t, cmds.DeleteMessage(ctx, 11))
	})

	t.Run("unknown message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewStubUoW(ctrl)
		messages := sharedmock.NewMockMessageRepository(ctrl)
		cmds := commands.NewMessageCommands(uow, messages)

		messages.EXPECT().
			Delete(gomock.Any(), gomock.Any(), int64(404)).
			Return(infra.WrapRepoErr("message not found", nil, infra.KindNotFound))

		err := cmds.DeleteMessage(ctx, 404)
		require.ErrorIs(t, err, commands.ErrMessageNotFound)
	})
}
