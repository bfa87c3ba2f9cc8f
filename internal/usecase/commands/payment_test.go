//go:build unit

package commands_test

import (
	"context"
	"strings"
	"testing"

	"easystay/internal/domain/booking"
	"easystay/internal/usecase/commands"
	sharedmock "easystay/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSubmitPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("electronic payment confirms the booking in the same transaction", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewStubUoW(ctrl)
		cmds := commands.NewPaymentCommands(uow)

		uow.Tx.BookingRepo.EXPECT().
			Exists(gomock.Any(), gomock.Any(), int64(9)).
			Return(true, nil)
		uow.Tx.PaymentRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(3), nil)
		uow.Tx.BookingRepo.EXPECT().
			UpdateStatus(gomock.Any(), gomock.Any(), int64(9), booking.StatusConfirmed).
			Return(nil)

		result, err := cmds.SubmitPayment(ctx, commands.SubmitPaymentInput{
			BookingID: 9,
			Amount:    4500,
			Method:    "gcash",
		})
		require.NoError(t, err)

		assert.Equal(t, int64(3), result.PaymentID)
		assert.Equal(t, "completed", result.Status)
		assert.True(t, strings.HasPrefix(result.TransactionRef, "ES-"))
	})

	t.Run("cash payment stays pending and leaves the booking untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewStubUoW(ctrl)
		cmds := commands.NewPaymentCommands(uow)

		uow.Tx.BookingRepo.EXPECT().
			Exists(gomock.Any(), gomock.Any(), int64(9)).
			Return(true, nil)
		uow.Tx.PaymentRepo.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(int64(4), nil)

		result, err := cmds.SubmitPayment(ctx, commands.SubmitPaymentInput{
			BookingID: 9,
			Amount:    4500,
			Method:    "cash",
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", result.Status)
	})

	t.Run("unknown booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uow := sharedmock.NewStubUoW(ctrl)
		cmds := commands.NewPaymentCommands(uow)

		uow.Tx.BookingRepo.EXPECT().
			Exists(gomock.Any(), gomock.Any(), int64(404)).
			Return(false, nil)

		result, err := cmds.SubmitPayment(ctx, commands.SubmitPaymentInput{
			BookingID: 404,
			Amount:    4500,
			Method:    "gcash",
		})
		require.Nil(t, result)
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("validation failures never reach the database", func(t *testing.T) {
		cases := []struct {
			name  string
			input commands.SubmitPaymentInput
		}{
			{name: "unknown method", input: commands.SubmitPaymentInput{BookingID: 9, Amount: 100, Method: "bitcoin"}},
			{name: "zero amount", input: commands.SubmitPaymentInput{BookingID: 9, Amount: 0, Method: "gcash"}},
			{name: "missing booking reference", input: commands.SubmitPaymentInput{BookingID: 0, Amount: 100, Method: "gcash"}},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				uow := sharedmock.NewStubUoW(ctrl)
				cmds := commands.NewPaymentCommands(uow)

				result, err := cmds.SubmitPayment(ctx, c.input)
				require.Nil(t, result)
				require.ErrorIs(t, err, commands.ErrDomainValidation)
			})
		}
	})
}
