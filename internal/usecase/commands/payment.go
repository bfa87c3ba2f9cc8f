package commands

import (
	"context"

	"easystay/internal/domain/booking"
	"easystay/internal/domain/payment"
	"easystay/internal/infra"
	"easystay/internal/pkg/errs"
	"easystay/internal/usecase/shared"
)

type SubmitPaymentInput struct {
	BookingID int64
	Amount    float64
	Method    string
}

type PaymentResult struct {
	PaymentID      int64
	TransactionRef string
	Status         string
}

type PaymentCommands interface {
	SubmitPayment(ctx context.Context, input SubmitPaymentInput) (*PaymentResult, error)
}

type paymentCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewPaymentCommands(uow shared.UnitOfWork) PaymentCommands {
	return &paymentCommandsImpl{uow: uow}
}

// SubmitPayment records the payment and, when the method settles immediately,
// confirms the booking in the same transaction. Cash stays pending and leaves
// the booking untouched.
func (p *paymentCommandsImpl) SubmitPayment(ctx context.Context, input SubmitPaymentInput) (*PaymentResult, error) {
	method, err := payment.ParseMethod(input.Method)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	paymentEntity, err := payment.New(input.BookingID, input.Amount, method)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var result PaymentResult
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		exists, err := tx.Bookings().Exists(ctx, tx.DB(), input.BookingID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !exists {
			return ErrBookingNotFound
		}

		paymentID, err := tx.Payments().Create(ctx, tx.DB(), paymentEntity)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if paymentEntity.IsSettled() {
			if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), input.BookingID, booking.StatusConfirmed); err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return ErrBookingNotFound
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		result = PaymentResult{
			PaymentID:      paymentID,
			TransactionRef: paymentEntity.TransactionRef(),
			Status:         paymentEntity.Status().String(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
