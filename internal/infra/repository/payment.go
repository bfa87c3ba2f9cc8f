package repository

import (
	"context"

	"easystay/internal/domain/payment"
	"easystay/internal/infra"
	"easystay/internal/infra/db"
)

type PaymentRepository struct{}

func NewPaymentRepository() *PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) (int64, error) {
	const query = `
		INSERT INTO payments (booking_id, amount, method, status, transaction_ref)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		p.BookingID(),
		p.Amount(),
		p.Method().String(),
		string(p.Status()),
		p.TransactionRef(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create payment", err, kindForWriteErr(err))
	}

	return id, nil
}
