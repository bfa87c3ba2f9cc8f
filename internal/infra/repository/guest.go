package repository

import (
	"context"

	"easystay/internal/domain/guest"
	"easystay/internal/infra"
	"easystay/internal/infra/db"
)

type GuestRepository struct{}

func NewGuestRepository() *GuestRepository {
	return &GuestRepository{}
}

func (r *GuestRepository) Create(ctx context.Context, dbtx db.DBTX, g *guest.Guest) (int64, error) {
	const query = `
		INSERT INTO guests (first_name, last_name, email, phone)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query, g.FirstName(), g.LastName(), g.Email(), g.Phone()).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create guest", err, kindForWriteErr(err))
	}

	return id, nil
}
