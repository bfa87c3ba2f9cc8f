package repository

import (
	"context"
	"time"

	"easystay/internal/domain/booking"
	"easystay/internal/infra"
	"easystay/internal/infra/db"
	"easystay/internal/pkg/pgconv"
)

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error) {
	const query = `
		INSERT INTO bookings (guest_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := dbtx.QueryRow(ctx, query,
		b.GuestID(),
		pgconv.DateToPgtype(b.Stay().CheckIn()),
		pgconv.DateToPgtype(b.Stay().CheckOut()),
		b.Status().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err, kindForWriteErr(err))
	}

	return id, nil
}

func (r *BookingRepository) AddLineItem(ctx context.Context, dbtx db.DBTX, bookingID, roomID int64, quantity int32) error {
	const query = `
		INSERT INTO booking_rooms (booking_id, room_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (booking_id, room_id)
		DO UPDATE SET quantity = booking_rooms.quantity + EXCLUDED.quantity`

	if _, err := dbtx.Exec(ctx, query, bookingID, roomID, quantity); err != nil {
		return infra.WrapRepoErr("failed to add booking line item", err, kindForWriteErr(err))
	}

	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, bookingID int64, status booking.Status) error {
	const query = `UPDATE bookings SET status = $1 WHERE id = $2`

	tag, err := dbtx.Exec(ctx, query, status.String(), bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}

	return nil
}

// ExtendStay relies on a single guarded update so the existence check and the
// write cannot interleave with a concurrent mutation. Zero rows affected is
// disambiguated afterwards: a missing booking is NOT_FOUND, a date that does
// not advance the stay is CONFLICT.
func (r *BookingRepository) ExtendStay(ctx context.Context, dbtx db.DBTX, bookingID int64, newEnd time.Time) error {
	const query = `UPDATE bookings SET end_date = $1 WHERE id = $2 AND end_date < $1`

	tag, err := dbtx.Exec(ctx, query, pgconv.DateToPgtype(newEnd), bookingID)
	if err != nil {
		return infra.WrapRepoErr("failed to extend booking stay", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	exists, err := r.Exists(ctx, dbtx, bookingID)
	if err != nil {
		return err
	}
	if !exists {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return infra.WrapRepoErr("new end date does not advance the stay", nil, infra.KindConflict)
}

func (r *BookingRepository) Exists(ctx context.Context, dbtx db.DBTX, bookingID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`

	var exists bool
	if err := dbtx.QueryRow(ctx, query, bookingID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check booking existence", err)
	}

	return exists, nil
}
