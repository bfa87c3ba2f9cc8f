package shared

import (
	"context"
	"time"

	"easystay/internal/domain/booking"
	"easystay/internal/domain/guest"
	"easystay/internal/domain/message"
	"easystay/internal/domain/payment"
	"easystay/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single statement operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Guests() GuestRepository
	Bookings() BookingRepository
	Rooms() RoomRepository
	Payments() PaymentRepository
	Messages() MessageRepository
	DB() db.DBTX
}

type GuestRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, g *guest.Guest) (int64, error)
}

type BookingRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, b *booking.Booking) (int64, error)
	// AddLineItem merges into the existing (booking, room) line item by adding
	// quantity, or inserts a new one.
	AddLineItem(ctx context.Context, dbtx db.DBTX, bookingID, roomID int64, quantity int32) error
	// UpdateStatus reports KindNotFound when no row was affected.
	UpdateStatus(ctx context.Context, dbtx db.DBTX, bookingID int64, status booking.Status) error
	// ExtendStay applies a single conditional update guarded by
	// end_date < newEnd. Zero rows affected is classified as KindNotFound
	// (unknown booking) or KindConflict (non-advancing date).
	ExtendStay(ctx context.Context, dbtx db.DBTX, bookingID int64, newEnd time.Time) error
	Exists(ctx context.Context, dbtx db.DBTX, bookingID int64) (bool, error)
}

type RoomRef struct {
	ID    int64
	Price float64
}

type RoomRepository interface {
	// ReserveQuantity is the conditional decrement of the availability
	// counter. KindConflict means the room had fewer than quantity left.
	ReserveQuantity(ctx context.Context, dbtx db.DBTX, roomID int64, quantity int32) error
	FirstByType(ctx context.Context, dbtx db.DBTX, roomTypeID int64) (*RoomRef, error)
	// SetAvailability is the administrative absolute overwrite of the counter.
	SetAvailability(ctx context.Context, dbtx db.DBTX, roomID int64, available int32) error
}

type PaymentRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, p *payment.Payment) (int64, error)
}

type MessageRepository interface {
	Create(ctx context.Context, dbtx db.DBTX, m *message.Message) (int64, error)
	Delete(ctx context.Context, dbtx db.DBTX, id int64) error
}
