package sharedmock

import (
	"context"

	"easystay/internal/infra/db"
	"easystay/internal/usecase/shared"

	"go.uber.org/mock/gomock"
)

// StubTx bundles the repository mocks behind the transaction accessor
// interface so command tests can set expectations per repository.
type StubTx struct {
	GuestRepo   *MockGuestRepository
	BookingRepo *MockBookingRepository
	RoomRepo    *MockRoomRepository
	PaymentRepo *MockPaymentRepository
	MessageRepo *MockMessageRepository
}

func NewStubTx(ctrl *gomock.Controller) *StubTx {
	return &StubTx{
		GuestRepo:   NewMockGuestRepository(ctrl),
		BookingRepo: NewMockBookingRepository(ctrl),
		RoomRepo:    NewMockRoomRepository(ctrl),
		PaymentRepo: NewMockPaymentRepository(ctrl),
		MessageRepo: NewMockMessageRepository(ctrl),
	}
}

func (t *StubTx) Guests() shared.GuestRepository     { return t.GuestRepo }
func (t *StubTx) Bookings() shared.BookingRepository { return t.BookingRepo }
func (t *StubTx) Rooms() shared.RoomRepository       { return t.RoomRepo }
func (t *StubTx) Payments() shared.PaymentRepository { return t.PaymentRepo }
func (t *StubTx) Messages() shared.MessageRepository { return t.MessageRepo }
func (t *StubTx) DB() db.DBTX                        { return nil }

// StubUoW runs the given function inline without a real transaction.
type StubUoW struct {
	Tx *StubTx
}

func NewStubUoW(ctrl *gomock.Controller) *StubUoW {
	return &StubUoW{Tx: NewStubTx(ctrl)}
}

func (u *StubUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, u.Tx)
}

func (u *StubUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}
