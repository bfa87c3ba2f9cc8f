package commands

import (
	"context"
	"fmt"
	"time"

	"easystay/internal/domain/booking"
	"easystay/internal/domain/guest"
	"easystay/internal/infra"
	"easystay/internal/pkg/errs"
	"easystay/internal/usecase/shared"
)

var (
	ErrBookingNotFound         = errs.New("booking not found")
	ErrRoomNotFound            = errs.New("room not found")
	ErrRoomTypeNotFound        = errs.New("no room found for this room type")
	ErrNonAdvancingDate        = errs.New("new end date must be after the current end date")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// InsufficientAvailabilityError identifies which room ran out when a booking
// could not be placed.
type InsufficientAvailabilityError struct {
	RoomID int64
}

func (e *InsufficientAvailabilityError) Error() string {
	return fmt.Sprintf("not enough rooms available for room %d", e.RoomID)
}

type CreateBookingInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CheckIn   time.Time
	CheckOut  time.Time
	Rooms     []booking.RoomRequest
}

type CreateBookingResult struct {
	BookingID int64
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error)
	SetStatus(ctx context.Context, bookingID int64, status string) error
	AddRoom(ctx context.Context, bookingID, roomTypeID int64, quantity int32) error
	ExtendStay(ctx context.Context, bookingID int64, newEnd time.Time) error
	SetRoomAvailability(ctx context.Context, roomID int64, available int32) error
}

type bookingCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewBookingCommands(uow shared.UnitOfWork) BookingCommands {
	return &bookingCommandsImpl{uow: uow}
}

// CreateBooking inserts the guest, the booking header, and every room line in
// one transaction. Any failed reservation rolls the whole submission back so
// no partial booking or leaked inventory survives.
func (b *bookingCommandsImpl) CreateBooking(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error) {
	guestEntity, err := guest.New(input.FirstName, input.LastName, input.Email, input.Phone)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	stay, err := booking.NewStayPeriod(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	rooms, err := booking.NewRoomRequests(input.Rooms)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var bookingID int64
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		guestID, err := tx.Guests().Create(ctx, tx.DB(), guestEntity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		bookingEntity := booking.New(guestID, stay)
		bookingID, err = tx.Bookings().Create(ctx, tx.DB(), bookingEntity)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		for _, room := range rooms {
			if err := tx.Rooms().ReserveQuantity(ctx, tx.DB(), room.RoomID, room.Quantity); err != nil {
				switch {
				case infra.IsKind(err, infra.KindConflict):
					return &InsufficientAvailabilityError{RoomID: room.RoomID}
				case infra.IsKind(err, infra.KindNotFound):
					return ErrRoomNotFound
				default:
					return errs.Mark(err, ErrDatabaseOperationFailed)
				}
			}

			if err := tx.Bookings().AddLineItem(ctx, tx.DB(), bookingID, room.RoomID, room.Quantity); err != nil {
				if infra.IsKind(err, infra.KindForeignKeyViolated) {
					return ErrRoomNotFound
				}
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateBookingResult{BookingID: bookingID}, nil
}

func (b *bookingCommandsImpl) SetStatus(ctx context.Context, bookingID int64, status string) error {
	parsed, err := booking.ParseStatus(status)
	if err != nil {
		return errs.Mark(err, ErrDomainValidation)
	}

	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().UpdateStatus(ctx, tx.DB(), bookingID, parsed); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// AddRoom attaches the first room of the requested type to an existing
// booking, merging with an existing line for the same room. The availability
// counter is not touched here: this mirrors the desk workflow where the
// front desk already confirmed the room out of band.
func (b *bookingCommandsImpl) AddRoom(ctx context.Context, bookingID, roomTypeID int64, quantity int32) error {
	if quantity < 1 {
		return errs.Mark(booking.ErrInvalidQuantity, ErrDomainValidation)
	}

	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.Rooms().FirstByType(ctx, tx.DB(), roomTypeID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomTypeNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := tx.Bookings().AddLineItem(ctx, tx.DB(), bookingID, room.ID, quantity); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		return nil
	})
}

func (b *bookingCommandsImpl) ExtendStay(ctx context.Context, bookingID int64, newEnd time.Time) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Bookings().ExtendStay(ctx, tx.DB(), bookingID, newEnd); err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return ErrBookingNotFound
			case infra.IsKind(err, infra.KindConflict):
				return ErrNonAdvancingDate
			default:
				return errs.Mark(err, ErrDatabaseOperationFailed)
			}
		}
		return nil
	})
}

func (b *bookingCommandsImpl) SetRoomAvailability(ctx context.Context, roomID int64, available int32) error {
	if available < 0 {
		return errs.Mark(errs.New("availability must not be negative"), ErrDomainValidation)
	}

	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Rooms().SetAvailability(ctx, tx.DB(), roomID, available); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrRoomNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
