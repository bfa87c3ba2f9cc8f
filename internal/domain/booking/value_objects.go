package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidStayPeriod  = errors.New("check-out date must be after the check-in date")
	ErrInvalidStatus      = errors.New("invalid booking status")
	ErrNoRoomsRequested   = errors.New("at least one room must be requested")
	ErrInvalidQuantity    = errors.New("room quantity must be a positive integer")
	ErrNonAdvancingDate   = errors.New("new end date must be after the current end date")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

func (s Status) String() string {
	return string(s)
}

// StayPeriod is a half-open date range: nights are counted from check-in up to
// but not including check-out.
type StayPeriod struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStayPeriod(checkIn, checkOut time.Time) (StayPeriod, error) {
	if !checkOut.After(checkIn) {
		return StayPeriod{}, ErrInvalidStayPeriod
	}
	return StayPeriod{checkIn: checkIn, checkOut: checkOut}, nil
}

func (p StayPeriod) CheckIn() time.Time  { return p.checkIn }
func (p StayPeriod) CheckOut() time.Time { return p.checkOut }

func (p StayPeriod) Nights() int {
	return int(p.checkOut.Sub(p.checkIn).Hours() / 24)
}

// RoomRequest is one requested unit of the booking: a concrete room and how
// many of it the guest wants.
type RoomRequest struct {
	RoomID   int64
	Quantity int32
}

func NewRoomRequests(reqs []RoomRequest) ([]RoomRequest, error) {
	if len(reqs) == 0 {
		return nil, ErrNoRoomsRequested
	}
	for _, r := range reqs {
		if r.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
	}
	return reqs, nil
}
