package booking

import (
	"time"
)

type Booking struct {
	id        int64
	guestID   int64
	stay      StayPeriod
	status    Status
	createdAt time.Time
}

// New builds a booking header in its initial state. Confirmation happens
// through payment settlement or an explicit admin status change.
func New(guestID int64, stay StayPeriod) *Booking {
	return &Booking{
		guestID: guestID,
		stay:    stay,
		status:  StatusPending,
	}
}

func Reconstruct(id, guestID int64, stay StayPeriod, status Status, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		guestID:   guestID,
		stay:      stay,
		status:    status,
		createdAt: createdAt,
	}
}

func (b *Booking) ID() int64            { return b.id }
func (b *Booking) GuestID() int64       { return b.guestID }
func (b *Booking) Stay() StayPeriod     { return b.stay }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

// CanExtendTo reports whether newEnd strictly advances the stay.
func (b *Booking) CanExtendTo(newEnd time.Time) bool {
	return newEnd.After(b.stay.CheckOut())
}
