package request

import (
	"errors"
	"time"

	"easystay/internal/domain/booking"
	"easystay/internal/usecase/commands"
)

const dateLayout = "2006-01-02"

var ErrInvalidDateFormat = errors.New("dates must be in YYYY-MM-DD format")

type GuestPayload struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Mobile    string `json:"mobile" binding:"required"`
}

type RoomSelection struct {
	ID       int64 `json:"id" binding:"required"`
	Quantity int32 `json:"quantity" binding:"required"`
}

type CreateBookingRequest struct {
	Guest    GuestPayload    `json:"guest" binding:"required"`
	CheckIn  string          `json:"checkIn" binding:"required"`
	CheckOut string          `json:"checkOut" binding:"required"`
	Rooms    []RoomSelection `json:"rooms" binding:"required"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	checkIn, err := time.Parse(dateLayout, r.CheckIn)
	if err != nil {
		return commands.CreateBookingInput{}, ErrInvalidDateFormat
	}
	checkOut, err := time.Parse(dateLayout, r.CheckOut)
	if err != nil {
		return commands.CreateBookingInput{}, ErrInvalidDateFormat
	}

	rooms := make([]booking.RoomRequest, len(r.Rooms))
	for i, room := range r.Rooms {
		rooms[i] = booking.RoomRequest{RoomID: room.ID, Quantity: room.Quantity}
	}

	return commands.CreateBookingInput{
		FirstName: r.Guest.FirstName,
		LastName:  r.Guest.LastName,
		Email:     r.Guest.Email,
		Phone:     r.Guest.Mobile,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Rooms:     rooms,
	}, nil
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AddRoomRequest struct {
	RoomTypeID int64 `json:"room_type_id" binding:"required"`
	Quantity   int32 `json:"quantity" binding:"required"`
}

type ExtendStayRequest struct {
	NewEndDate string `json:"new_end_date" binding:"required"`
}

func (r ExtendStayRequest) ToDate() (time.Time, error) {
	newEnd, err := time.Parse(dateLayout, r.NewEndDate)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return newEnd, nil
}

type SetAvailabilityRequest struct {
	Available *int32 `json:"available" binding:"required"`
}
