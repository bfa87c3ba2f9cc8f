package response

import (
	"time"

	"easystay/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type GuestResponse struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone_number"`
}

type BookingListResponse struct {
	ID          int64     `json:"booking_id"`
	GuestName   string    `json:"guest_name"`
	RoomTypes   *string   `json:"room_types,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      string    `json:"status"`
	TotalPrice  float64   `json:"total_price"`
	BookingDate time.Time `json:"booking_date"`
}

func FromGuestViews(views []*queries.GuestView) ([]*GuestResponse, error) {
	var resp []*GuestResponse
	if err := copier.Copy(&resp, &views); err != nil {
		return nil, err
	}
	return resp, nil
}

func FromBookingList(views []*queries.BookingListItem) ([]*BookingListResponse, error) {
	var resp []*BookingListResponse
	if err := copier.Copy(&resp, &views); err != nil {
		return nil, err
	}
	return resp, nil
}
