package queries

import (
	"time"
)

// Read models (DTO for read side)

type RoomView struct {
	ID           int64   `json:"room_id"`
	RoomTypeID   int64   `json:"room_type_id"`
	RoomTypeName string  `json:"name"`
	Price        float64 `json:"price"`
	Capacity     int32   `json:"capacity"`
	Available    int32   `json:"available_rooms"`
	Description  *string `json:"description,omitempty"`
}

type RoomTypeView struct {
	ID          int64   `json:"room_type_id"`
	Name        string  `json:"room_type_name"`
	Description *string `json:"description,omitempty"`
}

type BookingListItem struct {
	ID          int64     `json:"booking_id"`
	GuestName   string    `json:"guest_name"`
	RoomTypes   *string   `json:"room_types,omitempty"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Status      string    `json:"status"`
	TotalPrice  float64   `json:"total_price"`
	BookingDate time.Time `json:"booking_date"`
}

type RecentBooking struct {
	ID           int64     `json:"booking_id"`
	GuestName    string    `json:"guest_name"`
	RoomTypeName *string   `json:"room_type_name,omitempty"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	BookingDate  time.Time `json:"booking_date"`
	Status       string    `json:"status"`
}

type CancelledBooking struct {
	ID           int64     `json:"booking_id"`
	GuestName    string    `json:"guest_name"`
	RoomTypeName *string   `json:"room_type_name,omitempty"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
	Price        float64   `json:"price"`
}

type UpcomingStay struct {
	ID           int64     `json:"booking_id"`
	GuestName    string    `json:"guest_name"`
	RoomTypeName string    `json:"room_type_name"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Status       string    `json:"status"`
}

type GuestView struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone_number"`
}

type MessageView struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Body      string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type MessagesPage struct {
	Messages   []*MessageView `json:"messages"`
	TotalPages int            `json:"totalPages"`
}

type PaymentView struct {
	ID             int64     `json:"payment_id"`
	BookingID      int64     `json:"booking_id"`
	Amount         float64   `json:"amount"`
	Method         string    `json:"payment_method"`
	Status         string    `json:"status"`
	TransactionRef string    `json:"transaction_id"`
	PaidAt         time.Time `json:"payment_date"`
}

type PaymentsPage struct {
	Payments   []*PaymentView `json:"payments"`
	TotalPages int            `json:"totalPages"`
}

type DashboardMetrics struct {
	TotalBookings     int64 `json:"totalBookings"`
	PendingBookings   int64 `json:"pendingBookings"`
	CancelledBookings int64 `json:"cancelledBookings"`
	UpcomingBookings  int64 `json:"upcomingBookings"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MonthlyBucket struct {
	Month   string  `json:"month"`
	Count   int64   `json:"count"`
	Revenue float64 `json:"revenue"`
}

type RoomTypeCount struct {
	RoomName string `json:"room_name"`
	Count    int64  `json:"count"`
}

type ReportSummary struct {
	TotalBookings    int64            `json:"total_bookings"`
	TotalRevenue     float64          `json:"total_revenue"`
	BookingsByStatus []*StatusCount   `json:"bookings_by_status"`
	BookingsPerMonth []*MonthlyBucket `json:"bookings_per_month"`
	FrequentlyBooked []*RoomTypeCount `json:"frequently_booked_rooms"`
}

type AdminView struct {
	ID           int64
	Email        string
	PasswordHash string
}

type PaymentListFilter struct {
	Page      int
	Limit     int
	BookingID *int64
	Status    string
	Method    string
	SortField string
	SortOrder string
}

type MessageSearchFilter struct {
	Page   int
	Limit  int
	Search string
}
