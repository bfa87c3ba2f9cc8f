package response

type CreateBookingResponse struct {
	Message   string `json:"message"`
	BookingID int64  `json:"bookingId"`
}

type ExtendStayResponse struct {
	Message    string `json:"message"`
	NewEndDate string `json:"new_end_date"`
}
