package request

import (
	"easystay/internal/usecase/commands"
)

type BookingDetails struct {
	BookingID int64   `json:"bookingId" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
}

type SubmitPaymentRequest struct {
	PaymentMethod  string         `json:"paymentMethod" binding:"required"`
	BookingDetails BookingDetails `json:"bookingDetails" binding:"required"`
}

func (r SubmitPaymentRequest) ToInput() commands.SubmitPaymentInput {
	return commands.SubmitPaymentInput{
		BookingID: r.BookingDetails.BookingID,
		Amount:    r.BookingDetails.Amount,
		Method:    r.PaymentMethod,
	}
}
