package response

import (
	"easystay/internal/usecase/commands"
)

type PaymentResponse struct {
	Message       string `json:"message"`
	PaymentID     int64  `json:"paymentId"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
}

func FromPaymentResult(result *commands.PaymentResult) *PaymentResponse {
	return &PaymentResponse{
		Message:       "Payment processed successfully",
		PaymentID:     result.PaymentID,
		TransactionID: result.TransactionRef,
		Status:        result.Status,
	}
}
