package payment

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidMethod = errors.New("invalid payment method")
	ErrInvalidAmount = errors.New("amount must be a positive number")
)

type Method string

const (
	MethodGcash  Method = "gcash"
	MethodPaypal Method = "paypal"
	MethodCash   Method = "cash"
)

func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodGcash, MethodPaypal, MethodCash:
		return Method(s), nil
	default:
		return "", ErrInvalidMethod
	}
}

func (m Method) String() string {
	return string(m)
}

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// InitialStatus simulates the external gateway: electronic methods settle
// immediately, cash stays pending until collected at the desk.
func (m Method) InitialStatus() Status {
	if m == MethodCash {
		return StatusPending
	}
	return StatusCompleted
}

type Payment struct {
	id             int64
	bookingID      int64
	amount         float64
	method         Method
	status         Status
	transactionRef string
}

func New(bookingID int64, amount float64, method Method) (*Payment, error) {
	if bookingID <= 0 {
		return nil, errors.New("booking reference is required")
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	return &Payment{
		bookingID:      bookingID,
		amount:         amount,
		method:         method,
		status:         method.InitialStatus(),
		transactionRef: "ES-" + uuid.NewString(),
	}, nil
}

func (p *Payment) ID() int64              { return p.id }
func (p *Payment) BookingID() int64       { return p.bookingID }
func (p *Payment) Amount() float64        { return p.amount }
func (p *Payment) Method() Method         { return p.method }
func (p *Payment) Status() Status         { return p.status }
func (p *Payment) TransactionRef() string { return p.transactionRef }

func (p *Payment) IsSettled() bool {
	return p.status == StatusCompleted
}
