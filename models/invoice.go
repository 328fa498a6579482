package models

import "time"

// PaymentRequest carries what the payment processor needs to charge a draft.
type PaymentRequest struct {
	UserID   string  `json:"userId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"` // e.g. "card"
}

// Invoice is produced by the payment step.
type Invoice struct {
	InvoiceID string    `json:"invoiceId"`
	BookingID string    `json:"bookingId,omitempty"`
	UserID    string    `json:"userId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Method    string    `json:"method"`
	PaymentID string    `json:"paymentId,omitempty"`
	Status    string    `json:"status"` // "pending", "paid"
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
