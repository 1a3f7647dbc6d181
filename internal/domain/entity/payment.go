package entity

import (
	"time"

	"github.com/google/uuid"
)

// PaymentStatus is the status of a payment.
type PaymentStatus string

const (
	// PaymentStatusPending indicates the payment has not settled yet.
	PaymentStatusPending PaymentStatus = "pending"
	// PaymentStatusPaid indicates the payment settled successfully.
	PaymentStatusPaid PaymentStatus = "paid"
	// PaymentStatusFailed indicates the payment failed.
	PaymentStatusFailed PaymentStatus = "failed"
)

// Payment is the per-StoreOrder payment record. Orders carry no single
// global payment in the seller-facing views; each sub-order settles on
// its own.
type Payment struct {
	ID            uuid.UUID     `json:"id"`
	StoreOrderID  uuid.UUID     `json:"storeOrderId"`
	Amount        float64       `json:"amount"`
	Status        PaymentStatus `json:"status"`
	Method        string        `json:"method"` // e.g. "orange_money", "mtn_momo", "cash".
	TransactionID *string       `json:"transactionId,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
}
