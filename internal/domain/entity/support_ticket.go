package entity

import (
	"time"

	"github.com/google/uuid"
)

// SupportTicket is a customer-support case. Tickets carry no foreign
// key to an order; the support flow writes the order number into the
// free-form description ("Commande N° <id>"), so the association is a
// best-effort text match and may miss or collide.
type SupportTicket struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"userId"`
	Subject     string    `json:"subject"`
	Description string    `json:"description"`
	Status      string    `json:"status"` // e.g. "open", "in_progress", "resolved".
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
