package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderItem is one product line of a StoreOrder.
type OrderItem struct {
	ID           uuid.UUID  `json:"id"`
	StoreOrderID uuid.UUID  `json:"storeOrderId"`
	ProductID    uuid.UUID  `json:"productId"`
	VariantID    *uuid.UUID `json:"variantId,omitempty"` // Optional product variant.
	Quantity     int        `json:"quantity"`
	UnitPrice    float64    `json:"unitPrice"`
	Product      *Product   `json:"product,omitempty"` // Populated during assembly.
	CreatedAt    time.Time  `json:"createdAt"`
}

// Product is the catalog entry an order item points at. The search
// engine reads only the presentation fields.
type Product struct {
	ID       uuid.UUID `json:"id"`
	StoreID  uuid.UUID `json:"storeId"`
	Name     string    `json:"name"`
	ImageURL string    `json:"imageUrl"`
	Price    float64   `json:"price"`
}
