package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the overall status of a top-level order.
type OrderStatus string

const (
	// OrderStatusPending indicates the order has been placed but not yet processed.
	OrderStatusPending OrderStatus = "pending"
	// OrderStatusProcessing indicates at least one store is preparing the order.
	OrderStatusProcessing OrderStatus = "processing"
	// OrderStatusShipped indicates the order has left the stores.
	OrderStatusShipped OrderStatus = "shipped"
	// OrderStatusDelivered indicates the order reached the buyer. Terminal.
	OrderStatusDelivered OrderStatus = "delivered"
	// OrderStatusCancelled indicates the order was cancelled. Terminal.
	OrderStatusCancelled OrderStatus = "cancelled"
)

// AllOrderStatuses lists every order status, in display order. Stats
// distributions are zero-filled over this list.
var AllOrderStatuses = []OrderStatus{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// IsTerminal reports whether no further status transition is expected.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// Order is a top-level order placed by a buyer at checkout. It is
// split into one StoreOrder per store in the cart.
type Order struct {
	ID                    uuid.UUID   // The Global Unique Identifier (GUID) for the order.
	BuyerID               uuid.UUID   // The buyer that placed the order.
	DeliveryAddressID     uuid.UUID   // The destination address.
	Status                OrderStatus // The overall order status. Tolerate any stored value.
	EstimatedDeliveryDate *time.Time  // When the order is promised to arrive. Nil if no estimate was given.
	CreatedAt             time.Time   // Timestamp of when this order was placed.
	UpdatedAt             time.Time   // Timestamp of the last modification.
}

// OrderDetail is one fully assembled row of an order search result:
// the root order plus its nested relations. Optional one-to-one
// relations are nil when absent, never partially populated;
// one-to-many relations are empty slices when absent, never nil.
type OrderDetail struct {
	Order                 Order               `json:"order"`
	Customer              *User               `json:"customer,omitempty"`
	DeliveryAddress       *Address            `json:"deliveryAddress,omitempty"`
	StoreOrders           []*StoreOrderDetail `json:"storeOrders"`
	SupportTicket         *SupportTicket      `json:"supportTicket,omitempty"`
	EstimatedDeliveryTime *int                `json:"estimatedDeliveryTime,omitempty"` // Minutes between creation and the delivery estimate. Nil without an estimate.
	IsDelayed             *bool               `json:"isDelayed,omitempty"`             // True when the estimate has passed and the order is not terminal. Nil otherwise.
}

// OrderStats are the live aggregates computed over the same authorized,
// filtered order set as the search itself, without pagination.
type OrderStats struct {
	TotalCount            int64                 `json:"totalCount"`
	StatusDistribution    map[OrderStatus]int64 `json:"statusDistribution"`
	AvgDurationMinutes    float64               `json:"avgDurationMinutes"`    // Creation to delivery, delivered orders only.
	AvgPreparationMinutes float64               `json:"avgPreparationMinutes"` // Creation to first shipment creation.
	OnTimePercentage      float64               `json:"onTimePercentage"`      // Delivered-by-estimate over delivered; 0 when nothing delivered.
	TotalRevenue          float64               `json:"totalRevenue"`          // Sum of child store-order totals.
}

// ZeroOrderStats returns the all-zero stats payload with a zero-filled
// status distribution, used for empty result envelopes.
func ZeroOrderStats() *OrderStats {
	dist := make(map[OrderStatus]int64, len(AllOrderStatuses))
	for _, s := range AllOrderStatuses {
		dist[s] = 0
	}

	return &OrderStats{StatusDistribution: dist}
}
