package entity

import (
	"time"

	"github.com/google/uuid"
)

// StoreOrderStatus is the status of a per-store sub-order.
type StoreOrderStatus string

const (
	// StoreOrderStatusPending indicates the store has not started preparing.
	StoreOrderStatusPending StoreOrderStatus = "pending"
	// StoreOrderStatusInProgress indicates the store is preparing or dispatching.
	StoreOrderStatusInProgress StoreOrderStatus = "in_progress"
	// StoreOrderStatusDelivered indicates the sub-order reached the buyer. Terminal.
	StoreOrderStatusDelivered StoreOrderStatus = "delivered"
	// StoreOrderStatusCancelled indicates the sub-order was cancelled. Terminal.
	StoreOrderStatusCancelled StoreOrderStatus = "cancelled"
)

// AllStoreOrderStatuses lists every store-order status, in display order.
var AllStoreOrderStatuses = []StoreOrderStatus{
	StoreOrderStatusPending,
	StoreOrderStatusInProgress,
	StoreOrderStatusDelivered,
	StoreOrderStatusCancelled,
}

// IsTerminal reports whether no further status transition is expected.
func (s StoreOrderStatus) IsTerminal() bool {
	return s == StoreOrderStatusDelivered || s == StoreOrderStatusCancelled
}

// StoreOrder is the per-store slice of a top-level order, created at
// order-split time. It always belongs to exactly one Order and one
// Store, and references at most one Shipment at a time.
type StoreOrder struct {
	ID          uuid.UUID        // The Global Unique Identifier (GUID) for the sub-order.
	OrderID     uuid.UUID        // The parent order.
	StoreID     uuid.UUID        // The store fulfilling this slice of the order.
	Subtotal    float64          // Sum of item line totals.
	DeliveryFee float64          // The delivery fee charged for this sub-order.
	Total       float64          // Subtotal plus delivery fee.
	Status      StoreOrderStatus // The sub-order status. Tolerate any stored value.
	ShipmentID  *uuid.UUID       // The shipment dispatching this sub-order, once created.
	CreatedAt   time.Time        // Timestamp of when this sub-order was created.
	UpdatedAt   time.Time        // Timestamp of the last modification.
}

// StoreOrderDetail is one fully assembled row of a store-order search
// result. Optional one-to-one relations are nil when absent;
// one-to-many relations are empty slices when absent.
type StoreOrderDetail struct {
	StoreOrder            StoreOrder     `json:"storeOrder"`
	Order                 *Order         `json:"order,omitempty"`
	Store                 *Store         `json:"store,omitempty"`
	Customer              *User          `json:"customer,omitempty"`
	DeliveryAddress       *Address       `json:"deliveryAddress,omitempty"`
	Shipment              *Shipment      `json:"shipment,omitempty"`
	Driver                *DriverInfo    `json:"driver,omitempty"`
	Items                 []*OrderItem   `json:"items"`
	Payment               *Payment       `json:"payment,omitempty"`
	SupportTicket         *SupportTicket `json:"supportTicket,omitempty"`
	EstimatedDeliveryTime *int           `json:"estimatedDeliveryTime,omitempty"` // Minutes between creation and the parent order's estimate. Nil without an estimate.
	IsDelayed             *bool          `json:"isDelayed,omitempty"`             // True when the estimate has passed and the sub-order is not terminal. Nil otherwise.
}

// StoreOrderStats are the live aggregates computed over the same
// authorized, filtered store-order set as the search itself.
type StoreOrderStats struct {
	TotalCount            int64                      `json:"totalCount"`
	StatusDistribution    map[StoreOrderStatus]int64 `json:"statusDistribution"`
	AvgDurationMinutes    float64                    `json:"avgDurationMinutes"`    // Creation to delivery, delivered sub-orders only.
	AvgPreparationMinutes float64                    `json:"avgPreparationMinutes"` // Creation to shipment creation.
	OnTimePercentage      float64                    `json:"onTimePercentage"`      // Delivered-by-estimate over delivered; 0 when nothing delivered.
	TotalRevenue          float64                    `json:"totalRevenue"`          // Sum of sub-order totals.
}

// ZeroStoreOrderStats returns the all-zero stats payload with a
// zero-filled status distribution.
func ZeroStoreOrderStats() *StoreOrderStats {
	dist := make(map[StoreOrderStatus]int64, len(AllStoreOrderStatuses))
	for _, s := range AllStoreOrderStatuses {
		dist[s] = 0
	}

	return &StoreOrderStats{StatusDistribution: dist}
}
