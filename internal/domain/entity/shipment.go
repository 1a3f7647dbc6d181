package entity

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentStatus is the status of a shipment.
type ShipmentStatus string

const (
	// ShipmentStatusPending indicates the shipment was created but not picked up.
	ShipmentStatusPending ShipmentStatus = "pending"
	// ShipmentStatusInProgress indicates the shipment is on the road.
	ShipmentStatusInProgress ShipmentStatus = "in_progress"
	// ShipmentStatusDelivered indicates the shipment reached the buyer. Terminal.
	ShipmentStatusDelivered ShipmentStatus = "delivered"
	// ShipmentStatusFailed indicates delivery failed. Terminal.
	ShipmentStatusFailed ShipmentStatus = "failed"
)

// AllShipmentStatuses lists every shipment status, in display order.
var AllShipmentStatuses = []ShipmentStatus{
	ShipmentStatusPending,
	ShipmentStatusInProgress,
	ShipmentStatusDelivered,
	ShipmentStatusFailed,
}

// IsTerminal reports whether no further status transition is expected.
func (s ShipmentStatus) IsTerminal() bool {
	return s == ShipmentStatusDelivered || s == ShipmentStatusFailed
}

// Shipment is created when a seller dispatches a StoreOrder. Once
// created it always belongs to exactly one StoreOrder; a driver is
// optionally assigned later.
type Shipment struct {
	ID              uuid.UUID      // The Global Unique Identifier (GUID) for the shipment.
	StoreOrderID    uuid.UUID      // The sub-order this shipment dispatches.
	OriginAddressID uuid.UUID      // The pickup address (the store's location).
	DriverID        *uuid.UUID     // The assigned driver. Nil until assignment.
	Status          ShipmentStatus // The shipment status. Tolerate any stored value.
	PriorityLevel   *string        // Optional priority level, e.g. "express".
	DeliveryNotes   string         // Free-form notes for the driver.
	CreatedAt       time.Time      // Timestamp of when this shipment was created.
	UpdatedAt       time.Time      // Timestamp of the last modification.
}

// DriverInfo is a driver together with their last known location,
// resolved from the most recent geolocation ping.
type DriverInfo struct {
	Driver       Driver          `json:"driver"`
	LastLocation *DriverLocation `json:"lastLocation,omitempty"`
}

// ShipmentDetail is one fully assembled row of a shipment search
// result. Optional one-to-one relations are nil when absent, never
// partially populated; one-to-many relations are empty slices when
// absent, never nil.
type ShipmentDetail struct {
	Shipment              Shipment         `json:"shipment"`
	StoreOrder            *StoreOrder      `json:"storeOrder,omitempty"`
	Order                 *Order           `json:"order,omitempty"`
	Store                 *Store           `json:"store,omitempty"`
	Customer              *User            `json:"customer,omitempty"`
	OriginAddress         *Address         `json:"originAddress,omitempty"`
	DeliveryAddress       *Address         `json:"deliveryAddress,omitempty"`
	Driver                *DriverInfo      `json:"driver,omitempty"`
	Items                 []*OrderItem     `json:"items"`
	Payment               *Payment         `json:"payment,omitempty"`
	TrackingHistory       []*TrackingPoint `json:"trackingHistory"`
	SupportTicket         *SupportTicket   `json:"supportTicket,omitempty"`
	EstimatedDeliveryTime *int             `json:"estimatedDeliveryTime,omitempty"` // Minutes between creation and the order's estimate. Nil without an estimate.
	IsDelayed             *bool            `json:"isDelayed,omitempty"`             // True when the estimate has passed and the shipment is not terminal. Nil otherwise.
}

// ShipmentStats are the live aggregates computed over the same
// authorized, filtered shipment set as the search itself.
type ShipmentStats struct {
	TotalCount         int64                    `json:"totalCount"`
	StatusDistribution map[ShipmentStatus]int64 `json:"statusDistribution"`
	AvgDurationMinutes float64                  `json:"avgDurationMinutes"` // Creation to delivery, delivered shipments only.
	OnTimePercentage   float64                  `json:"onTimePercentage"`   // Delivered-by-estimate over delivered; 0 when nothing delivered.
	TotalDeliveryFees  float64                  `json:"totalDeliveryFees"`  // Sum of the owning sub-orders' delivery fees.
}

// ZeroShipmentStats returns the all-zero stats payload with a
// zero-filled status distribution.
func ZeroShipmentStats() *ShipmentStats {
	dist := make(map[ShipmentStatus]int64, len(AllShipmentStatuses))
	for _, s := range AllShipmentStatuses {
		dist[s] = 0
	}

	return &ShipmentStats{StatusDistribution: dist}
}
