package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrackingPoint is one appended position of a shipment on the road.
// History is ordered most recent first.
type TrackingPoint struct {
	ShipmentID uuid.UUID `json:"shipmentId"`
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	RecordedAt time.Time `json:"recordedAt"`
}
