package entity

import (
	"time"

	"github.com/google/uuid"
)

// Driver represents a delivery driver. A driver is linked to a user
// account and emits a time-ordered sequence of geolocation pings;
// the most recent ping is the driver's current location.
type Driver struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the driver.
	UserID      uuid.UUID // The user account this driver is linked to.
	VehicleType string    // The driver's vehicle type, e.g. "moto", "car", "truck".
	IsAvailable bool      // Whether the driver is currently accepting shipments.
	CreatedAt   time.Time // Timestamp of when this driver was registered.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// DriverLocation is a single geolocation ping emitted by a driver.
// Pings are append-only; most-recent-wins for "current location".
type DriverLocation struct {
	DriverID   uuid.UUID // The driver this ping belongs to.
	Latitude   float64   // The geographic latitude.
	Longitude  float64   // The geographic longitude.
	RecordedAt time.Time // When the ping was recorded.
}
