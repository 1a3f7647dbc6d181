package model

import (
	"time"

	"github.com/google/uuid"
)

// DriverModel is the GORM-specific struct for the 'drivers' table.
type DriverModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	VehicleType string    `gorm:"type:varchar(32);not null"`
	IsAvailable bool      `gorm:"not null;default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (DriverModel) TableName() string {
	return "drivers"
}

// DriverLocationModel is the GORM-specific struct for the
// 'driver_locations' table: append-only geolocation pings, latest
// wins for "current location".
type DriverLocationModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	DriverID   uuid.UUID `gorm:"type:uuid;not null;index:idx_driver_locations_driver_recorded,priority:1"`
	Latitude   float64   `gorm:"type:decimal(10,7);not null"`
	Longitude  float64   `gorm:"type:decimal(10,7);not null"`
	RecordedAt time.Time `gorm:"not null;index:idx_driver_locations_driver_recorded,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (DriverLocationModel) TableName() string {
	return "driver_locations"
}
