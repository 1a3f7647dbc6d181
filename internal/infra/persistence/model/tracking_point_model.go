package model

import (
	"time"

	"github.com/google/uuid"
)

// TrackingPointModel is the GORM-specific struct for the
// 'shipment_tracking_points' table. Rows are append-only.
type TrackingPointModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ShipmentID uuid.UUID `gorm:"type:uuid;not null;index:idx_tracking_shipment_recorded,priority:1"`
	Latitude   float64   `gorm:"type:double precision;not null"`
	Longitude  float64   `gorm:"type:double precision;not null"`
	RecordedAt time.Time `gorm:"not null;index:idx_tracking_shipment_recorded,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (TrackingPointModel) TableName() string {
	return "shipment_tracking_points"
}
