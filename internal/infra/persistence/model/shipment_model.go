package model

import (
	"time"

	"github.com/google/uuid"
)

// ShipmentModel is the GORM-specific struct for the 'shipments' table.
type ShipmentModel struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreOrderID    uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	OriginAddressID uuid.UUID  `gorm:"type:uuid;not null"`
	DriverID        *uuid.UUID `gorm:"type:uuid;index"`
	Status          string     `gorm:"type:varchar(32);not null;index"`
	PriorityLevel   *string    `gorm:"type:varchar(32)"`
	DeliveryNotes   string     `gorm:"type:text"`
	CreatedAt       time.Time  `gorm:"index"`
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShipmentModel) TableName() string {
	return "shipments"
}
