package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Urban rows use commune/district/street, rural rows use
// prefecture/sub_prefecture/village; both keep a formatted rendering.
type AddressModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RecipientName string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(32)"`
	IsUrban       bool      `gorm:"not null;default:true"`
	Commune       string    `gorm:"type:varchar(128)"`
	District      string    `gorm:"type:varchar(128)"`
	Street        string    `gorm:"type:varchar(255)"`
	Prefecture    string    `gorm:"type:varchar(128)"`
	SubPrefecture string    `gorm:"type:varchar(128)"`
	Village       string    `gorm:"type:varchar(128)"`
	Landmark      string    `gorm:"type:varchar(255)"`
	Region        string    `gorm:"type:varchar(128)"`
	Formatted     string    `gorm:"type:text"`
	Instructions  string    `gorm:"type:text"`
	PhotoURL      string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
