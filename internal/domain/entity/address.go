package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a delivery or origin location. Urban addresses are
// described by commune/district/street, rural ones by
// prefecture/sub-prefecture/village; both carry a landmark and a
// pre-formatted text rendering.
type Address struct {
	ID            uuid.UUID // The Global Unique Identifier (GUID) for the address.
	OwnerID       uuid.UUID // The user that owns this address.
	RecipientName string    // The name of the person receiving deliveries here.
	Phone         string    // Contact phone number for the recipient.
	IsUrban       bool      // Urban (commune-based) vs rural (prefecture-based) layout.
	Commune       string    // Urban: the commune.
	District      string    // Urban: the district (quartier).
	Street        string    // Urban: the street.
	Prefecture    string    // Rural: the prefecture.
	SubPrefecture string    // Rural: the sub-prefecture.
	Village       string    // Rural: the village.
	Landmark      string    // A nearby landmark to help the driver.
	Region        string    // The administrative region.
	Formatted     string    // The full, human-readable rendering of the address.
	Instructions  string    // Optional delivery instructions.
	PhotoURL      string    // Optional photo of the location.
	CreatedAt     time.Time // Timestamp of when this address was created.
	UpdatedAt     time.Time // Timestamp of the last modification.
}
