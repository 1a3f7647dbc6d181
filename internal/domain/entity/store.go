package entity

import (
	"time"

	"github.com/google/uuid"
)

// Store represents a seller account on the marketplace. Every
// StoreOrder belongs to exactly one Store.
type Store struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the store.
	OwnerID     uuid.UUID // The user account that owns this store.
	Name        string    // The store's public display name.
	Description string    // A short description of the store.
	Phone       string    // The store's contact phone number.
	IsActive    bool      // Whether the store is currently trading.
	CreatedAt   time.Time // Timestamp of when this store was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}
