package repository

import (
	"context"

	"souk/internal/domain/entity"
	"souk/internal/errors"

	"github.com/google/uuid"
)

// ErrStoreNotFound is returned when no store exists for an owner.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository resolves store records for access scoping.
type StoreRepository interface {
	// FindStoreByOwner retrieves the store owned by a user account.
	// Returns ErrStoreNotFound if the user owns none.
	FindStoreByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Store, error)
}
