// Package impl contains the concrete implementations of the use cases.
package impl

import (
	"context"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/query"
	"souk/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// scopeResolver builds the access-scope predicate restricting each
// search to the records the caller is allowed to see. It only reads;
// role-linked lookups (driver profile, store) happen here so a search
// fails before any row query when the caller has no such profile.
type scopeResolver struct {
	driverRepo repository.DriverRepository
	storeRepo  repository.StoreRepository
}

func newScopeResolver(driverRepo repository.DriverRepository, storeRepo repository.StoreRepository) *scopeResolver {
	return &scopeResolver{driverRepo: driverRepo, storeRepo: storeRepo}
}

// ShipmentScope resolves the base predicate for the shipment graph.
// Drivers see shipments assigned to them, stores see shipments of
// their own sub-orders, admin and manager see everything.
func (r *scopeResolver) ShipmentScope(ctx context.Context, callerID uuid.UUID, role entity.Role) (query.Predicate, error) {
	switch role {
	case entity.RoleDriver:
		driver, err := r.resolveDriver(ctx, callerID)
		if err != nil {
			return nil, err
		}

		return query.Eq("shipments.driver_id", driver.ID), nil
	case entity.RoleStore:
		store, err := r.resolveStore(ctx, callerID)
		if err != nil {
			return nil, err
		}

		return query.Exists(
			"SELECT 1 FROM store_orders so WHERE so.id = shipments.store_order_id AND so.store_id = ?",
			store.ID,
		), nil
	case entity.RoleAdmin, entity.RoleManager:
		return query.MatchAll(), nil
	default:
		return nil, domainerrors.ErrRoleNotAllowed
	}
}

// StoreOrderScope resolves the base predicate for the store-order
// graph. Only stores and back-office staff may search it.
func (r *scopeResolver) StoreOrderScope(ctx context.Context, callerID uuid.UUID, role entity.Role) (query.Predicate, error) {
	switch role {
	case entity.RoleStore:
		store, err := r.resolveStore(ctx, callerID)
		if err != nil {
			return nil, err
		}

		return query.Eq("store_orders.store_id", store.ID), nil
	case entity.RoleAdmin, entity.RoleManager:
		return query.MatchAll(), nil
	default:
		return nil, domainerrors.ErrRoleNotAllowed
	}
}

// OrderScope resolves the base predicate for the top-level order
// graph. A store sees the orders that contain at least one of its
// sub-orders.
func (r *scopeResolver) OrderScope(ctx context.Context, callerID uuid.UUID, role entity.Role) (query.Predicate, error) {
	switch role {
	case entity.RoleStore:
		store, err := r.resolveStore(ctx, callerID)
		if err != nil {
			return nil, err
		}

		return query.Exists(
			"SELECT 1 FROM store_orders so WHERE so.order_id = orders.id AND so.store_id = ?",
			store.ID,
		), nil
	case entity.RoleAdmin, entity.RoleManager:
		return query.MatchAll(), nil
	default:
		return nil, domainerrors.ErrRoleNotAllowed
	}
}

func (r *scopeResolver) resolveDriver(ctx context.Context, callerID uuid.UUID) (*entity.Driver, error) {
	driver, err := r.driverRepo.FindDriverByUserID(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrDriverNotFound) {
			return nil, domainerrors.ErrDriverNotFound
		}

		return nil, errors.Wrap(err, "failed to find driver by user ID")
	}

	return driver, nil
}

func (r *scopeResolver) resolveStore(ctx context.Context, callerID uuid.UUID) (*entity.Store, error) {
	store, err := r.storeRepo.FindStoreByOwner(ctx, callerID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by owner")
	}

	return store, nil
}
