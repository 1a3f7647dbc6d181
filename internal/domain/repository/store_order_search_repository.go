package repository

import (
	"context"

	"souk/internal/domain/entity"
	"souk/internal/domain/query"
)

// StoreOrderSearchRepository executes the read passes of a store-order
// search under one composed predicate.
type StoreOrderSearchRepository interface {
	// CountStoreOrders returns COUNT(DISTINCT store_orders.id) under the predicate.
	CountStoreOrders(ctx context.Context, pred query.Predicate) (int64, error)

	// FindStoreOrderDetails returns one assembled row per store order
	// under the predicate, ordered by created_at DESC, id DESC.
	FindStoreOrderDetails(ctx context.Context, pred query.Predicate, limit, offset int) ([]*entity.StoreOrderDetail, error)

	// AggregateStoreOrderStats computes the stats payload under the
	// same predicate, without pagination.
	AggregateStoreOrderStats(ctx context.Context, pred query.Predicate) (*entity.StoreOrderStats, error)
}
