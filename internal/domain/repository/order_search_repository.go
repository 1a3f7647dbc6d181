package repository

import (
	"context"

	"souk/internal/domain/entity"
	"souk/internal/domain/query"
)

// OrderSearchRepository executes the read passes of a top-level order
// search under one composed predicate.
type OrderSearchRepository interface {
	// CountOrders returns COUNT(DISTINCT orders.id) under the predicate.
	CountOrders(ctx context.Context, pred query.Predicate) (int64, error)

	// FindOrderDetails returns one assembled row per order under the
	// predicate, ordered by created_at DESC, id DESC.
	FindOrderDetails(ctx context.Context, pred query.Predicate, limit, offset int) ([]*entity.OrderDetail, error)

	// AggregateOrderStats computes the stats payload under the same
	// predicate, without pagination.
	AggregateOrderStats(ctx context.Context, pred query.Predicate) (*entity.OrderStats, error)
}
